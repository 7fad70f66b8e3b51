package tilemapping

// IsAlphabetic is true iff word is non-empty and made only of ASCII letters.
func IsAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
