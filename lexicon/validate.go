package lexicon

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rejection is the outcome of validating one submitted word.
type Rejection int

const (
	Accepted Rejection = iota
	RejectNotInDictionary
	RejectWrongLength
)

func (r Rejection) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectNotInDictionary:
		return "not-in-dictionary"
	case RejectWrongLength:
		return "wrong-length"
	}
	return fmt.Sprintf("rejection(%d)", int(r))
}

// Reason is the message shown to the player.
func (r Rejection) Reason(requiredLength int) string {
	switch r {
	case RejectNotInDictionary:
		return "Invalid! Please enter a valid dictionary word."
	case RejectWrongLength:
		return fmt.Sprintf("Invalid! Word must be %d letters", requiredLength)
	}
	return ""
}

// Normalize trims whitespace and lowercases a raw submission.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func InDictionary(word string, lex Lexicon) bool {
	return lex.HasWord(word)
}

// HasLength is an exact match on the number of letters.
func HasLength(word string, required int) bool {
	return utf8.RuneCountInString(word) == required
}

// Validate checks the dictionary first and the length second. The word
// is expected to be normalized already.
func Validate(word string, lex Lexicon, required int) Rejection {
	if !InDictionary(word, lex) {
		return RejectNotInDictionary
	}
	if !HasLength(word, required) {
		return RejectWrongLength
	}
	return Accepted
}
