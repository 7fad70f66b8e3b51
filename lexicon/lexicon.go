package lexicon

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/wordsprint/tilemapping"
)

// DefaultWords is the small built-in word list that stands in for a real
// dictionary.
var DefaultWords = []string{"apple", "pear", "orange", "banana", "grape"}

type Lexicon interface {
	Name() string
	// HasWord is case-insensitive.
	HasWord(word string) bool
}

// AcceptAll accepts any alphabetic word.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return tilemapping.IsAlphabetic(word)
}

// WordSet is an immutable set of lowercase alphabetic words. It is safe for
// concurrent use.
type WordSet struct {
	name  string
	words map[string]struct{}
}

// NewWordSet builds a WordSet. Words are trimmed and lowercased; anything
// that is not purely alphabetic is dropped.
func NewWordSet(name string, words ...string) *WordSet {
	normalized := lo.Map(words, func(w string, _ int) string {
		return Normalize(w)
	})
	valid := lo.Filter(normalized, func(w string, _ int) bool {
		return tilemapping.IsAlphabetic(w)
	})
	return &WordSet{name: name, words: lo.Keyify(valid)}
}

// DefaultWordSet returns the built-in lexicon.
func DefaultWordSet() *WordSet {
	return NewWordSet("default", DefaultWords...)
}

func (ws *WordSet) Name() string {
	return ws.name
}

func (ws *WordSet) HasWord(word string) bool {
	_, ok := ws.words[strings.ToLower(word)]
	return ok
}

func (ws *WordSet) Len() int {
	return len(ws.words)
}

// Words returns the words in alphabetical order.
func (ws *WordSet) Words() []string {
	words := lo.Keys(ws.words)
	sort.Strings(words)
	return words
}
