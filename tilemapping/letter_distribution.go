package tilemapping

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsprint/cache"
	"github.com/domino14/wordsprint/config"
)

const (
	// BlankToken is the blank tile in a distribution file. It scores 0 and
	// is never part of a submitted word.
	BlankToken = '?'

	numLetters = 26
)

// ErrInvalidInput is returned when a word that is not purely alphabetic is
// scored. Callers must check for it before treating the result as a score.
var ErrInvalidInput = errors.New("invalid input: please enter only alphabetic characters")

//go:embed data/english.csv
var englishDistribution []byte

// LetterDistribution encodes the point value of every letter. It is
// immutable once scanned and safe to share between goroutines.
type LetterDistribution struct {
	Name   string
	scores [numLetters]int
}

// ScanLetterDistribution reads a distribution in the tile distribution
// format, one letter per line:
//
//	letter,quantity,value,vowel
//
// Letters missing from the file score 0.
func ScanLetterDistribution(name string, data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 4
	ld := &LetterDistribution{Name: name}
	seen := map[rune]bool{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := []rune(strings.ToUpper(strings.TrimSpace(record[0])))
		if len(letter) != 1 {
			return nil, fmt.Errorf("bad letter %q in distribution %v", record[0], name)
		}
		// quantity and vowel columns are validated but only values matter
		// for scoring.
		if _, err := strconv.Atoi(strings.TrimSpace(record[1])); err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, err
		}
		if _, err := strconv.Atoi(strings.TrimSpace(record[3])); err != nil {
			return nil, err
		}
		if p < 0 {
			return nil, fmt.Errorf("negative value %d for letter %c", p, letter[0])
		}
		if letter[0] == BlankToken {
			continue
		}
		if letter[0] < 'A' || letter[0] > 'Z' {
			return nil, fmt.Errorf("letter %q is not in A-Z", letter[0])
		}
		if seen[letter[0]] {
			return nil, fmt.Errorf("letter %c defined twice in distribution %v", letter[0], name)
		}
		seen[letter[0]] = true
		ld.scores[letter[0]-'A'] = p
	}
	if len(seen) < numLetters {
		log.Debug().Str("dist", name).Int("defined", len(seen)).
			Msg("some letters are missing from distribution; they will score 0")
	}
	return ld, nil
}

// EnglishLetterDistribution returns the built-in English letter values.
func EnglishLetterDistribution() (*LetterDistribution, error) {
	return ScanLetterDistribution("english", bytes.NewReader(englishDistribution))
}

// LoadLetterDistribution reads a distribution file from disk.
func LoadLetterDistribution(path string) (*LetterDistribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ScanLetterDistribution(name, f)
}

func cacheLoad(cfg *config.Config, key string) (interface{}, error) {
	path := strings.TrimPrefix(key, "letterdist:")
	if path == "" {
		return EnglishLetterDistribution()
	}
	return LoadLetterDistribution(path)
}

// Get returns the distribution configured in cfg, loading it at most once
// per process.
func Get(cfg *config.Config) (*LetterDistribution, error) {
	key := "letterdist:" + cfg.GetString(config.ConfigLetterDistributionPath)
	obj, err := cache.Load(cfg, key, cacheLoad)
	if err != nil {
		return nil, err
	}
	ld, ok := obj.(*LetterDistribution)
	if !ok {
		return nil, errors.New("cached object is not a letter distribution")
	}
	return ld, nil
}

// Score gives the value of a single letter, case-insensitively. Anything
// outside A-Z scores 0.
func (ld *LetterDistribution) Score(r rune) int {
	switch {
	case r >= 'A' && r <= 'Z':
		return ld.scores[r-'A']
	case r >= 'a' && r <= 'z':
		return ld.scores[r-'a']
	}
	return 0
}

// WordScore returns the sum of the letter values of word. It returns
// ErrInvalidInput if word is not purely alphabetic.
func (ld *LetterDistribution) WordScore(word string) (int, error) {
	if !IsAlphabetic(word) {
		return 0, ErrInvalidInput
	}
	score := 0
	for _, c := range word {
		score += ld.Score(c)
	}
	return score, nil
}
