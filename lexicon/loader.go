package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsprint/cache"
	"github.com/domino14/wordsprint/config"
	"github.com/domino14/wordsprint/tilemapping"
)

var ErrNoLexicon = errors.New("lexicon has no usable words")

// LoadWordSet reads one word per line. Blank lines and lines starting with
// # are skipped, as is anything that is not a single alphabetic word.
func LoadWordSet(name string, r io.Reader) (*WordSet, error) {
	var words []string
	skipped := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !tilemapping.IsAlphabetic(line) {
			skipped++
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Debug().Str("lexicon", name).Int("skipped", skipped).Msg("skipped non-alphabetic entries")
	}
	ws := NewWordSet(name, words...)
	if ws.Len() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoLexicon, name)
	}
	return ws, nil
}

func LoadWordSetFile(path string) (*WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadWordSet(name, f)
}

func cacheLoad(cfg *config.Config, key string) (interface{}, error) {
	path := strings.TrimPrefix(key, "lexicon:")
	if path == "" {
		return DefaultWordSet(), nil
	}
	return LoadWordSetFile(path)
}

// Get returns the lexicon configured in cfg, loading it at most once per
// process.
func Get(cfg *config.Config) (*WordSet, error) {
	key := "lexicon:" + cfg.GetString(config.ConfigLexiconPath)
	obj, err := cache.Load(cfg, key, cacheLoad)
	if err != nil {
		return nil, err
	}
	ws, ok := obj.(*WordSet)
	if !ok {
		return nil, errors.New("cached object is not a word set")
	}
	log.Debug().Str("lexicon", ws.Name()).Int("words", ws.Len()).Msg("using lexicon")
	return ws, nil
}
