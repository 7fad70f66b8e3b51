package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordsprint/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	Reset()
	defer Reset()
	cfg := config.DefaultConfig()

	calls := 0
	loader := func(cfg *config.Config, key string) (interface{}, error) {
		calls++
		return "obj:" + key, nil
	}
	for i := 0; i < 3; i++ {
		obj, err := Load(cfg, "lexicon:", loader)
		is.NoErr(err)
		is.Equal(obj, "obj:lexicon:")
	}
	is.Equal(calls, 1)

	Reset()
	_, err := Load(cfg, "lexicon:", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestFailedLoadIsNotCached(t *testing.T) {
	is := is.New(t)
	Reset()
	defer Reset()
	cfg := config.DefaultConfig()

	fail := true
	loader := func(cfg *config.Config, key string) (interface{}, error) {
		if fail {
			return nil, errors.New("not yet")
		}
		return 42, nil
	}
	_, err := Load(cfg, "k", loader)
	is.True(err != nil)
	fail = false
	obj, err := Load(cfg, "k", loader)
	is.NoErr(err)
	is.Equal(obj, 42)
}
