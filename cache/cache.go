package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsprint/config"
)

// The cache holds the immutable data a game needs, like the lexicon and the
// letter distribution. Each object is built once per process and then
// shared read-only by every round and the timer goroutines.

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type loadFunc func(cfg *config.Config, key string) (interface{}, error)

// GlobalObjectCache is our global object cache.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func (c *cache) clear() {
	c.Lock()
	defer c.Unlock()
	c.objects = make(map[string]interface{})
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]interface{})}
	})
}

// Load returns the object stored under name, calling loadFunc to build it
// the first time. Failed loads are not cached.
func Load(cfg *config.Config, name string, loadFunc loadFunc) (interface{}, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Reset drops every cached object. Tests use it to load different data
// under the same key.
func Reset() {
	CreateGlobalObjectCache()
	GlobalObjectCache.clear()
}
