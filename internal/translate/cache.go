package translate

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// missMarker is stored for words with no translation so repeated misses
// skip the underlying store too.
type missMarker struct{}

// Cached decorates a Store with an in-memory TTL cache. It is meant for
// stores whose lookups are not a plain map access, such as a Resolver that
// runs a ranked search per miss.
type Cached struct {
	store Store
	cache *gocache.Cache
}

// NewCached wraps store with a cache holding entries for ttl.
func NewCached(store Store, ttl time.Duration) *Cached {
	return &Cached{
		store: store,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Translate implements Store.
func (c *Cached) Translate(word string) (string, bool) {
	if v, found := c.cache.Get(word); found {
		if _, miss := v.(missMarker); miss {
			return "", false
		}
		return v.(string), true
	}
	t, ok := c.store.Translate(word)
	if ok {
		c.cache.Set(word, t, gocache.DefaultExpiration)
	} else {
		c.cache.Set(word, missMarker{}, gocache.DefaultExpiration)
	}
	return t, ok
}
