package view

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Lookup caches id-to-display-name maps for reference collections, so
// rendering a page of appointments doesn't refetch the doctors list per
// row. Primary screen collections never go through here; their
// refetch-after-mutate discipline is untouched.
type Lookup struct {
	cache *cache.Cache
}

func NewLookup(ttl, cleanup time.Duration) *Lookup {
	return &Lookup{cache: cache.New(ttl, cleanup)}
}

// Names returns the cached map for a collection, loading it on a miss.
func (l *Lookup) Names(ctx context.Context, collection string, load func(context.Context) (map[string]string, error)) (map[string]string, error) {
	if cached, ok := l.cache.Get(collection); ok {
		return cached.(map[string]string), nil
	}
	names, err := load(ctx)
	if err != nil {
		return nil, err
	}
	l.cache.Set(collection, names, cache.DefaultExpiration)
	return names, nil
}

// Invalidate drops one collection's cached names, for use after a mutation
// on that collection.
func (l *Lookup) Invalidate(collection string) {
	l.cache.Delete(collection)
}
