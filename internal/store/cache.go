package store

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// listCache keeps materialized listings keyed by "<table>:<variant>". Any
// write to a table drops every key of that table and bumps its generation;
// a listing read under an older generation is not stored.
type listCache struct {
	c    *gocache.Cache
	mu   sync.Mutex
	gens map[string]uint64
}

func newListCache(ttl, cleanup time.Duration) *listCache {
	if ttl <= 0 {
		return nil
	}
	if cleanup <= 0 {
		cleanup = 2 * ttl
	}
	return &listCache{c: gocache.New(ttl, cleanup), gens: make(map[string]uint64)}
}

func (l *listCache) get(key string) (interface{}, bool) {
	if l == nil {
		return nil, false
	}
	return l.c.Get(key)
}

// generation returns the current write generation of table. Read it before
// querying and hand it to set.
func (l *listCache) generation(table string) uint64 {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gens[table]
}

// set stores value unless table was written after gen was read.
func (l *listCache) set(table, key string, gen uint64, value interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gens[table] != gen {
		return
	}
	l.c.SetDefault(key, value)
}

func (l *listCache) invalidate(table string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gens[table]++
	prefix := table + ":"
	for key := range l.c.Items() {
		if strings.HasPrefix(key, prefix) {
			l.c.Delete(key)
		}
	}
}
