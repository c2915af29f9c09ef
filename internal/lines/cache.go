package lines

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds the process-wide memo. Possibility sets are pure
// values keyed by (length, clue sequence), so eviction only ever costs a
// recomputation.
const DefaultCapacity = 4096

// Cache memoizes Generate results behind a capacity-bounded LRU. Safe for
// concurrent use; callers must treat returned possibilities as read-only.
type Cache struct {
	lru *lru.Cache[string, []Possibility]
}

// NewCache returns a cache that holds at most capacity possibility sets.
func NewCache(capacity int) (*Cache, error) {
	l, err := lru.New[string, []Possibility](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Generate returns the possibility set for (length, clues), computing and
// storing it on first use. Concurrent misses on the same key recompute
// redundantly; the value is identical so last-write-wins is harmless.
func (c *Cache) Generate(length int, clues []int) []Possibility {
	k := key(length, clues)
	if v, ok := c.lru.Get(k); ok {
		return v
	}
	v := Generate(length, clues)
	c.lru.Add(k, v)
	return v
}

// Len reports the number of cached possibility sets.
func (c *Cache) Len() int { return c.lru.Len() }

func key(length int, clues []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(length))
	b.WriteByte('|')
	for i, n := range clues {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Shared is the process-wide memo used by solvers that are not given their
// own cache.
var Shared = func() *Cache {
	c, err := NewCache(DefaultCapacity)
	if err != nil {
		panic(err)
	}
	return c
}()
