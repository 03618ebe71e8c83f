package stoich

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/leapstack-labs/metalcalc/pkg/formula"
)

// Entry is a cached parse result. Entries are shared between callers and
// must not be modified.
type Entry struct {
	Compound  *formula.Compound
	Counts    formula.Counts
	MolarMass float64 // kg/kmol
}

// Cache stores parse results keyed by trimmed formula. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(formula string) (*Entry, bool)
	Add(formula string, e *Entry)
	Len() int
}

// MapCache is an unbounded Cache. Entries are never evicted.
type MapCache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMapCache creates an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{entries: make(map[string]*Entry)}
}

// Get returns the entry for formula.
func (c *MapCache) Get(formula string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[formula]
	return e, ok
}

// Add stores e under formula. An existing entry is kept; every formula maps to
// one deterministic entry, so the first writer wins.
func (c *MapCache) Add(formula string, e *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[formula]; !ok {
		c.entries[formula] = e
	}
}

// Len returns the number of cached formulas.
func (c *MapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// LRUCache is a Cache bounded to a fixed number of formulas.
type LRUCache struct {
	lru *lru.Cache[string, *Entry]
}

// NewLRUCache creates a cache holding at most size formulas.
func NewLRUCache(size int) (*LRUCache, error) {
	l, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create formula cache: %w", err)
	}
	return &LRUCache{lru: l}, nil
}

// Get returns the entry for formula.
func (c *LRUCache) Get(formula string) (*Entry, bool) {
	return c.lru.Get(formula)
}

// Add stores e under formula, evicting the least recently used entry when full.
func (c *LRUCache) Add(formula string, e *Entry) {
	c.lru.Add(formula, e)
}

// Len returns the number of cached formulas.
func (c *LRUCache) Len() int {
	return c.lru.Len()
}

// NewCache returns a MapCache when size is zero and an LRUCache otherwise.
func NewCache(size int) (Cache, error) {
	if size == 0 {
		return NewMapCache(), nil
	}
	return NewLRUCache(size)
}
