// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keyword

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// DefaultCacheCapacity is the number of identifier-name results
// retained by the package-level functions.
const DefaultCacheCapacity = 1000

// A Version selects the grammar an identifier name is checked against.
type Version uint8

const (
	ES5 Version = 5
	ES6 Version = 6
)

func (v Version) String() string {
	switch v {
	case ES5:
		return "es5"
	case ES6:
		return "es6"
	}
	return "es?"
}

type cacheKey struct {
	version Version
	id      string
}

// A Cache memoizes identifier-name results.
//
// It grows until it holds Cap entries and then stops: later results are
// not stored, and nothing already stored is ever removed. A Cache is safe
// for concurrent use.
type Cache struct {
	capacity int

	mu      sync.RWMutex
	entries *simplelru.LRU // nil if capacity <= 0
}

// NewCache returns a cache holding at most capacity entries.
// A capacity of zero or less yields a cache that stores nothing.
func NewCache(capacity int) *Cache {
	c := &Cache{capacity: capacity}
	if capacity > 0 {
		// The size check in Store keeps the LRU from ever evicting.
		entries, err := simplelru.NewLRU(capacity, nil)
		if err != nil {
			panic(err) // unreachable: capacity is positive
		}
		c.entries = entries
	}
	return c
}

// Lookup returns the stored result for id under version v, if any.
func (c *Cache) Lookup(v Version, id string) (valid, ok bool) {
	if c.entries == nil {
		return false, false
	}
	c.mu.RLock()
	x, ok := c.entries.Peek(cacheKey{v, id})
	c.mu.RUnlock()
	if !ok {
		return false, false
	}
	return x.(bool), true
}

// Store records the result for id under version v unless the cache is
// full or already holds it. It reports whether an entry was added.
func (c *Cache) Store(v Version, id string, valid bool) bool {
	if c.entries == nil {
		return false
	}
	key := cacheKey{v, id}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries.Len() >= c.capacity || c.entries.Contains(key) {
		return false
	}
	c.entries.Add(key, valid)
	return true
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	if c.entries == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries.Len()
}

// Cap returns the maximum number of entries the cache will hold.
func (c *Cache) Cap() int {
	if c.capacity < 0 {
		return 0
	}
	return c.capacity
}
