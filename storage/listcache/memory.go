package listcache

import (
	"sync"

	"github.com/meucampus/planner/core"
)

// Memory is an in-process core.ListCache. Entries live until their entity
// kind is invalidated by a write; there is no TTL and no row-level eviction.
type Memory struct {
	mu      sync.RWMutex
	entries map[core.ListKey]interface{}
}

var _ core.ListCache = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{entries: make(map[core.ListKey]interface{})}
}

func (c *Memory) Get(key core.ListKey) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[key]
	return val, ok
}

func (c *Memory) Set(key core.ListKey, val interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = val
}

// Invalidate drops every cached page of the given kind.
func (c *Memory) Invalidate(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.Kind == kind {
			delete(c.entries, key)
		}
	}
}
