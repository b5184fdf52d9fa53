package service

import (
	"sync"
)

// compiledCache maps scriptlet identifiers to their compiled virtual
// machines, so that Run never has to evaluate the stored code twice.
type compiledCache struct {
	sync.RWMutex
	entries map[uint64]*compiled
}

func newCache() *compiledCache {
	return &compiledCache{
		entries: make(map[uint64]*compiled),
	}
}

// Get returns the compiled scriptlet for the given identifier, or nil
// if it has not been compiled yet.
func (cc *compiledCache) Get(id uint64) *compiled {
	cc.RLock()
	defer cc.RUnlock()
	return cc.entries[id]
}

func (cc *compiledCache) Add(id uint64, c *compiled) {
	cc.Lock()
	defer cc.Unlock()
	cc.entries[id] = c
}

func (cc *compiledCache) Del(id uint64) {
	cc.Lock()
	defer cc.Unlock()
	delete(cc.entries, id)
}
