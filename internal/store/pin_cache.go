package store

import "sync"

// pinFallbackCache is an in-process map of owner_id -> pin_hash used to
// tolerate a temporarily unavailable persistent store on the PIN read path.
//
// The cache is advisory, not authoritative: it is populated only after a
// successful persist, lost on process restart, and never consulted while the
// database answers. Last-write-wins mirrors the upsert semantics of the
// persisted record. This is a degraded-availability mode, nothing more.
type pinFallbackCache struct {
	mu     sync.RWMutex
	hashes map[string]string
}

func newPinFallbackCache() *pinFallbackCache {
	return &pinFallbackCache{
		hashes: make(map[string]string),
	}
}

func (c *pinFallbackCache) put(ownerID, pinHash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hashes[ownerID] = pinHash
}

func (c *pinFallbackCache) get(ownerID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hash, ok := c.hashes[ownerID]
	return hash, ok
}
