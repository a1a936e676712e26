package auth

import (
	"sync"
	"time"
)

// Blacklist is a process-local set of revoked token identifiers. Entries
// drop out once the underlying token would have expired anyway, so the set
// stays bounded by the token TTL.
type Blacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewBlacklist() *Blacklist {
	b := &Blacklist{revoked: make(map[string]time.Time)}
	go b.cleanupLoop()
	return b
}

func (b *Blacklist) Revoke(key string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[key] = expiresAt
}

func (b *Blacklist) IsRevoked(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	expiry, ok := b.revoked[key]
	if !ok {
		return false
	}
	return time.Now().Before(expiry)
}

// cleanupLoop removes expired entries to prevent unbounded growth.
func (b *Blacklist) cleanupLoop() {
	for {
		time.Sleep(time.Minute)

		now := time.Now()
		b.mu.Lock()
		for key, expiry := range b.revoked {
			if now.After(expiry) {
				delete(b.revoked, key)
			}
		}
		b.mu.Unlock()
	}
}
