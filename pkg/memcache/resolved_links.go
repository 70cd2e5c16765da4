// pkg/memcache/resolved_links.go
package memcache

import (
	"sync"
	"time"
)

// ResolvedLinkStore caches the expanded target of shared map short-links so
// repeat lookups skip the redirect chase.
type ResolvedLinkStore interface {
	Set(sharedURL, resolvedURL string, ttl time.Duration)

	// Get returns the expanded URL for sharedURL if present and not expired.
	Get(sharedURL string) (string, bool)
}

type linkEntry struct {
	resolvedURL string
	expiresAt   time.Time
}

type ResolvedLinks struct {
	mu   sync.RWMutex
	data map[string]linkEntry
}

func NewResolvedLinks() *ResolvedLinks {
	return &ResolvedLinks{
		data: make(map[string]linkEntry),
	}
}

func (s *ResolvedLinks) Set(sharedURL, resolvedURL string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sharedURL] = linkEntry{
		resolvedURL: resolvedURL,
		expiresAt:   time.Now().Add(ttl),
	}
}

func (s *ResolvedLinks) Get(sharedURL string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[sharedURL]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, sharedURL) // cleanup expired
		s.mu.Unlock()
		return "", false
	}
	return e.resolvedURL, true
}
