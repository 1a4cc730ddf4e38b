package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is a cached value together with its build time.
type Entry[T any] struct {
	// Value is the cached value.
	Value T

	// Built is the timestamp when this entry was built.
	Built time.Time

	// TTL is the time-to-live for this entry.
	TTL time.Duration
}

// IsExpired returns true if this entry has expired based on its TTL.
func (e *Entry[T]) IsExpired() bool {
	if e.TTL == 0 {
		return true // No caching
	}
	return time.Since(e.Built) > e.TTL
}

// Store holds entries keyed by string and builds missing ones at most once
// concurrently per key.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]*Entry[T]
	sf      singleflight.Group
	ttl     time.Duration
}

// New creates a store. A zero ttl disables caching: every lookup rebuilds.
func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		entries: make(map[string]*Entry[T]),
		ttl:     ttl,
	}
}

// TTL returns the configured time-to-live.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}

// Get returns a fresh cached value for key, if any.
func (s *Store[T]) Get(key string) (T, bool) {
	if entry, ok := s.fresh(key); ok {
		return entry.Value, true
	}
	var zero T
	return zero, false
}

// GetOrBuild retrieves the value for key from the store,
// or builds a new one if it doesn't exist or has expired.
// Uses singleflight to prevent cache stampedes. Build errors are not cached.
func (s *Store[T]) GetOrBuild(ctx context.Context, key string, build func(ctx context.Context) (T, error)) (T, error) {
	entry, err := s.GetOrBuildEntry(ctx, key, build)
	if err != nil {
		var zero T
		return zero, err
	}
	return entry.Value, nil
}

// GetOrBuildEntry is GetOrBuild returning the whole entry, so callers can tell
// which build of a value they were handed.
func (s *Store[T]) GetOrBuildEntry(ctx context.Context, key string, build func(ctx context.Context) (T, error)) (*Entry[T], error) {
	// Fast path: check if entry exists and is fresh
	if entry, ok := s.fresh(key); ok {
		return entry, nil
	}

	// Slow path: build using singleflight to prevent stampedes
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if entry, ok := s.fresh(key); ok {
			return entry, nil
		}

		v, err := build(ctx)
		if err != nil {
			return nil, err
		}

		entry := &Entry[T]{Value: v, Built: time.Now(), TTL: s.ttl}
		if s.ttl > 0 {
			s.mu.Lock()
			s.entries[key] = entry
			s.mu.Unlock()
		}
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Entry[T]), nil
}

func (s *Store[T]) fresh(key string) (*Entry[T], bool) {
	s.mu.RLock()
	entry, exists := s.entries[key]
	s.mu.RUnlock()

	if exists && !entry.IsExpired() {
		return entry, true
	}
	return nil, false
}

// Invalidate removes every entry whose key equals key or extends it with further
// parts, so Invalidate(Key(id)) drops the product and all of its selection entries.
// key must be built with Key.
func (s *Store[T]) Invalidate(key string) {
	prefix := key + keySeparator
	s.mu.Lock()
	for k := range s.entries {
		if k == key || strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
}

// Purge drops every entry.
func (s *Store[T]) Purge() {
	s.mu.Lock()
	s.entries = make(map[string]*Entry[T])
	s.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

const (
	keySeparator = "|"
	keyEscape    = `\`
)

var keyEscaper = strings.NewReplacer(keyEscape, keyEscape+keyEscape, keySeparator, keyEscape+keySeparator)

// Key joins key parts, e.g. Key(productID, colorID, sizeID). Separators and escapes
// inside a part are escaped, so distinct part lists never share a key and one key
// is only a prefix of another when its parts are.
func Key(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = keyEscaper.Replace(p)
	}
	return strings.Join(escaped, keySeparator)
}
