package kv

import (
	"context"
	"sync"

	"weeklybudget/internal/cache"
)

// CachedValue is what the read-through cache remembers per key, including
// misses so absent keys do not hit the backend every time.
type CachedValue struct {
	Value string
	OK    bool
}

// Cached is a read-through, write-through cache in front of a Store.
//
// Every write bumps a per-key generation before and after it reaches the
// backend. A Get only fills the cache if the generation it started with is
// still current, so a slow read can never cache a value older than a write
// that finished while it was in flight.
type Cached struct {
	next  Store
	cache cache.Cache[CachedValue]

	mu  sync.Mutex
	gen map[string]uint64
}

func NewCached(next Store, c cache.Cache[CachedValue]) *Cached {
	return &Cached{next: next, cache: c, gen: map[string]uint64{}}
}

func (s *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if v, hit := s.cache.Get(key); hit {
		return v.Value, v.OK, nil
	}

	s.mu.Lock()
	started := s.gen[key]
	s.mu.Unlock()

	value, ok, err := s.next.Get(ctx, key)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	if s.gen[key] == started {
		s.cache.Set(key, CachedValue{Value: value, OK: ok})
	}
	s.mu.Unlock()
	return value, ok, nil
}

func (s *Cached) Set(ctx context.Context, key, value string) error {
	s.invalidate(key)
	err := s.next.Set(ctx, key, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[key]++
	if err != nil {
		// The backend may or may not have applied the write.
		s.cache.Delete(key)
		return err
	}
	s.cache.Set(key, CachedValue{Value: value, OK: true})
	return nil
}

func (s *Cached) Remove(ctx context.Context, key string) error {
	s.invalidate(key)
	err := s.next.Remove(ctx, key)
	s.invalidate(key)
	return err
}

// invalidate drops key from the cache and starts a new generation for it.
func (s *Cached) invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[key]++
	s.cache.Delete(key)
}

func (s *Cached) Close() error {
	s.cache.Purge()
	return s.next.Close()
}
