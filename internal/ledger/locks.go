package ledger

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"
)

// keyLocks serializes read-modify-write cycles per stored document. Locks
// are not reentrant; multi-key acquisitions are taken in sorted order.
type keyLocks struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func newKeyLocks() *keyLocks {
	return &keyLocks{sems: map[string]*semaphore.Weighted{}}
}

func (k *keyLocks) sem(key string) *semaphore.Weighted {
	k.mu.Lock()
	defer k.mu.Unlock()
	s, ok := k.sems[key]
	if !ok {
		s = semaphore.NewWeighted(1)
		k.sems[key] = s
	}
	return s
}

// acquire blocks until every key is held or ctx is done.
func (k *keyLocks) acquire(ctx context.Context, keys ...string) (release func(), err error) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	held := make([]*semaphore.Weighted, 0, len(sorted))
	unlock := func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Release(1)
		}
	}

	for i, key := range sorted {
		if i > 0 && key == sorted[i-1] {
			continue
		}
		s := k.sem(key)
		if err := s.Acquire(ctx, 1); err != nil {
			unlock()
			return nil, err
		}
		held = append(held, s)
	}
	return unlock, nil
}
