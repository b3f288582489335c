package ledger

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weeklybudget/internal/core"
	"weeklybudget/internal/kv"
	"weeklybudget/internal/kv/memory"
)

var (
	// Wednesday; its week starts Monday 2024-03-11.
	wednesday    = time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)
	thisMonday   = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	lastMonday   = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	mondayBefore = time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(t time.Time) *testClock { return &testClock{t: t} }

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func newTestLedger(t *testing.T, store kv.Store, clock *testClock) *Ledger {
	t.Helper()
	return New(store, Options{Location: time.UTC, Now: clock.Now})
}

// faultyStore fails Get or Set for selected keys.
type faultyStore struct {
	*memory.Store
	mu     sync.Mutex
	getErr map[string]error
	setErr map[string]error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{Store: memory.New(), getErr: map[string]error{}, setErr: map[string]error{}}
}

func (s *faultyStore) failGet(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr[key] = err
}

func (s *faultyStore) failSet(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr[key] = err
}

func (s *faultyStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	err := s.getErr[key]
	s.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return s.Store.Get(ctx, key)
}

func (s *faultyStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	err := s.setErr[key]
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, key, value)
}

func seed(t *testing.T, store kv.Store, key string, v any) {
	t.Helper()
	var raw string
	switch x := v.(type) {
	case string:
		raw = x
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		raw = string(b)
	}
	require.NoError(t, store.Set(context.Background(), key, raw))
}

func stored[T any](t *testing.T, store kv.Store, key string) []T {
	t.Helper()
	list, err := loadList[T](context.Background(), store, key)
	require.NoError(t, err)
	return list
}

func rawValue(t *testing.T, store kv.Store, key string) (string, bool) {
	t.Helper()
	v, ok, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

func expense(id string, cents int64, c core.Category, at time.Time) core.Expense {
	return core.Expense{ID: id, Amount: core.Money{Cents: cents}, Category: c, Date: at}
}

func income(id string, cents int64, at time.Time) core.Income {
	return core.Income{ID: id, Amount: core.Money{Cents: cents}, Date: at}
}
