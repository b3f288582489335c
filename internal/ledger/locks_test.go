package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLocksExclusive(t *testing.T) {
	locks := newKeyLocks()
	release, err := locks.acquire(context.Background(), KeyExpenses)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locks.acquire(ctx, KeyIncome, KeyExpenses)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The failed attempt must not keep income held.
	releaseIncome, err := locks.acquire(context.Background(), KeyIncome)
	require.NoError(t, err)
	releaseIncome()

	release()
	release, err = locks.acquire(context.Background(), KeyExpenses, KeyExpenses)
	require.NoError(t, err)
	release()
}
