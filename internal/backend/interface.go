package backend

import (
	"context"
	"time"

	"weeklybudget/internal/kv"
	"weeklybudget/internal/ledger"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult contains the store the ledger persists to, the optional
// notifier for archived weeks, and the cleanup for both.
type BackendResult struct {
	Store    kv.Store
	Notifier ledger.Notifier // nil when AMQP is disabled or unreachable
	Cleanup  CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	// CreateBackend creates a backend instance based on the provided config
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// Memory backend specific; empty starts from an empty store
	SnapshotPath string

	// Read-through cache; zero TTL disables it
	CacheTTL  time.Duration
	CacheSize int

	// Optional week archived notifications
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
