package backend

import (
	"context"
	"errors"
	"fmt"

	"weeklybudget/internal/amqp"
	"weeklybudget/internal/cache"
	"weeklybudget/internal/kv"
	"weeklybudget/internal/kv/memory"
	"weeklybudget/internal/kv/sqlite"
	applog "weeklybudget/internal/log"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		store kv.Store
		err   error
	)
	switch config.Type {
	case SQLiteBackend:
		store, err = f.createSQLiteStore(config)
	case MemoryBackend:
		store, err = f.createMemoryStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	var cleanups []CleanupFunc
	if config.CacheTTL > 0 {
		lru := cache.NewLRUCache[kv.CachedValue](config.CacheSize, config.CacheTTL)
		store = kv.NewCached(store, lru)

		manager := cache.NewManager(f.logger)
		manager.Register(lru)
		manager.StartCleanup(config.CacheTTL)
		cleanups = append(cleanups, func() error { manager.Stop(); return nil })

		f.logger.Info("Read-through cache enabled", "ttl", config.CacheTTL, "size", config.CacheSize)
	}
	cleanups = append(cleanups, store.Close)

	result := &BackendResult{Store: store}

	// Initialize AMQP client (optional)
	if config.AMQPURL != "" {
		client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue, f.logger)
		if err != nil {
			f.logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without notifications",
				applog.FieldError, err)
		} else {
			f.logger.InfoContext(ctx, "Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
			result.Notifier = client
			cleanups = append(cleanups, client.Close)
		}
	}

	result.Cleanup = func() error {
		var errs []error
		for i := len(cleanups) - 1; i >= 0; i-- {
			errs = append(errs, cleanups[i]())
		}
		return errors.Join(errs...)
	}
	return result, nil
}

func (f *DefaultFactory) createSQLiteStore(config Config) (kv.Store, error) {
	store, err := sqlite.New(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}
	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return store, nil
}

func (f *DefaultFactory) createMemoryStore(config Config) (kv.Store, error) {
	if config.SnapshotPath == "" {
		f.logger.Info("Initialized memory backend")
		return memory.New(), nil
	}

	store, err := memory.NewFromSnapshot(config.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load memory snapshot: %w", err)
	}
	f.logger.Info("Initialized memory backend", "snapshot", config.SnapshotPath)
	return store, nil
}
