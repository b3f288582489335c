// Package kv defines the key-value persistence port the ledger is built on.
// Values are whole documents: a list is read, modified and written back as
// one string.
package kv

import "context"

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=kv.go Store

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key was never set
	// or has been removed; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
