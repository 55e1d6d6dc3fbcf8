// Package kv provides the fallback key-value store backing persisted
// sessions. It is the durability backstop behind the cookie store:
// longer-lived, server-side, and keyed per browser device.
package kv

import (
	"context"
	"time"
)

// Store defines the interface for fallback storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Set writes a value with the given TTL, overwriting any existing
	// entry. A non-positive TTL deletes the key.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value for key. A missing or expired key yields
	// ("", false, nil); errors are reserved for backend failures.
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
