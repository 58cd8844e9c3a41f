package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrNoData is returned by exports when the requested bank does not
	// exist.
	ErrNoData = errors.New("no data to export")
)

// KV is the key-value persistence substrate. Values are opaque bytes,
// normally JSON documents.
type KV interface {
	// Get returns ErrNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove is a no-op for an absent key.
	Remove(ctx context.Context, key string) error
	// ListKeys returns every key starting with prefix, or all keys for "".
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
