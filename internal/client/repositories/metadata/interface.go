// Package metadata is a small key-value store backed by the client's
// local database. It plays the part browser localStorage plays for the
// web client: string keys, opaque byte values, no schema.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
