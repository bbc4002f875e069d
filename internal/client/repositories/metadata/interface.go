// Package metadata provides the durable key-value storage behind the client
// session: a tiny repository contract with SQLite, Redis and in-memory
// implementations.
package metadata

import (
	"context"
)

// Repository is a byte-valued key-value store.
//
// Get returns (nil, nil) for a missing key. SetMany writes all pairs
// atomically when the backend can. Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
