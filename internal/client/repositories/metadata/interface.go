// Package metadata is a small key/value store in the local cache DB. The
// session keeps the persisted bearer token here under a single well-known
// key.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
