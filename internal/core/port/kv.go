package port

import "context"

// KVStore is a pooled key-value backend. Get reports a missing key with
// found=false and a nil error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Ping(ctx context.Context) (string, error)
	Close() error
}

type KVService interface {
	Get(ctx context.Context, id string) (value string, found bool, err error)
	Set(ctx context.Context, id string) error
	Watch(ctx context.Context) (bool, error)
}
