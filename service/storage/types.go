package storage

import "context"

// Service is a durable string key/value store.
type Service interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
	Vacuum(ctx context.Context) error
	Path() string
	Close() error
}
