package versionstore

import (
	"context"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/storage"
	"github.com/thirukguru/release-notice/utils/logger"
)

// KVStore is the subset of the key/value store used by the version store.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
}

var _ KVStore = (storage.Service)(nil)

type service struct {
	kv     KVStore
	prefix string
	log    *logger.Logger
}

// Service persists one VersionRecord per version under a namespaced key.
type Service interface {
	Key(version string) string
	Get(ctx context.Context, version string) (*model.VersionRecord, bool)
	Put(ctx context.Context, record model.VersionRecord) error
	Delete(ctx context.Context, version string) (bool, error)
	List(ctx context.Context) ([]model.VersionRecord, error)
}
