// Package versionstore keeps release announcement records in a key/value store.
package versionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/utils/logger"
)

const logCategory = "versionstore"

// NewService creates a version store writing keys as "<prefix>-<version>".
func NewService(kv KVStore, prefix string, log *logger.Logger) Service {
	return &service{kv: kv, prefix: prefix, log: log}
}

func (s *service) Key(version string) string {
	return s.prefix + "-" + version
}

// Get returns the stored record for version. Missing, unreadable and
// unparsable entries are all reported as absent.
func (s *service) Get(ctx context.Context, version string) (*model.VersionRecord, bool) {
	key := s.Key(version)
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warning(logCategory, fmt.Sprintf("read %s failed, treating as absent: %v", key, err))
		return nil, false
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, false
	}

	var record model.VersionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.log.Warning(logCategory, fmt.Sprintf("discarding malformed record under %s: %v", key, err))
		return nil, false
	}
	if record.Version == "" {
		record.Version = version
	}
	return &record, true
}

func (s *service) Put(ctx context.Context, record model.VersionRecord) error {
	if record.Version == "" {
		return errors.New("record version is required")
	}
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode version record: %w", err)
	}
	if err := s.kv.Set(ctx, s.Key(record.Version), string(b)); err != nil {
		return fmt.Errorf("failed to store version %s: %w", record.Version, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, version string) (bool, error) {
	return s.kv.Delete(ctx, s.Key(version))
}

// List returns every readable record under the prefix, ordered by key.
func (s *service) List(ctx context.Context) ([]model.VersionRecord, error) {
	keys, err := s.kv.Keys(ctx, s.prefix+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to list version keys: %w", err)
	}

	records := make([]model.VersionRecord, 0, len(keys))
	for _, key := range keys {
		record, ok := s.Get(ctx, strings.TrimPrefix(key, s.prefix+"-"))
		if !ok {
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}
