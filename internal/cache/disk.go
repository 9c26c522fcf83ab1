package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// DiskCache stores one JSON file per digest under a directory.
type DiskCache struct {
	dir    string
	maxAge time.Duration // 0 disables pruning
	log    *zap.Logger
}

// NewDiskCache creates the cache directory if needed.
func NewDiskCache(dir string, maxAge time.Duration, log *zap.Logger) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir, maxAge: maxAge, log: log}, nil
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get reads a cached entry. Missing, malformed, or expired files read as
// misses.
func (c *DiskCache) Get(_ context.Context, question, answer string) (*Entry, bool) {
	data, err := os.ReadFile(c.path(Key(question, answer)))
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.log.Debug("discarding malformed cache entry", zap.Error(err))
		return nil, false
	}

	if c.maxAge > 0 && time.Since(entry.CreatedAt) > c.maxAge {
		_ = os.Remove(c.path(Key(question, answer)))
		return nil, false
	}

	return &entry, true
}

// Put writes an entry, overwriting any concurrent writer's identical result.
func (c *DiskCache) Put(_ context.Context, question, answer string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(Key(question, answer)), data, 0o644)
}
