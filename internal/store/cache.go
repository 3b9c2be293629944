// Package store provides the on-disk cache for provider model lists.
//
// Each provider gets one JSON document under the cache directory. There is
// no cross-process locking: concurrent CLI invocations race with
// last-writer-wins semantics, which is fine for a single-user tool.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/llminfo/internal/llm"
)

// DefaultTTL is the cache validity window when the config does not set one.
const DefaultTTL = time.Hour

// Entry is the persisted cache document for one provider.
type Entry struct {
	CachedAt time.Time       `json:"cached_at"`
	Provider string          `json:"provider"`
	Models   []llm.ModelInfo `json:"models"`
}

// Cache is a file-backed model cache with TTL expiry.
type Cache struct {
	dir string
	ttl time.Duration
	log *logrus.Logger
}

// New creates the cache directory if needed and returns a cache handle.
func New(dir string, ttl time.Duration, log *logrus.Logger) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl, log: log}, nil
}

// Path returns the cache file path for a provider.
func (c *Cache) Path(providerName string) string {
	return filepath.Join(c.dir, providerName+"_models.json")
}

// Get returns the cached model list for a provider, or nil when there is no
// cache file or the entry is older than the TTL. Expiry does not delete the
// file. A file that exists but cannot be read or decoded is an error.
func (c *Cache) Get(providerName string) ([]llm.ModelInfo, error) {
	data, err := os.ReadFile(c.Path(providerName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache for %s: %w", providerName, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding cache for %s: %w", providerName, err)
	}

	if time.Since(entry.CachedAt) > c.ttl {
		c.log.WithField("provider", providerName).Debug("cache entry expired")
		return nil, nil
	}

	return entry.Models, nil
}

// Set overwrites the provider's cache file with the given models.
func (c *Cache) Set(providerName string, models []llm.ModelInfo) error {
	entry := Entry{
		CachedAt: time.Now(),
		Provider: providerName,
		Models:   models,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache for %s: %w", providerName, err)
	}

	if err := os.WriteFile(c.Path(providerName), data, 0o600); err != nil {
		return fmt.Errorf("writing cache for %s: %w", providerName, err)
	}
	return nil
}

// Invalidate removes the provider's cache file. A file that is already
// absent is not an error, and removal failures are best-effort.
func (c *Cache) Invalidate(providerName string) {
	if err := os.Remove(c.Path(providerName)); err != nil && !os.IsNotExist(err) {
		c.log.WithField("provider", providerName).WithError(err).Debug("cache invalidation failed")
	}
}
