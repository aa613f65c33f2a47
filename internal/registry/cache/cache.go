// Package cache stores serialised responses with an absolute expiry. Reads of
// an expired entry miss and evict it; a periodic sweep bounds memory between
// reads.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Store is a TTL-bounded byte cache. Set overwrites unconditionally.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
}

// Stats is a point-in-time view of a store.
type Stats struct {
	Backend   string   `json:"backend"`
	Size      int      `json:"size"`
	Capacity  int      `json:"capacity,omitempty"`
	Keys      []string `json:"keys"`
	Hits      uint64   `json:"hits"`
	Misses    uint64   `json:"misses"`
	Evictions uint64   `json:"evictions"`
	Expired   uint64   `json:"expired"`
}

const keySeparator = ":"

// Key builds a cache key from a prefix and the values of params taken in the
// order of names. Absent params contribute an empty segment, so the same
// query always maps to the same key and different queries never collide.
func Key(prefix string, names []string, params map[string]string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, name := range names {
		b.WriteString(keySeparator)
		b.WriteString(escape(params[name]))
	}
	return b.String()
}

func escape(segment string) string {
	segment = strings.ReplaceAll(segment, "%", "%25")
	return strings.ReplaceAll(segment, keySeparator, "%3A")
}

// GetJSON reads and decodes a cached value.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var out T
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return out, true, nil
}

// SetJSON encodes and stores a value.
func SetJSON(ctx context.Context, s Store, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s for cache: %w", key, err)
	}
	return s.Set(ctx, key, raw, ttl)
}
