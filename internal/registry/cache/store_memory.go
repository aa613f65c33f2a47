package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const memoryBackend = "memory"

type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store bounded by capacity. When full, the
// least recently used entry is evicted.
type MemoryStore struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[string, entry]
	capacity int
	now      func() time.Time
	logger   *slog.Logger

	hits      uint64
	misses    uint64
	evictions uint64
	expired   uint64
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithLogger sets the logger used by the sweeper.
func WithLogger(logger *slog.Logger) MemoryOption {
	return func(s *MemoryStore) {
		s.logger = logger
	}
}

// NewMemoryStore creates an in-memory store holding at most capacity entries.
func NewMemoryStore(capacity int, opts ...MemoryOption) (*MemoryStore, error) {
	lru, err := simplelru.NewLRU[string, entry](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	s := &MemoryStore{
		lru:      lru,
		capacity: capacity,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lru.Get(key)
	if !ok {
		s.misses++
		return nil, false, nil
	}
	if !s.now().Before(e.expiresAt) {
		s.lru.Remove(key)
		s.expired++
		s.misses++
		return nil, false, nil
	}
	s.hits++
	return e.data, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	data := append([]byte(nil), value...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if evicted := s.lru.Add(key, entry{data: data, expiresAt: s.now().Add(ttl)}); evicted {
		s.evictions++
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Remove(key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Purge()
	return nil
}

// Stats reports live keys only; expired entries awaiting a sweep are hidden.
func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	keys := make([]string, 0, s.lru.Len())
	for _, k := range s.lru.Keys() {
		if e, ok := s.lru.Peek(k); ok && now.Before(e.expiresAt) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return Stats{
		Backend:   memoryBackend,
		Size:      len(keys),
		Capacity:  s.capacity,
		Keys:      keys,
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
		Expired:   s.expired,
	}, nil
}

// Sweep removes every entry expired as of now and returns how many it removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, k := range s.lru.Keys() {
		if e, ok := s.lru.Peek(k); ok && !now.Before(e.expiresAt) {
			s.lru.Remove(k)
			removed++
		}
	}
	s.expired += uint64(removed)
	return removed
}

// StartSweeper runs Sweep every interval until ctx is cancelled.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.logger.DebugContext(ctx, "cache sweep", "removed", n)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
