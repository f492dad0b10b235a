// Package memory holds process-local implementations of the store and
// cache ports. Nothing survives a restart.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

type SnapshotStore struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot
	backup   *domain.Backup
	// FailSave makes the next saves fail with this error when set.
	FailSave error
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	dup := s.snapshot.Clone()
	return &dup, nil
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	dup := snapshot.Clone()
	s.snapshot = &dup
	return nil
}

func (s *SnapshotStore) SaveBackup(ctx context.Context, backup *domain.Backup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	dup := *backup
	dup.Bikes = domain.Snapshot{Bikes: backup.Bikes}.Clone().Bikes
	s.backup = &dup
	return nil
}

func (s *SnapshotStore) LoadBackup(ctx context.Context) (*domain.Backup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backup == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	dup := *s.backup
	return &dup, nil
}

// ErrCacheMiss is returned by Cache.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache miss")

type entry struct {
	value   []byte
	expires time.Time
}

// Cache is a TTL map used when no Redis server is configured.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]entry), now: time.Now}
}

func (c *Cache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, ErrCacheMiss
	}
	return append([]byte(nil), e.value...), nil
}

func (c *Cache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

func (c *Cache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}
