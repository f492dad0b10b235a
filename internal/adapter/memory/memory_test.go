package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

func TestSnapshotStore_CopiesOnSaveAndLoad(t *testing.T) {
	s := NewSnapshotStore()
	ctx := context.Background()

	if _, err := s.LoadSnapshot(ctx); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("empty store err = %v", err)
	}

	snap := &domain.Snapshot{Bikes: []domain.Bike{{ID: "1", Name: "A"}}, CurrentBikeID: "1"}
	if err := s.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	snap.Bikes[0].Name = "mutated"

	got, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if got.Bikes[0].Name != "A" {
		t.Fatalf("store shares memory with caller: %q", got.Bikes[0].Name)
	}

	s.FailSave = errors.New("disk full")
	if err := s.SaveSnapshot(ctx, snap); err == nil {
		t.Fatalf("expected FailSave error")
	}
}

func TestCache_TTL(t *testing.T) {
	c := NewCache()
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if _, err := c.Get("k"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Get on empty cache err = %v", err)
	}
	_ = c.Set("k", []byte("v"), time.Hour)
	if v, err := c.Get("k"); err != nil || string(v) != "v" {
		t.Fatalf("Get = %q, %v", v, err)
	}

	now = now.Add(time.Hour)
	if _, err := c.Get("k"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expired entry still returned")
	}

	_ = c.Set("forever", []byte("x"), 0)
	_ = c.Delete("forever")
	if _, err := c.Get("forever"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("deleted entry still returned")
	}
}
