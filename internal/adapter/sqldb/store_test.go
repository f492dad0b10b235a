package sqldb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "fleet.db")
	db, err := Open(context.Background(), DriverSQLite, dsn, "migrations")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSnapshotStore(db, DriverSQLite)
}

func TestSnapshotStore_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.LoadSnapshot(ctx); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("LoadSnapshot err = %v, want ErrSnapshotNotFound", err)
	}
	if _, err := store.LoadBackup(ctx); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("LoadBackup err = %v, want ErrSnapshotNotFound", err)
	}
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := &domain.Snapshot{
		Bikes: []domain.Bike{
			{ID: "1", Name: "Trail Ripper", Type: domain.Mountain, Configuration: &domain.Configuration{ForkPressure: 85, HasShock: true}},
			{ID: "2", Name: "Gravel Explorer", Type: domain.Gravel},
		},
		CurrentBikeID: "2",
		SchemaVersion: domain.CurrentSchemaVersion,
	}
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	snap.CurrentBikeID = "1"
	snap.Bikes = snap.Bikes[:1]
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot overwrite: %v", err)
	}

	got, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if got.CurrentBikeID != "1" || got.SchemaVersion != domain.CurrentSchemaVersion {
		t.Fatalf("loaded header = %q/%q", got.CurrentBikeID, got.SchemaVersion)
	}
	if len(got.Bikes) != 1 || got.Bikes[0].Name != "Trail Ripper" {
		t.Fatalf("loaded bikes = %+v", got.Bikes)
	}
	if cfg := got.Bikes[0].Configuration; cfg == nil || cfg.ForkPressure != 85 || !cfg.HasShock {
		t.Fatalf("configuration not persisted: %+v", cfg)
	}
}

func TestSnapshotStore_Backup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	at := time.Date(2025, time.May, 4, 12, 0, 0, 0, time.UTC)
	backup := &domain.Backup{
		Bikes:         []domain.Bike{{ID: "old", Name: "Legacy"}},
		CurrentBikeID: "old",
		BackupDate:    at,
		Version:       domain.UnknownSchemaVersion,
	}
	if err := store.SaveBackup(ctx, backup); err != nil {
		t.Fatalf("SaveBackup: %v", err)
	}

	got, err := store.LoadBackup(ctx)
	if err != nil {
		t.Fatalf("LoadBackup: %v", err)
	}
	if got.Version != domain.UnknownSchemaVersion || !got.BackupDate.Equal(at) || got.Bikes[0].Name != "Legacy" {
		t.Fatalf("backup = %+v", got)
	}
	if _, err := store.LoadSnapshot(ctx); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("backup must not count as a snapshot, err = %v", err)
	}
}

func TestSnapshotStore_LegacyRowsWithoutVersion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.db.ExecContext(ctx, store.upsertQuery(), KeyBikes, `[{"id":"a","name":"Old","type":"mountain"}]`); err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	got, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if got.SchemaVersion != "" || got.CurrentBikeID != "" || len(got.Bikes) != 1 {
		t.Fatalf("legacy snapshot = %+v", got)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "", "migrations"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
