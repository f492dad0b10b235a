package ports

import (
	"context"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

type SnapshotStore interface {
	// LoadSnapshot returns domain.ErrSnapshotNotFound when nothing was saved yet.
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
	SaveBackup(ctx context.Context, backup *domain.Backup) error
	LoadBackup(ctx context.Context) (*domain.Backup, error)
}
