package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

// KeyPrefix namespaces every key the tracker writes.
const KeyPrefix = "mtb-tracker:"

const (
	keyBikes         = KeyPrefix + "bikes"
	keyCurrentBikeID = KeyPrefix + "current_bike_id"
	keyDataVersion   = KeyPrefix + "data_version"
	keyAutoBackup    = KeyPrefix + "auto_backup"
)

// SnapshotStore keeps the fleet under fixed keys. Snapshot keys are written
// together in a MULTI/EXEC transaction.
type SnapshotStore struct {
	client *redis.Client
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (r *SnapshotStore) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	values, err := r.client.MGet(ctx, keyBikes, keyCurrentBikeID, keyDataVersion).Result()
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	bikes, ok := values[0].(string)
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}

	snapshot := &domain.Snapshot{}
	if current, ok := values[1].(string); ok {
		snapshot.CurrentBikeID = current
	}
	if version, ok := values[2].(string); ok {
		snapshot.SchemaVersion = version
	}
	if err := json.Unmarshal([]byte(bikes), &snapshot.Bikes); err != nil {
		return nil, fmt.Errorf("decode bikes: %w", err)
	}
	return snapshot, nil
}

func (r *SnapshotStore) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	bikes := snapshot.Bikes
	if bikes == nil {
		bikes = []domain.Bike{}
	}
	data, err := json.Marshal(bikes)
	if err != nil {
		return fmt.Errorf("encode bikes: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyBikes, data, 0)
		pipe.Set(ctx, keyCurrentBikeID, snapshot.CurrentBikeID, 0)
		pipe.Set(ctx, keyDataVersion, snapshot.SchemaVersion, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotStore) SaveBackup(ctx context.Context, backup *domain.Backup) error {
	data, err := json.Marshal(backup)
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := r.client.Set(ctx, keyAutoBackup, data, 0).Err(); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

func (r *SnapshotStore) LoadBackup(ctx context.Context) (*domain.Backup, error) {
	data, err := r.client.Get(ctx, keyAutoBackup).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	var backup domain.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return &backup, nil
}
