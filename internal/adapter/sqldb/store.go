package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

// Keys of the kv_store rows that make up a snapshot.
const (
	KeyBikes         = "bikes"
	KeyCurrentBikeID = "current_bike_id"
	KeyDataVersion   = "data_version"
	KeyAutoBackup    = "auto_backup"
)

// SnapshotStore keeps the fleet as JSON values in the kv_store table.
type SnapshotStore struct {
	db     *sql.DB
	driver string
}

func NewSnapshotStore(db *sql.DB, driver string) *SnapshotStore {
	return &SnapshotStore{db: db, driver: driver}
}

func (r *SnapshotStore) upsertQuery() string {
	if r.driver == DriverPostgres {
		return `INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	}
	return `INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
}

func (r *SnapshotStore) selectQuery() string {
	if r.driver == DriverPostgres {
		return `SELECT value FROM kv_store WHERE key = $1`
	}
	return `SELECT value FROM kv_store WHERE key = ?`
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (r *SnapshotStore) get(ctx context.Context, q queryer, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, r.selectQuery(), key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(err, "read "+key)
	}
	return value, true, nil
}

func (r *SnapshotStore) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: r.driver == DriverPostgres})
	if err != nil {
		return nil, wrapErr(err, "begin read")
	}
	defer tx.Rollback()

	bikes, ok, err := r.get(ctx, tx, KeyBikes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	current, _, err := r.get(ctx, tx, KeyCurrentBikeID)
	if err != nil {
		return nil, err
	}
	version, _, err := r.get(ctx, tx, KeyDataVersion)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.Snapshot{CurrentBikeID: current, SchemaVersion: version}
	if err := json.Unmarshal([]byte(bikes), &snapshot.Bikes); err != nil {
		return nil, fmt.Errorf("decode bikes: %w", err)
	}
	return snapshot, nil
}

// SaveSnapshot writes bikes, current bike id and version in one transaction.
func (r *SnapshotStore) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	bikes := snapshot.Bikes
	if bikes == nil {
		bikes = []domain.Bike{}
	}
	data, err := json.Marshal(bikes)
	if err != nil {
		return fmt.Errorf("encode bikes: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr(err, "begin write")
	}
	defer tx.Rollback()

	rows := [][2]string{
		{KeyBikes, string(data)},
		{KeyCurrentBikeID, snapshot.CurrentBikeID},
		{KeyDataVersion, snapshot.SchemaVersion},
	}
	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, r.upsertQuery(), row[0], row[1]); err != nil {
			return wrapErr(err, "write "+row[0])
		}
	}
	if err := tx.Commit(); err != nil {
		return wrapErr(err, "commit snapshot")
	}
	return nil
}

func (r *SnapshotStore) SaveBackup(ctx context.Context, backup *domain.Backup) error {
	data, err := json.Marshal(backup)
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.upsertQuery(), KeyAutoBackup, string(data)); err != nil {
		return wrapErr(err, "write backup")
	}
	return nil
}

func (r *SnapshotStore) LoadBackup(ctx context.Context) (*domain.Backup, error) {
	value, ok, err := r.get(ctx, r.db, KeyAutoBackup)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	var backup domain.Backup
	if err := json.Unmarshal([]byte(value), &backup); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return &backup, nil
}

func wrapErr(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42P01":
			return fmt.Errorf("%s: kv_store table is missing, migrations not applied: %w", op, err)
		case "23502":
			return fmt.Errorf("%s: required field is missing: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
