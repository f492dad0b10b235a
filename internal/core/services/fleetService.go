package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/migration"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/ports"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/templates"
)

// errNothingChanged aborts a mutation without saving.
var errNothingChanged = errors.New("nothing changed")

// FleetService owns the in-memory fleet. Every change goes through mutate,
// which saves a modified copy before swapping it in.
type FleetService struct {
	mu        sync.RWMutex
	snapshot  domain.Snapshot
	store     ports.SnapshotStore
	engine    *migration.Engine
	templates templates.Set
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
	now       func() time.Time
}

func NewFleetService(
	store ports.SnapshotStore,
	set templates.Set,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *FleetService {
	return &FleetService{
		store:     store,
		engine:    migration.New(domain.CurrentSchemaVersion, set),
		templates: set,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Load reads the persisted snapshot, seeding the sample fleet on first run
// and migrating older schemas once.
func (s *FleetService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	saved, err := s.store.LoadSnapshot(ctx)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		seed := domain.Snapshot{
			Bikes:         templates.DefaultFleet(s.templates, now),
			SchemaVersion: domain.CurrentSchemaVersion,
		}
		seed.ResolveCurrent()
		if err := s.store.SaveSnapshot(ctx, &seed); err != nil {
			s.logger.Error("Failed to save default fleet", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("save default fleet: %w", err)
		}
		s.snapshot = seed
		s.logger.Info("Loaded default fleet", map[string]interface{}{
			"bikes_count": len(seed.Bikes),
		})
		return nil
	}
	if err != nil {
		s.logger.Error("Failed to load snapshot", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("load snapshot: %w", err)
	}

	migrated, backup := s.engine.Migrate(*saved, now)
	migrated.ResolveCurrent()

	if backup != nil {
		if err := s.store.SaveBackup(ctx, backup); err != nil {
			s.logger.Error("Failed to save auto-backup", map[string]interface{}{
				"error":   err.Error(),
				"version": backup.Version,
			})
			return fmt.Errorf("save backup: %w", err)
		}
		if err := s.store.SaveSnapshot(ctx, &migrated); err != nil {
			s.logger.Error("Failed to save migrated snapshot", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("save migrated snapshot: %w", err)
		}
		s.metrics.IncMigration(backup.Version, migrated.SchemaVersion)
		s.logger.Info("Snapshot migrated", map[string]interface{}{
			"from":        backup.Version,
			"to":          migrated.SchemaVersion,
			"bikes_count": len(migrated.Bikes),
		})
	}

	s.snapshot = migrated
	s.logger.Info("Fleet loaded", map[string]interface{}{
		"bikes_count":     len(migrated.Bikes),
		"current_bike_id": migrated.CurrentBikeID,
	})
	return nil
}

// Snapshot returns a deep copy of the current fleet.
func (s *FleetService) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// mutate applies fn to a copy of the fleet, persists it and swaps it in.
// On any error the in-memory fleet is left as it was.
func (s *FleetService) mutate(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	next.SchemaVersion = domain.CurrentSchemaVersion
	if err := s.store.SaveSnapshot(ctx, &next); err != nil {
		s.logger.Error("Failed to save snapshot", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.snapshot = next
	return nil
}

// bike returns a copy of one bike.
func (s *FleetService) bike(bikeID string) (domain.Bike, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.snapshot.Bike(bikeID)
	if !ok {
		return domain.Bike{}, domain.ErrBikeNotFound
	}
	return b.Clone(), nil
}

func (s *FleetService) SelectBike(ctx context.Context, bikeID string) error {
	err := s.mutate(ctx, func(snap *domain.Snapshot) error {
		if _, ok := snap.Bike(bikeID); !ok {
			return domain.ErrBikeNotFound
		}
		snap.CurrentBikeID = bikeID
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("Current bike selected", map[string]interface{}{
		"bike_id": bikeID,
	})
	return nil
}

func (s *FleetService) Export() domain.ExportDocument {
	snap := s.Snapshot()
	bikes := snap.Bikes
	if bikes == nil {
		bikes = []domain.Bike{}
	}
	return domain.ExportDocument{
		Bikes:         bikes,
		CurrentBikeID: snap.CurrentBikeID,
		ExportDate:    strfmt.DateTime(s.now().UTC()),
		Version:       domain.CurrentSchemaVersion,
	}
}

// Import replaces the whole fleet with an exported document. Anything that
// is not an object with a bikes array is rejected and nothing changes.
func (s *FleetService) Import(ctx context.Context, raw []byte) (*domain.Snapshot, error) {
	doc, err := decodeImport(raw)
	if err != nil {
		s.logger.Warn("Rejected import file", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidImport, err)
	}

	var imported domain.Snapshot
	err = s.mutate(ctx, func(snap *domain.Snapshot) error {
		snap.Bikes = doc.Bikes
		snap.CurrentBikeID = doc.CurrentBikeID
		snap.ResolveCurrent()
		imported = snap.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fleet imported", map[string]interface{}{
		"bikes_count": len(imported.Bikes),
	})
	return &imported, nil
}

func decodeImport(raw []byte) (*domain.ExportDocument, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, openapierrors.New(400, "import file is not a JSON object: %v", err)
	}

	bikesRaw, ok := fields["bikes"]
	if !ok {
		return nil, validate.Required("bikes", "body", nil)
	}
	var bikes []json.RawMessage
	if err := json.Unmarshal(bikesRaw, &bikes); err != nil || bikes == nil {
		return nil, openapierrors.InvalidType("bikes", "body", "array", string(bikesRaw))
	}

	doc := &domain.ExportDocument{Bikes: make([]domain.Bike, 0, len(bikes))}
	for i, b := range bikes {
		var bike domain.Bike
		if err := json.Unmarshal(b, &bike); err != nil || string(b) == "null" {
			return nil, openapierrors.InvalidType(fmt.Sprintf("bikes.%d", i), "body", "bike", string(b))
		}
		if bike.ID == "" {
			return nil, validate.Required(fmt.Sprintf("bikes.%d.id", i), "body", nil)
		}
		doc.Bikes = append(doc.Bikes, bike)
	}
	if id, ok := fields["currentBikeId"]; ok {
		// A non-string id is ignored and the first bike becomes current.
		_ = json.Unmarshal(id, &doc.CurrentBikeID)
	}
	return doc, nil
}

// Backup returns the auto-backup written by the last migration.
func (s *FleetService) Backup(ctx context.Context) (*domain.Backup, error) {
	backup, err := s.store.LoadBackup(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			s.logger.Error("Failed to load backup", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, err
	}
	return backup, nil
}
