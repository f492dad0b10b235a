package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/maintenance"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/ports"
)

type MaintenanceService struct {
	fleet   *FleetService
	logger  ports.LoggerPort
	metrics ports.MetricsPort
	cache   ports.CachePort
}

func NewMaintenanceService(
	fleet *FleetService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	cache ports.CachePort,
) *MaintenanceService {
	return &MaintenanceService{
		fleet:   fleet,
		logger:  logger,
		metrics: metrics,
		cache:   cache,
	}
}

// ListItems returns one bike's checklist. An empty filter lists every item.
func (s *MaintenanceService) ListItems(ctx context.Context, bikeID string, filter domain.Status) (*maintenance.ItemList, error) {
	if filter != "" && !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown status filter %q", domain.ErrInvalidInput, filter)
	}
	bike, err := s.fleet.bike(bikeID)
	if err != nil {
		return nil, err
	}
	list := maintenance.BuildList(bike, filter, s.fleet.now())
	return &list, nil
}

// CycleItemStatus advances the item pending -> completed -> not_applicable -> pending.
func (s *MaintenanceService) CycleItemStatus(ctx context.Context, bikeID, itemID string) (*maintenance.ItemView, error) {
	now := s.fleet.now()
	var (
		from domain.Status
		view maintenance.ItemView
	)
	err := s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		item, err := findItem(snap, bikeID, itemID)
		if err != nil {
			return err
		}
		from = item.Status
		*item = maintenance.Cycle(*item, now)
		view = maintenance.View(*item, now)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to cycle item status", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"item_id": itemID,
		})
		return nil, err
	}

	dropRecommendation(s.cache, s.logger, bikeID, now)
	s.logger.Info("Item status changed", map[string]interface{}{
		"bike_id": bikeID,
		"item_id": itemID,
		"from":    from,
		"to":      view.Status,
	})
	s.refreshUrgentGauge()
	return &view, nil
}

// SetLastPerformed records when the task was last done. Future dates are rejected.
func (s *MaintenanceService) SetLastPerformed(ctx context.Context, bikeID, itemID string, at time.Time) (*maintenance.ItemView, error) {
	now := s.fleet.now()
	if at.IsZero() || at.After(now) {
		return nil, fmt.Errorf("%w: lastPerformed must not be in the future", domain.ErrInvalidInput)
	}

	var view maintenance.ItemView
	err := s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		item, err := findItem(snap, bikeID, itemID)
		if err != nil {
			return err
		}
		item.LastPerformed = at
		view = maintenance.View(*item, now)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to set last performed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"item_id": itemID,
		})
		return nil, err
	}

	dropRecommendation(s.cache, s.logger, bikeID, now)
	s.logger.Info("Last performed date updated", map[string]interface{}{
		"bike_id":        bikeID,
		"item_id":        itemID,
		"last_performed": at.Format(time.RFC3339),
	})
	return &view, nil
}

func (s *MaintenanceService) FleetStats(ctx context.Context) maintenance.FleetStats {
	return maintenance.ComputeFleetStats(s.fleet.Snapshot().Bikes)
}

func (s *MaintenanceService) UrgentItems(ctx context.Context) []maintenance.UrgentItem {
	urgent := maintenance.RankUrgent(s.fleet.Snapshot().Bikes)
	s.metrics.SetUrgentItems(len(urgent))
	return urgent
}

// FlagOverdue marks pending items whose day interval has elapsed as overdue.
// Items with usage-based intervals are never touched.
func (s *MaintenanceService) FlagOverdue(ctx context.Context, now time.Time) (int, error) {
	flagged := 0
	var touched []string
	err := s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		flagged, touched = 0, nil
		for i := range snap.Bikes {
			items := snap.Bikes[i].MaintenanceItems
			before := flagged
			for j := range items {
				if items[j].Status != domain.StatusPending {
					continue
				}
				if maintenance.OverdueCheck(items[j], now) == maintenance.Overdue {
					items[j].Status = domain.StatusOverdue
					flagged++
				}
			}
			if flagged > before {
				touched = append(touched, snap.Bikes[i].ID)
			}
		}
		if flagged == 0 {
			return errNothingChanged
		}
		return nil
	})
	if errors.Is(err, errNothingChanged) {
		return 0, nil
	}
	if err != nil {
		s.logger.Error("Failed to flag overdue items", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}

	for _, bikeID := range touched {
		dropRecommendation(s.cache, s.logger, bikeID, s.fleet.now())
	}
	s.logger.Info("Overdue items flagged", map[string]interface{}{
		"flagged": flagged,
	})
	s.refreshUrgentGauge()
	return flagged, nil
}

func (s *MaintenanceService) refreshUrgentGauge() {
	s.metrics.SetUrgentItems(len(maintenance.RankUrgent(s.fleet.Snapshot().Bikes)))
}

func findItem(snap *domain.Snapshot, bikeID, itemID string) (*domain.MaintenanceItem, error) {
	bike, ok := snap.Bike(bikeID)
	if !ok {
		return nil, domain.ErrBikeNotFound
	}
	item, ok := bike.Item(itemID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}
