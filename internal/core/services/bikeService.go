package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/ports"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/templates"
)

type BikeService struct {
	fleet     *FleetService
	templates templates.Set
	logger    ports.LoggerPort
	validate  *validator.Validate
	cache     ports.CachePort
}

func NewBikeService(
	fleet *FleetService,
	set templates.Set,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeService {
	return &BikeService{
		fleet:     fleet,
		templates: set,
		logger:    logger,
		validate:  validate,
		cache:     cache,
	}
}

func (s *BikeService) normalizeInput(input domain.BikeInput) (domain.BikeInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Brand = strings.TrimSpace(input.Brand)
	input.Model = strings.TrimSpace(input.Model)
	input.WheelSize = strings.TrimSpace(input.WheelSize)
	if err := s.validate.Struct(input); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return input, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if input.WheelSize == "" {
		input.WheelSize = input.Type.DefaultWheelSize()
	}
	return input, nil
}

// CreateBike adds a bike built from its type's template and makes it current.
func (s *BikeService) CreateBike(ctx context.Context, input domain.BikeInput) (*domain.Bike, error) {
	input, err := s.normalizeInput(input)
	if err != nil {
		return nil, err
	}

	now := s.fleet.now()
	id := uuid.New().String()
	cfg := templates.NewBikeConfiguration(input.Type, now)
	bike := domain.Bike{
		ID:               id,
		Name:             input.Name,
		Brand:            input.Brand,
		Model:            input.Model,
		Year:             input.Year,
		Type:             input.Type,
		WheelSize:        input.WheelSize,
		CreatedAt:        now,
		MaintenanceItems: s.templates.For(input.Type).Instantiate(id, now),
		Configuration:    &cfg,
		Links:            []domain.DocumentationLink{},
	}

	err = s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		snap.Bikes = append(snap.Bikes, bike)
		snap.CurrentBikeID = id
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
			"name":  input.Name,
		})
		return nil, err
	}

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id":     id,
		"type":        input.Type,
		"items_count": len(bike.MaintenanceItems),
	})
	created := bike.Clone()
	return &created, nil
}

func (s *BikeService) GetBike(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bike, err := s.fleet.bike(bikeID)
	if err != nil {
		s.logger.Warn("Bike not found", map[string]interface{}{
			"bike_id": bikeID,
		})
		return nil, err
	}
	return &bike, nil
}

func (s *BikeService) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	snap := s.fleet.Snapshot()
	if snap.Bikes == nil {
		return []domain.Bike{}, nil
	}
	return snap.Bikes, nil
}

// UpdateBike replaces the identity fields only. Items, configuration and
// links stay as they are, even when the type changes.
func (s *BikeService) UpdateBike(ctx context.Context, bikeID string, input domain.BikeInput) (*domain.Bike, error) {
	input, err := s.normalizeInput(input)
	if err != nil {
		return nil, err
	}

	var updated domain.Bike
	err = s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		bike, ok := snap.Bike(bikeID)
		if !ok {
			return domain.ErrBikeNotFound
		}
		bike.Name = input.Name
		bike.Brand = input.Brand
		bike.Model = input.Model
		bike.Year = input.Year
		bike.Type = input.Type
		bike.WheelSize = input.WheelSize
		updated = bike.Clone()
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.invalidate(bikeID)
	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bikeID,
	})
	return &updated, nil
}

// DeleteBike removes the bike with everything it owns. When it was current,
// the first remaining bike takes its place.
func (s *BikeService) DeleteBike(ctx context.Context, bikeID string) error {
	err := s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Bikes {
			if snap.Bikes[i].ID == bikeID {
				snap.Bikes = append(snap.Bikes[:i], snap.Bikes[i+1:]...)
				snap.ResolveCurrent()
				return nil
			}
		}
		return domain.ErrBikeNotFound
	})
	if err != nil {
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	s.invalidate(bikeID)
	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})
	return nil
}

// invalidate drops cached recommendations for the bike.
func (s *BikeService) invalidate(bikeID string) {
	dropRecommendation(s.cache, s.logger, bikeID, s.fleet.now())
}
