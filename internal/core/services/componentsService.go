package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

// Configuration and documentation links are the per-bike records a user
// edits beside the checklist.

func (s *BikeService) GetConfiguration(ctx context.Context, bikeID string) (*domain.Configuration, error) {
	bike, err := s.fleet.bike(bikeID)
	if err != nil {
		return nil, err
	}
	if bike.Configuration == nil {
		return &domain.Configuration{}, nil
	}
	return bike.Configuration, nil
}

// UpdateConfiguration replaces the whole configuration. Shock values are
// zeroed when the bike has no shock.
func (s *BikeService) UpdateConfiguration(ctx context.Context, bikeID string, cfg domain.Configuration) (*domain.Configuration, error) {
	if err := s.validate.Struct(cfg); err != nil {
		s.logger.Error("Configuration validation failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	cfg.Normalize()
	cfg.Complete()
	cfg.LastUpdated = s.fleet.now()

	err := s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		bike, ok := snap.Bike(bikeID)
		if !ok {
			return domain.ErrBikeNotFound
		}
		saved := cfg.Clone()
		bike.Configuration = &saved
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to update configuration", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.invalidate(bikeID)
	s.logger.Info("Configuration updated", map[string]interface{}{
		"bike_id":   bikeID,
		"has_shock": cfg.HasShock,
	})
	return &cfg, nil
}

func (s *BikeService) ListLinks(ctx context.Context, bikeID string) ([]domain.DocumentationLink, error) {
	bike, err := s.fleet.bike(bikeID)
	if err != nil {
		return nil, err
	}
	if bike.Links == nil {
		return []domain.DocumentationLink{}, nil
	}
	return bike.Links, nil
}

// AddLink appends a link after trimming and validating it. Only absolute
// URLs are accepted.
func (s *BikeService) AddLink(ctx context.Context, bikeID string, link domain.DocumentationLink) (*domain.DocumentationLink, error) {
	link.Title = strings.TrimSpace(link.Title)
	link.URL = strings.TrimSpace(link.URL)
	link.Description = strings.TrimSpace(link.Description)

	if err := s.validate.Struct(link); err != nil {
		s.logger.Error("Link validation failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if u, err := url.Parse(link.URL); err != nil || !u.IsAbs() || u.Host == "" {
		s.logger.Error("Link URL is not absolute", map[string]interface{}{
			"url":     link.URL,
			"bike_id": bikeID,
		})
		return nil, fmt.Errorf("%w: url must be absolute", domain.ErrInvalidInput)
	}
	link.ID = uuid.New().String()

	err := s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		bike, ok := snap.Bike(bikeID)
		if !ok {
			return domain.ErrBikeNotFound
		}
		bike.Links = append(bike.Links, link)
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to add link", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.logger.Info("Link added", map[string]interface{}{
		"bike_id": bikeID,
		"link_id": link.ID,
	})
	return &link, nil
}

func (s *BikeService) RemoveLink(ctx context.Context, bikeID, linkID string) error {
	err := s.fleet.mutate(ctx, func(snap *domain.Snapshot) error {
		bike, ok := snap.Bike(bikeID)
		if !ok {
			return domain.ErrBikeNotFound
		}
		for i := range bike.Links {
			if bike.Links[i].ID == linkID {
				bike.Links = append(bike.Links[:i], bike.Links[i+1:]...)
				return nil
			}
		}
		return domain.ErrLinkNotFound
	})
	if err != nil {
		s.logger.Error("Failed to remove link", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"link_id": linkID,
		})
		return err
	}

	s.logger.Info("Link removed", map[string]interface{}{
		"bike_id": bikeID,
		"link_id": linkID,
	})
	return nil
}
