package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/maintenance"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/ports"
)

type RecommendationService struct {
	fleet       *FleetService
	recommender ports.Recommender
	cache       ports.CachePort
	cacheTTL    time.Duration
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

// NewRecommendationService builds the service. A nil recommender means no
// API key was configured and every request fails with ErrRecommenderUnavailable.
func NewRecommendationService(
	fleet *FleetService,
	recommender ports.Recommender,
	cache ports.CachePort,
	cacheTTL time.Duration,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *RecommendationService {
	return &RecommendationService{
		fleet:       fleet,
		recommender: recommender,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
		metrics:     metrics,
	}
}

func recommendationCacheKey(bikeID string, now time.Time) string {
	return fmt.Sprintf("recommendation:%s:%s", bikeID, now.Format("2006-01-02"))
}

// dropRecommendation clears today's cached advice for a bike after its data changed.
func dropRecommendation(cache ports.CachePort, logger ports.LoggerPort, bikeID string, now time.Time) {
	if err := cache.Delete(recommendationCacheKey(bikeID, now)); err != nil {
		logger.Warn("Failed to invalidate recommendation cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	}
}

// Generate asks the recommender about a copy of the bike. It only reads the
// fleet, so a failed call leaves every stored record untouched.
func (s *RecommendationService) Generate(ctx context.Context, bikeID string) (*domain.Recommendation, error) {
	bike, err := s.fleet.bike(bikeID)
	if err != nil {
		return nil, err
	}
	if s.recommender == nil {
		s.metrics.IncRecommendation("unavailable")
		return nil, domain.ErrRecommenderUnavailable
	}

	now := s.fleet.now()
	rec := &domain.Recommendation{
		BikeID:      bikeID,
		Season:      maintenance.Season(now.Month()),
		GeneratedAt: now,
	}

	key := recommendationCacheKey(bikeID, now)
	if cached, err := s.cache.Get(key); err == nil && len(cached) > 0 {
		s.logger.Info("Recommendation found in cache", map[string]interface{}{
			"bike_id": bikeID,
		})
		s.metrics.IncRecommendation("cached")
		rec.Text = string(cached)
		rec.Cached = true
		return rec, nil
	}

	text, err := s.recommender.Recommend(ctx, BuildPrompt(bike, now))
	if err != nil {
		s.logger.Error("Failed to generate recommendations", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		s.metrics.IncRecommendation("error")
		return nil, fmt.Errorf("%w: %w", domain.ErrRecommendationFailed, err)
	}
	rec.Text = text

	if err := s.cache.Set(key, []byte(text), s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache recommendation", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	}

	s.metrics.IncRecommendation("generated")
	s.logger.Info("Recommendations generated", map[string]interface{}{
		"bike_id": bikeID,
		"length":  len(text),
	})
	return rec, nil
}

// BuildPrompt describes the bike and its checklist for a chat model.
func BuildPrompt(bike domain.Bike, now time.Time) string {
	season := maintenance.Season(now.Month())

	var b strings.Builder
	b.WriteString("You are a professional bike mechanic AI assistant. Analyze the maintenance status of this bike and provide prioritized recommendations.\n\n")
	b.WriteString("Bike Details:\n")
	fmt.Fprintf(&b, "- %s (%s %s)\n", bike.Name, bike.Brand, bike.Model)
	fmt.Fprintf(&b, "- Year: %d (%d years old)\n", bike.Year, now.Year()-bike.Year)
	fmt.Fprintf(&b, "- Type: %s\n", bike.Type)
	fmt.Fprintf(&b, "- Current Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Season: %s\n\n", season)

	b.WriteString("Maintenance Items Status:\n")
	for _, item := range bike.MaintenanceItems {
		fmt.Fprintf(&b, "- %s: %s, last done %d days ago, priority: %s, interval: every %g %s",
			item.Name, item.Status, maintenance.DaysSince(item.LastPerformed, now),
			item.Priority, item.Interval, item.IntervalUnit)
		if item.Notes != "" {
			fmt.Fprintf(&b, ", notes: %s", item.Notes)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nPlease provide maintenance recommendations in this exact format:\n\n")
	b.WriteString("IMMEDIATE ACTION (Next 7 days):\n[List items that are overdue or safety-critical]\n\n")
	b.WriteString("PLAN SOON (Next 30 days):\n[List items coming due or recommended based on patterns]\n\n")
	fmt.Fprintf(&b, "SEASONAL ADVICE:\n[Seasonal maintenance tips for %s]\n\n", season)
	b.WriteString("GENERAL TIPS:\n[Any patterns or advice based on the maintenance history]\n\n")
	b.WriteString("Be specific about why each item is recommended, include timeframes, and consider the bike type and age. ")
	b.WriteString("Keep recommendations practical and prioritized by safety first, then performance.")
	return b.String()
}
