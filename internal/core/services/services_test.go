package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/memory"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/templates"
)

var now = time.Date(2025, time.October, 1, 9, 30, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type fakeMetrics struct {
	mu              sync.Mutex
	urgent          int
	migrations      []string
	recommendations map[string]int
}

func (m *fakeMetrics) RecordMetrics(*gin.Context, time.Time) {}

func (m *fakeMetrics) SetUrgentItems(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urgent = n
}

func (m *fakeMetrics) IncMigration(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.migrations = append(m.migrations, from+"->"+to)
}

func (m *fakeMetrics) IncRecommendation(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recommendations == nil {
		m.recommendations = make(map[string]int)
	}
	m.recommendations[outcome]++
}

type fakeRecommender struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (r *fakeRecommender) Recommend(ctx context.Context, prompt string) (string, error) {
	r.calls++
	r.prompts = append(r.prompts, prompt)
	if r.err != nil {
		return "", r.err
	}
	return r.text, nil
}

type fixture struct {
	store       *memory.SnapshotStore
	cache       *memory.Cache
	metrics     *fakeMetrics
	fleet       *FleetService
	bikes       *BikeService
	maintenance *MaintenanceService
}

// newFixture wires the services over in-memory adapters with a frozen clock.
// The store is not loaded so tests can seed it first.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	set := templates.Default()
	f := &fixture{
		store:   memory.NewSnapshotStore(),
		cache:   memory.NewCache(),
		metrics: &fakeMetrics{},
	}
	f.fleet = NewFleetService(f.store, set, nopLogger{}, f.metrics)
	f.fleet.now = func() time.Time { return now }
	f.bikes = NewBikeService(f.fleet, set, nopLogger{}, validator.New(), f.cache)
	f.maintenance = NewMaintenanceService(f.fleet, nopLogger{}, f.metrics, f.cache)
	return f
}

// loadedFixture is newFixture with the default fleet seeded.
func loadedFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	require.NoError(t, f.fleet.Load(context.Background()))
	return f
}

func (f *fixture) recommendations(r *fakeRecommender) *RecommendationService {
	if r == nil {
		return NewRecommendationService(f.fleet, nil, f.cache, time.Hour, nopLogger{}, f.metrics)
	}
	return NewRecommendationService(f.fleet, r, f.cache, time.Hour, nopLogger{}, f.metrics)
}
