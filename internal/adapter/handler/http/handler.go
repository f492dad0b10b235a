package http

import (
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/ports"
)

// Handler serves every REST endpoint of the tracker.
type Handler struct {
	fleet           ports.FleetService
	bikes           ports.BikeService
	maintenance     ports.MaintenanceService
	recommendations ports.RecommendationService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

func NewHandler(
	fleet ports.FleetService,
	bikes ports.BikeService,
	maintenance ports.MaintenanceService,
	recommendations ports.RecommendationService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *Handler {
	return &Handler{
		fleet:           fleet,
		bikes:           bikes,
		maintenance:     maintenance,
		recommendations: recommendations,
		logger:          logger,
		metrics:         metrics,
	}
}
