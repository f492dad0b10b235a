package ports

import (
	"context"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/maintenance"
)

type FleetService interface {
	Load(ctx context.Context) error
	Snapshot() domain.Snapshot
	SelectBike(ctx context.Context, bikeID string) error
	Export() domain.ExportDocument
	Import(ctx context.Context, raw []byte) (*domain.Snapshot, error)
	Backup(ctx context.Context) (*domain.Backup, error)
}

type BikeService interface {
	CreateBike(ctx context.Context, input domain.BikeInput) (*domain.Bike, error)
	GetBike(ctx context.Context, bikeID string) (*domain.Bike, error)
	ListBikes(ctx context.Context) ([]domain.Bike, error)
	UpdateBike(ctx context.Context, bikeID string, input domain.BikeInput) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID string) error
	GetConfiguration(ctx context.Context, bikeID string) (*domain.Configuration, error)
	UpdateConfiguration(ctx context.Context, bikeID string, cfg domain.Configuration) (*domain.Configuration, error)
	ListLinks(ctx context.Context, bikeID string) ([]domain.DocumentationLink, error)
	AddLink(ctx context.Context, bikeID string, link domain.DocumentationLink) (*domain.DocumentationLink, error)
	RemoveLink(ctx context.Context, bikeID, linkID string) error
}

type MaintenanceService interface {
	ListItems(ctx context.Context, bikeID string, filter domain.Status) (*maintenance.ItemList, error)
	CycleItemStatus(ctx context.Context, bikeID, itemID string) (*maintenance.ItemView, error)
	SetLastPerformed(ctx context.Context, bikeID, itemID string, at time.Time) (*maintenance.ItemView, error)
	FleetStats(ctx context.Context) maintenance.FleetStats
	UrgentItems(ctx context.Context) []maintenance.UrgentItem
	FlagOverdue(ctx context.Context, now time.Time) (int, error)
}

type RecommendationService interface {
	Generate(ctx context.Context, bikeID string) (*domain.Recommendation, error)
}
