package templates

import (
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

// seedStatuses overrides the pending default on the sample bikes so a first
// run shows a realistic mix of states.
var seedStatuses = map[string]map[int]domain.Status{
	"1": {
		2: domain.StatusCompleted, 4: domain.StatusCompleted, 6: domain.StatusCompleted,
		9: domain.StatusCompleted, 11: domain.StatusCompleted, 13: domain.StatusOverdue,
		15: domain.StatusCompleted, 16: domain.StatusOverdue, 18: domain.StatusCompleted,
		20: domain.StatusCompleted, 22: domain.StatusOverdue,
	},
	"2": {
		1: domain.StatusCompleted, 3: domain.StatusCompleted, 4: domain.StatusCompleted,
	},
}

// DefaultFleet is the sample fleet written on first run.
func DefaultFleet(set Set, at time.Time) []domain.Bike {
	trail := domain.Bike{
		ID:        "1",
		Name:      "Trail Ripper",
		Brand:     "Santa Cruz",
		Model:     "5010",
		Year:      2023,
		Type:      domain.Mountain,
		WheelSize: `29"`,
		CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Links: []domain.DocumentationLink{
			{ID: "1", Title: "Owner's Manual", URL: "https://www.santacruzbicycles.com/en-US/support/manuals", Description: "Official Santa Cruz 5010 owner's manual and setup guide"},
			{ID: "2", Title: "Geometry Chart", URL: "https://www.santacruzbicycles.com/en-US/bike/5010", Description: "Detailed geometry specifications"},
		},
	}
	gravel := domain.Bike{
		ID:        "2",
		Name:      "Gravel Explorer",
		Brand:     "Specialized",
		Model:     "Diverge",
		Year:      2022,
		Type:      domain.Gravel,
		WheelSize: "700c",
		CreatedAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Links: []domain.DocumentationLink{
			{ID: "3", Title: "Specialized Diverge Manual", URL: "https://www.specialized.com/us/en/support/manuals", Description: "Complete setup and maintenance guide for gravel bikes"},
		},
	}

	bikes := []domain.Bike{trail, gravel}
	for i := range bikes {
		b := &bikes[i]
		tpl := set.For(b.Type)
		b.MaintenanceItems = tpl.Instantiate(b.ID, at)
		for n, status := range seedStatuses[b.ID] {
			b.MaintenanceItems[n-1].Status = status
		}
		cfg := tpl.Configuration
		cfg.LastUpdated = at
		b.Configuration = &cfg
	}
	return bikes
}
