package maintenance

import (
	"testing"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

func item(id string, status domain.Status, priority domain.Priority) domain.MaintenanceItem {
	return domain.MaintenanceItem{ID: id, Status: status, Priority: priority}
}

func TestRankUrgent_OverdueBeforePendingHigh(t *testing.T) {
	bikes := []domain.Bike{
		{ID: "B", Name: "Bike B", Type: domain.Gravel, MaintenanceItems: []domain.MaintenanceItem{
			item("b1", domain.StatusPending, domain.PriorityHigh),
		}},
		{ID: "A", Name: "Bike A", Type: domain.Mountain, MaintenanceItems: []domain.MaintenanceItem{
			item("a1", domain.StatusOverdue, domain.PriorityMedium),
		}},
	}

	got := RankUrgent(bikes)
	if len(got) != 2 {
		t.Fatalf("len(urgent) = %d, want 2", len(got))
	}
	if got[0].BikeID != "A" || got[0].Item.ID != "a1" {
		t.Fatalf("first urgent item = %s/%s, want A/a1", got[0].BikeID, got[0].Item.ID)
	}
	if got[1].BikeName != "Bike B" || got[1].BikeType != domain.Gravel {
		t.Fatalf("second urgent item not tagged with its bike: %+v", got[1])
	}
}

func TestRankUrgent_OrderingAndStability(t *testing.T) {
	bikes := []domain.Bike{
		{ID: "1", MaintenanceItems: []domain.MaintenanceItem{
			item("p-high-1", domain.StatusPending, domain.PriorityHigh),
			item("done", domain.StatusCompleted, domain.PriorityHigh),
			item("od-low-1", domain.StatusOverdue, domain.PriorityLow),
			item("pending-low", domain.StatusPending, domain.PriorityLow),
		}},
		{ID: "2", MaintenanceItems: []domain.MaintenanceItem{
			item("od-high-1", domain.StatusOverdue, domain.PriorityHigh),
			item("p-high-2", domain.StatusPending, domain.PriorityHigh),
			item("od-low-2", domain.StatusOverdue, domain.PriorityMedium),
			item("od-high-2", domain.StatusOverdue, domain.PriorityHigh),
		}},
	}

	want := []string{"od-high-1", "od-high-2", "od-low-1", "od-low-2", "p-high-1", "p-high-2"}
	got := RankUrgent(bikes)
	if len(got) != len(want) {
		t.Fatalf("len(urgent) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].Item.ID != id {
			t.Fatalf("urgent[%d] = %s, want %s", i, got[i].Item.ID, id)
		}
	}
}

func TestRankUrgent_EmptyFleet(t *testing.T) {
	got := RankUrgent(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("RankUrgent(nil) = %#v, want empty non-nil slice", got)
	}
}
