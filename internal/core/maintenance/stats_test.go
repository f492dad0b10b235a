package maintenance

import (
	"testing"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

func TestComputeFleetStats(t *testing.T) {
	bikes := []domain.Bike{
		{MaintenanceItems: []domain.MaintenanceItem{
			item("1", domain.StatusOverdue, domain.PriorityHigh),
			item("2", domain.StatusPending, domain.PriorityLow),
			item("3", domain.StatusNotApplicable, domain.PriorityHigh),
		}},
		{MaintenanceItems: []domain.MaintenanceItem{
			item("4", domain.StatusCompleted, domain.PriorityMedium),
			item("5", domain.StatusPending, domain.PriorityHigh),
		}},
	}

	got := ComputeFleetStats(bikes)
	want := FleetStats{Overdue: 1, Pending: 2, Completed: 1, HighPriority: 3}
	if got != want {
		t.Fatalf("ComputeFleetStats = %+v, want %+v", got, want)
	}
}

func TestCountByStatusAndFilter(t *testing.T) {
	items := []domain.MaintenanceItem{
		item("1", domain.StatusOverdue, ""),
		item("2", domain.StatusPending, ""),
		item("3", domain.StatusPending, ""),
		item("4", domain.StatusNotApplicable, ""),
	}

	counts := CountByStatus(items)
	if counts != (StatusCounts{All: 4, Overdue: 1, Pending: 2, NotApplicable: 1}) {
		t.Fatalf("CountByStatus = %+v", counts)
	}

	if got := FilterByStatus(items, domain.StatusPending); len(got) != 2 || got[0].ID != "2" {
		t.Fatalf("FilterByStatus(pending) = %+v", got)
	}
	if got := FilterByStatus(items, ""); len(got) != 4 {
		t.Fatalf("FilterByStatus(\"\") kept %d items, want 4", len(got))
	}
}

func TestFrequencyGroup(t *testing.T) {
	tests := []struct {
		unit     domain.IntervalUnit
		interval float64
		want     string
	}{
		{domain.UnitRides, 3, GroupEveryRide},
		{domain.UnitMiles, 300, GroupWeeklyTo},
		{domain.UnitMiles, 650, GroupQuarterly},
		{domain.UnitHours, 50, GroupQuarterly},
		{domain.UnitMiles, 1000, GroupSemiOrAnnual},
		{domain.UnitDays, 30, GroupSemiOrAnnual},
	}
	for _, tt := range tests {
		got := FrequencyGroup(domain.MaintenanceItem{IntervalUnit: tt.unit, Interval: tt.interval})
		if got != tt.want {
			t.Fatalf("FrequencyGroup(%v %s) = %q, want %q", tt.interval, tt.unit, got, tt.want)
		}
	}

	groups := GroupByFrequency(nil)
	if len(groups) != len(FrequencyGroups) {
		t.Fatalf("GroupByFrequency(nil) returned %d groups, want %d", len(groups), len(FrequencyGroups))
	}
}

func TestSeason(t *testing.T) {
	want := map[time.Month]string{
		time.January: "Winter", time.March: "Spring", time.May: "Spring", time.June: "Summer",
		time.August: "Summer", time.September: "Fall", time.November: "Fall", time.December: "Winter",
	}
	for month, season := range want {
		if got := Season(month); got != season {
			t.Fatalf("Season(%s) = %q, want %q", month, got, season)
		}
	}
}

func TestBuildList(t *testing.T) {
	bike := domain.Bike{ID: "1", MaintenanceItems: []domain.MaintenanceItem{
		{ID: "a", Status: domain.StatusPending, IntervalUnit: domain.UnitRides, Interval: 3, LastPerformed: daysAgo(2)},
		{ID: "b", Status: domain.StatusCompleted, IntervalUnit: domain.UnitDays, Interval: 30},
		{ID: "c", Status: domain.StatusPending, IntervalUnit: domain.UnitMiles, Interval: 200, Priority: domain.PriorityHigh},
	}}

	list := BuildList(bike, domain.StatusPending, now)
	if list.Filter != "pending" || list.Counts.All != 3 || list.Counts.Pending != 2 {
		t.Fatalf("unexpected header: filter %q counts %+v", list.Filter, list.Counts)
	}
	if len(list.Items) != 2 || list.Items[0].ID != "a" || list.Items[1].ID != "c" {
		t.Fatalf("items = %+v", list.Items)
	}
	if list.Items[0].DaysSinceLastPerformed != 2 || !list.Items[1].IsUrgent {
		t.Fatalf("display fields not derived: %+v", list.Items)
	}
	if len(list.Groups[GroupEveryRide]) != 1 || len(list.Groups[GroupWeeklyTo]) != 1 || len(list.Groups[GroupSemiOrAnnual]) != 0 {
		t.Fatalf("groups = %+v", list.Groups)
	}

	if all := BuildList(bike, "", now); all.Filter != "all" || len(all.Items) != 3 {
		t.Fatalf("unfiltered list = %+v", all)
	}
}
