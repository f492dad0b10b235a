package maintenance

import (
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

// FleetStats are the dashboard totals across every bike.
type FleetStats struct {
	Overdue      int `json:"totalOverdue"`
	Pending      int `json:"totalPending"`
	Completed    int `json:"totalCompleted"`
	HighPriority int `json:"totalHighPriority"`
}

func ComputeFleetStats(bikes []domain.Bike) FleetStats {
	var stats FleetStats
	for _, bike := range bikes {
		for _, item := range bike.MaintenanceItems {
			switch item.Status {
			case domain.StatusOverdue:
				stats.Overdue++
			case domain.StatusPending:
				stats.Pending++
			case domain.StatusCompleted:
				stats.Completed++
			}
			if item.Priority == domain.PriorityHigh {
				stats.HighPriority++
			}
		}
	}
	return stats
}

// StatusCounts are the per-bike filter tab counts.
type StatusCounts struct {
	All           int `json:"all"`
	Overdue       int `json:"overdue"`
	Pending       int `json:"pending"`
	Completed     int `json:"completed"`
	NotApplicable int `json:"notApplicable"`
}

func CountByStatus(items []domain.MaintenanceItem) StatusCounts {
	counts := StatusCounts{All: len(items)}
	for _, item := range items {
		switch item.Status {
		case domain.StatusOverdue:
			counts.Overdue++
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusCompleted:
			counts.Completed++
		case domain.StatusNotApplicable:
			counts.NotApplicable++
		}
	}
	return counts
}

// FilterByStatus keeps items whose stored status equals status.
// An empty status keeps everything.
func FilterByStatus(items []domain.MaintenanceItem, status domain.Status) []domain.MaintenanceItem {
	out := []domain.MaintenanceItem{}
	for _, item := range items {
		if status == "" || item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// Frequency groups, in display order.
const (
	GroupEveryRide    = "After Every Ride"
	GroupWeeklyTo     = "Weekly/Monthly"
	GroupQuarterly    = "Quarterly"
	GroupSemiOrAnnual = "Semi-Annual/Annual"
)

var FrequencyGroups = []string{GroupEveryRide, GroupWeeklyTo, GroupQuarterly, GroupSemiOrAnnual}

// FrequencyGroup places an item in the checklist section it is shown under.
func FrequencyGroup(item domain.MaintenanceItem) string {
	switch item.IntervalUnit {
	case domain.UnitRides:
		return GroupEveryRide
	case domain.UnitHours:
		return GroupQuarterly
	case domain.UnitMiles:
		switch {
		case item.Interval <= 300:
			return GroupWeeklyTo
		case item.Interval < 1000:
			return GroupQuarterly
		}
	}
	return GroupSemiOrAnnual
}

// GroupByFrequency buckets items by FrequencyGroup, keeping their order.
func GroupByFrequency(items []domain.MaintenanceItem) map[string][]domain.MaintenanceItem {
	groups := make(map[string][]domain.MaintenanceItem, len(FrequencyGroups))
	for _, name := range FrequencyGroups {
		groups[name] = []domain.MaintenanceItem{}
	}
	for _, item := range items {
		g := FrequencyGroup(item)
		groups[g] = append(groups[g], item)
	}
	return groups
}
