// Package maintenance derives display status and urgency for maintenance
// items. Every function is pure: callers pass the clock in.
//
// Stored status is authoritative. OverdueCheck is a separate helper that
// reports what elapsed time implies; nothing here rewrites a stored status
// on its own.
package maintenance

import (
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

const day = 24 * time.Hour

// DisplayStatus is the derived view of one item.
type DisplayStatus struct {
	EffectiveStatus        domain.Status `json:"effectiveStatus"`
	DaysSinceLastPerformed int           `json:"daysSinceLastPerformed"`
	IsUrgent               bool          `json:"isUrgent"`
}

// Overdueness is the answer of the elapsed-time overdue check.
type Overdueness int

const (
	OverdueUnknown Overdueness = iota
	NotOverdue
	Overdue
)

func (o Overdueness) String() string {
	switch o {
	case Overdue:
		return "overdue"
	case NotOverdue:
		return "not_overdue"
	default:
		return "unknown"
	}
}

// DaysSince returns whole days elapsed between lastPerformed and now, never negative.
func DaysSince(lastPerformed, now time.Time) int {
	elapsed := now.Sub(lastPerformed)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / day)
}

// IsUrgent reports whether an item belongs on the urgent list.
func IsUrgent(item domain.MaintenanceItem) bool {
	return item.Status == domain.StatusOverdue ||
		(item.Status == domain.StatusPending && item.Priority == domain.PriorityHigh)
}

// Derive computes the display fields for item at now.
func Derive(item domain.MaintenanceItem, now time.Time) DisplayStatus {
	return DisplayStatus{
		EffectiveStatus:        item.Status,
		DaysSinceLastPerformed: DaysSince(item.LastPerformed, now),
		IsUrgent:               IsUrgent(item),
	}
}

// OverdueCheck reports whether elapsed time has used up the interval.
// Only day intervals can be judged; ride, mile and hour intervals need
// usage counters and come back OverdueUnknown.
func OverdueCheck(item domain.MaintenanceItem, now time.Time) Overdueness {
	if !item.IntervalUnit.TimeBased() || item.Interval <= 0 {
		return OverdueUnknown
	}
	if float64(DaysSince(item.LastPerformed, now)) >= item.Interval {
		return Overdue
	}
	return NotOverdue
}

// Cycle applies one user toggle. Moving to completed stamps lastPerformed with now.
func Cycle(item domain.MaintenanceItem, now time.Time) domain.MaintenanceItem {
	next := item.Status.Next()
	if next == domain.StatusCompleted {
		item.LastPerformed = now
	}
	item.Status = next
	return item
}
