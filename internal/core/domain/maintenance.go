package domain

import (
	"time"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusCompleted     Status = "completed"
	StatusOverdue       Status = "overdue"
	StatusNotApplicable Status = "not_applicable"
)

// Statuses lists every status value an item can carry.
var Statuses = []Status{StatusPending, StatusCompleted, StatusOverdue, StatusNotApplicable}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusOverdue, StatusNotApplicable:
		return true
	}
	return false
}

// Next is the status a user toggle moves to:
// pending -> completed -> not_applicable -> pending.
// Anything outside those three cycles as if it were pending.
func (s Status) Next() Status {
	switch s {
	case StatusCompleted:
		return StatusNotApplicable
	case StatusNotApplicable:
		return StatusPending
	default:
		return StatusCompleted
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type IntervalUnit string

const (
	UnitDays  IntervalUnit = "days"
	UnitRides IntervalUnit = "rides"
	UnitMiles IntervalUnit = "miles"
	UnitHours IntervalUnit = "hours"
)

// TimeBased reports whether elapsed wall-clock time alone measures the interval.
func (u IntervalUnit) TimeBased() bool {
	return u == UnitDays
}

type Category string

const (
	CategoryDrivetrain Category = "drivetrain"
	CategoryControls   Category = "controls"
	CategorySafety     Category = "safety"
	CategoryTires      Category = "tires"
	CategorySuspension Category = "suspension"
	CategoryBrakes     Category = "brakes"
	CategoryFrame      Category = "frame"
	CategoryWheels     Category = "wheels"
	CategoryCleaning   Category = "cleaning"
)

type MaintenanceItem struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Category      Category     `json:"category"`
	Interval      float64      `json:"interval"`
	IntervalUnit  IntervalUnit `json:"intervalType"`
	Priority      Priority     `json:"priority"`
	Status        Status       `json:"status"`
	LastPerformed time.Time    `json:"lastPerformed"`
	PartsCost     float64      `json:"partsCost"`
	Notes         string       `json:"notes"`
}
