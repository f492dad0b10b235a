// Package templates supplies the default maintenance checklist and
// configuration for each bike type.
package templates

import (
	"fmt"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

const day = 24 * time.Hour

// ItemTemplate is the definition a fresh maintenance item is built from.
type ItemTemplate struct {
	Name         string
	Category     domain.Category
	Interval     float64
	IntervalUnit domain.IntervalUnit
	Priority     domain.Priority
	PartsCost    float64
	Notes        string
	// SeedAgeDays places the first lastPerformed this many days before instantiation.
	SeedAgeDays int
}

type Template struct {
	Items         []ItemTemplate
	Configuration domain.Configuration
}

// Set maps bike types to their templates.
type Set map[domain.BikeType]Template

// For returns the template for t. Unknown types use the mountain template.
func (s Set) For(t domain.BikeType) Template {
	if tpl, ok := s[t]; ok {
		return tpl
	}
	return s[domain.Mountain]
}

// Default returns the built-in templates.
func Default() Set {
	return Set{
		domain.Mountain: {Items: mountainItems, Configuration: mountainConfiguration},
		domain.Gravel:   {Items: gravelItems, Configuration: gravelConfiguration},
		domain.Hybrid:   {Items: hybridItems, Configuration: hybridConfiguration},
	}
}

// Instantiate builds pending maintenance items for bikeID, numbered <bikeID>-1, <bikeID>-2, ...
func (t Template) Instantiate(bikeID string, at time.Time) []domain.MaintenanceItem {
	items := make([]domain.MaintenanceItem, len(t.Items))
	for i, def := range t.Items {
		items[i] = domain.MaintenanceItem{
			ID:            fmt.Sprintf("%s-%d", bikeID, i+1),
			Name:          def.Name,
			Category:      def.Category,
			Interval:      def.Interval,
			IntervalUnit:  def.IntervalUnit,
			Priority:      def.Priority,
			Status:        domain.StatusPending,
			LastPerformed: at.Add(-time.Duration(def.SeedAgeDays) * day),
			PartsCost:     def.PartsCost,
			Notes:         def.Notes,
		}
	}
	return items
}

// NewBikeConfiguration is the blank setup a user-created bike starts with.
func NewBikeConfiguration(t domain.BikeType, at time.Time) domain.Configuration {
	return domain.Configuration{
		HasShock:    t == domain.Mountain,
		RiderWeight: 180,
		LastUpdated: at,
	}
}

var mountainConfiguration = domain.Configuration{
	ForkPressure:  85,
	ForkClicks:    12,
	ShockPressure: 200,
	ShockClicks:   8,
	HasShock:      true,
	FrontTirePSI:  28,
	RearTirePSI:   30,
	RiderWeight:   180,
}

var gravelConfiguration = domain.Configuration{
	FrontTirePSI: 85,
	RearTirePSI:  90,
	RiderWeight:  180,
}

var hybridConfiguration = domain.Configuration{
	RiderWeight: 180,
}

var mountainItems = []ItemTemplate{
	{Name: "Clean & Lube Drivetrain", Category: domain.CategoryDrivetrain, Interval: 3, IntervalUnit: domain.UnitRides, Priority: domain.PriorityMedium, PartsCost: 10, Notes: "Especially in wet/muddy conditions", SeedAgeDays: 5},
	{Name: "Battery Levels (Wireless Components)", Category: domain.CategoryControls, Interval: 30, IntervalUnit: domain.UnitDays, Priority: domain.PriorityLow, Notes: "AXS/Dropper/etc", SeedAgeDays: 15},
	{Name: "Tighten All Bolts (Torque)", Category: domain.CategorySafety, Interval: 30, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, Notes: "Use torque wrench and manufacturer guidance", SeedAgeDays: 25},

	{Name: "Add Tire Sealant", Category: domain.CategoryTires, Interval: 75, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, PartsCost: 15, SeedAgeDays: 40},
	{Name: "Firmware Update (Electronic Components)", Category: domain.CategoryControls, Interval: 120, IntervalUnit: domain.UnitDays, Priority: domain.PriorityLow, Notes: "Use the app!", SeedAgeDays: 90},

	{Name: "Inspect Dropper Cable", Category: domain.CategoryControls, Interval: 90, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, Notes: "Check for slow return", SeedAgeDays: 60},
	{Name: "Check Spoke Tension", Category: domain.CategoryWheels, Interval: 90, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, SeedAgeDays: 85},
	{Name: "True Wheels", Category: domain.CategoryWheels, Interval: 90, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, PartsCost: 25, Notes: "As needed / Check spoke tension", SeedAgeDays: 95},
	{Name: "Check Brake Rotor Wear", Category: domain.CategoryBrakes, Interval: 120, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, Notes: "Replace at 1.8mm thickness", SeedAgeDays: 80},
	{Name: "Inspect Frame for Cracks/Damage", Category: domain.CategoryFrame, Interval: 90, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, Notes: "After crashes / quarterly", SeedAgeDays: 70},
	{Name: "Check Torque on Suspension Bolts", Category: domain.CategorySuspension, Interval: 90, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, Notes: "Loctite may be needed", SeedAgeDays: 45},

	{Name: "Inspect & Grease Crankset", Category: domain.CategoryDrivetrain, Interval: 180, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, PartsCost: 15, Notes: "Pull cranks + clean BB", SeedAgeDays: 150},
	{Name: "Inspect & Grease Linkage Bearings", Category: domain.CategoryFrame, Interval: 180, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, PartsCost: 25, SeedAgeDays: 200},
	{Name: "Bleed Brakes", Category: domain.CategoryBrakes, Interval: 180, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, PartsCost: 20, Notes: "Follow SOP / YT How-to - or when mushy", SeedAgeDays: 160},

	{Name: "Grease Headset", Category: domain.CategoryFrame, Interval: 270, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, PartsCost: 10, SeedAgeDays: 180},

	{Name: "Fork Lower Service", Category: domain.CategorySuspension, Interval: 50, IntervalUnit: domain.UnitHours, Priority: domain.PriorityHigh, PartsCost: 75, Notes: "Follow SOP / YT How-to", SeedAgeDays: 120},
	{Name: "Shock Air Can Service", Category: domain.CategorySuspension, Interval: 75, IntervalUnit: domain.UnitHours, Priority: domain.PriorityHigh, PartsCost: 50, SeedAgeDays: 100},

	{Name: "Replace Chain", Category: domain.CategoryDrivetrain, Interval: 650, IntervalUnit: domain.UnitMiles, Priority: domain.PriorityMedium, PartsCost: 65, Notes: "Every 0.5% wear (~500-800mi)", SeedAgeDays: 30},
	{Name: "Replace Brake Pads", Category: domain.CategoryBrakes, Interval: 1000, IntervalUnit: domain.UnitMiles, Priority: domain.PriorityHigh, PartsCost: 45, Notes: "When <1.5mm or noisy - Validate organic or metallic", SeedAgeDays: 60},
	{Name: "Replace Tires", Category: domain.CategoryTires, Interval: 1500, IntervalUnit: domain.UnitMiles, Priority: domain.PriorityHigh, PartsCost: 120, Notes: "When worn or damaged - Check casing + tread", SeedAgeDays: 45},

	{Name: "Replace Derailleur Cable", Category: domain.CategoryDrivetrain, Interval: 365, IntervalUnit: domain.UnitDays, Priority: domain.PriorityMedium, PartsCost: 30, Notes: "Yearly / as needed", SeedAgeDays: 300},
	{Name: "Full Suspension Service", Category: domain.CategorySuspension, Interval: 100, IntervalUnit: domain.UnitHours, Priority: domain.PriorityHigh, PartsCost: 200, Notes: "Annually / 100+ hrs", SeedAgeDays: 400},
}

var gravelItems = []ItemTemplate{
	{Name: "Clean & Lube Drivetrain", Category: domain.CategoryDrivetrain, Interval: 5, IntervalUnit: domain.UnitRides, Priority: domain.PriorityMedium, PartsCost: 10, Notes: "Road/gravel conditions - less frequent than MTB", SeedAgeDays: 3},
	{Name: "Check Tire Pressure", Category: domain.CategoryTires, Interval: 7, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, Notes: "Higher pressures for road/gravel", SeedAgeDays: 5},
	{Name: "Brake Pad Check", Category: domain.CategoryBrakes, Interval: 1000, IntervalUnit: domain.UnitMiles, Priority: domain.PriorityHigh, PartsCost: 35, Notes: "When <1.5mm or noisy", SeedAgeDays: 45},
	{Name: "Chain Replacement", Category: domain.CategoryDrivetrain, Interval: 2500, IntervalUnit: domain.UnitMiles, Priority: domain.PriorityMedium, PartsCost: 45, Notes: "Road chains last longer", SeedAgeDays: 30},
	{Name: "Tire Replacement", Category: domain.CategoryTires, Interval: 2000, IntervalUnit: domain.UnitMiles, Priority: domain.PriorityMedium, PartsCost: 80, Notes: "Check for cuts and wear", SeedAgeDays: 180},
}

var hybridItems = []ItemTemplate{
	{Name: "Clean & Lube Drivetrain", Category: domain.CategoryDrivetrain, Interval: 7, IntervalUnit: domain.UnitRides, Priority: domain.PriorityMedium, PartsCost: 8, Notes: "Commuter maintenance", SeedAgeDays: 5},
	{Name: "Check Tire Pressure", Category: domain.CategoryTires, Interval: 7, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, Notes: "Weekly for commuting", SeedAgeDays: 3},
	{Name: "Brake Check", Category: domain.CategoryBrakes, Interval: 30, IntervalUnit: domain.UnitDays, Priority: domain.PriorityHigh, PartsCost: 25, Notes: "Monthly safety check", SeedAgeDays: 20},
	{Name: "Chain Replacement", Category: domain.CategoryDrivetrain, Interval: 3000, IntervalUnit: domain.UnitMiles, Priority: domain.PriorityMedium, PartsCost: 35, Notes: "Hybrid chain maintenance", SeedAgeDays: 60},
}
