package templates

import (
	"testing"
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

func TestSetFor_UnknownTypeFallsBackToMountain(t *testing.T) {
	set := Default()

	got := set.For(domain.BikeType("tandem"))
	want := set.For(domain.Mountain)
	if len(got.Items) != len(want.Items) {
		t.Fatalf("fallback template has %d items, want %d", len(got.Items), len(want.Items))
	}
	if !got.Configuration.HasShock {
		t.Fatalf("fallback configuration should be the mountain one")
	}
}

func TestSetFor_TypeSpecificTemplates(t *testing.T) {
	set := Default()

	tests := []struct {
		bikeType domain.BikeType
		items    int
		hasShock bool
	}{
		{domain.Mountain, 22, true},
		{domain.Gravel, 5, false},
		{domain.Hybrid, 4, false},
	}
	for _, tt := range tests {
		tpl := set.For(tt.bikeType)
		if len(tpl.Items) != tt.items {
			t.Fatalf("%s: %d items, want %d", tt.bikeType, len(tpl.Items), tt.items)
		}
		if tpl.Configuration.HasShock != tt.hasShock {
			t.Fatalf("%s: HasShock = %v, want %v", tt.bikeType, tpl.Configuration.HasShock, tt.hasShock)
		}
	}
}

func TestInstantiate_NumbersItemsAndSeedsDates(t *testing.T) {
	at := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)
	items := Default().For(domain.Gravel).Instantiate("abc", at)

	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5", len(items))
	}
	if items[0].ID != "abc-1" || items[4].ID != "abc-5" {
		t.Fatalf("item ids = %q..%q, want abc-1..abc-5", items[0].ID, items[4].ID)
	}
	for _, item := range items {
		if item.Status != domain.StatusPending {
			t.Fatalf("%s status = %q, want pending", item.Name, item.Status)
		}
		if item.LastPerformed.After(at) {
			t.Fatalf("%s lastPerformed %v after instantiation time", item.Name, item.LastPerformed)
		}
	}
	if want := at.Add(-5 * day); !items[1].LastPerformed.Equal(want) {
		t.Fatalf("Check Tire Pressure lastPerformed = %v, want %v", items[1].LastPerformed, want)
	}
}

func TestNewBikeConfiguration(t *testing.T) {
	at := time.Now()
	if cfg := NewBikeConfiguration(domain.Mountain, at); !cfg.HasShock || cfg.RiderWeight != 180 {
		t.Fatalf("mountain config = %+v, want hasShock and rider weight 180", cfg)
	}
	if cfg := NewBikeConfiguration(domain.Hybrid, at); cfg.HasShock {
		t.Fatalf("hybrid config should not have a shock")
	}
}

func TestDefaultFleet(t *testing.T) {
	at := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	bikes := DefaultFleet(Default(), at)

	if len(bikes) != 2 {
		t.Fatalf("len(bikes) = %d, want 2", len(bikes))
	}
	trail := bikes[0]
	if trail.Name != "Trail Ripper" || len(trail.MaintenanceItems) != 22 || len(trail.Links) != 2 {
		t.Fatalf("unexpected first bike: %s with %d items, %d links", trail.Name, len(trail.MaintenanceItems), len(trail.Links))
	}
	if got := trail.MaintenanceItems[12].Status; got != domain.StatusOverdue {
		t.Fatalf("linkage bearings status = %q, want overdue", got)
	}
	if trail.Configuration == nil || trail.Configuration.ForkPressure != 85 {
		t.Fatalf("trail configuration = %+v, want mountain defaults", trail.Configuration)
	}

	gravel := bikes[1]
	if gravel.Configuration.HasShock {
		t.Fatalf("gravel bike should not have a shock")
	}
	if got := gravel.MaintenanceItems[0].Status; got != domain.StatusCompleted {
		t.Fatalf("gravel drivetrain status = %q, want completed", got)
	}

	again := DefaultFleet(Default(), at)
	again[0].MaintenanceItems[0].Name = "changed"
	if bikes[0].MaintenanceItems[0].Name == "changed" {
		t.Fatalf("DefaultFleet should return independent item slices")
	}
}
