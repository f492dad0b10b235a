// Package migration upgrades persisted snapshots to the current schema.
//
// Migrate is pure: it never touches storage and takes its only clock
// reading from the caller. Saving the backup and the migrated snapshot is
// the caller's job.
package migration

import (
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/templates"
)

// Engine upgrades snapshots to Version using Templates.
type Engine struct {
	Version   string
	Templates templates.Set
	// NeedsRefresh decides whether a bike's maintenance items are replaced
	// by a fresh template. Defaults to ItemCountPolicy.
	NeedsRefresh RefreshPolicy
}

func New(version string, set templates.Set) *Engine {
	return &Engine{
		Version:      version,
		Templates:    set,
		NeedsRefresh: ItemCountPolicy,
	}
}

// Migrate upgrades s to currentVersion with the default refresh policy.
func Migrate(s domain.Snapshot, currentVersion string, set templates.Set, at time.Time) (domain.Snapshot, *domain.Backup) {
	return New(currentVersion, set).Migrate(s, at)
}

// Migrate returns s unchanged and a nil backup when s is already at the
// engine's version. Otherwise it returns the upgraded snapshot and a deep
// copy of s stamped with at. The input is never modified.
func (e *Engine) Migrate(s domain.Snapshot, at time.Time) (domain.Snapshot, *domain.Backup) {
	if s.SchemaVersion == e.Version {
		return s, nil
	}

	backup := NewBackup(s, at)

	policy := e.NeedsRefresh
	if policy == nil {
		policy = ItemCountPolicy
	}

	migrated := s.Clone()
	for i := range migrated.Bikes {
		bike := &migrated.Bikes[i]
		tpl := e.Templates.For(bike.Type)
		if policy(*bike, tpl) {
			refreshBike(bike, tpl, at)
		} else {
			backfillBike(bike, tpl, at)
		}
	}
	migrated.SchemaVersion = e.Version
	return migrated, backup
}

// NewBackup copies s for disaster recovery. A missing version is recorded as unknown.
func NewBackup(s domain.Snapshot, at time.Time) *domain.Backup {
	version := s.SchemaVersion
	if version == "" {
		version = domain.UnknownSchemaVersion
	}
	dup := s.Clone()
	return &domain.Backup{
		Bikes:         dup.Bikes,
		CurrentBikeID: dup.CurrentBikeID,
		BackupDate:    at,
		Version:       version,
	}
}

// refreshBike replaces the item collection with the template and layers the
// saved configuration over the template configuration.
func refreshBike(bike *domain.Bike, tpl templates.Template, at time.Time) {
	bike.MaintenanceItems = tpl.Instantiate(bike.ID, at)

	defaults := tpl.Configuration.Clone()
	defaults.LastUpdated = at
	defaults.HasShock = bike.Type == domain.Mountain
	bike.Configuration = mergeConfiguration(bike.Configuration, defaults)
}

// backfillBike keeps the items and fills only the configuration keys the
// saved data lacks. Click counts default to zero here.
func backfillBike(bike *domain.Bike, tpl templates.Template, at time.Time) {
	defaults := tpl.Configuration.Clone()
	defaults.ForkClicks = 0
	defaults.ShockClicks = 0
	defaults.HasShock = bike.Type == domain.Mountain
	defaults.LastUpdated = at
	bike.Configuration = mergeConfiguration(bike.Configuration, defaults)
}

// mergeConfiguration returns defaults overridden by every key present in saved.
func mergeConfiguration(saved *domain.Configuration, defaults domain.Configuration) *domain.Configuration {
	out := defaults
	if saved != nil {
		if saved.Has(domain.KeyForkPressure) {
			out.ForkPressure = saved.ForkPressure
		}
		if saved.Has(domain.KeyForkClicks) {
			out.ForkClicks = saved.ForkClicks
		}
		if saved.Has(domain.KeyShockPressure) {
			out.ShockPressure = saved.ShockPressure
		}
		if saved.Has(domain.KeyShockClicks) {
			out.ShockClicks = saved.ShockClicks
		}
		if saved.Has(domain.KeyHasShock) {
			out.HasShock = saved.HasShock
		}
		if saved.Has(domain.KeyFrontTirePSI) {
			out.FrontTirePSI = saved.FrontTirePSI
		}
		if saved.Has(domain.KeyRearTirePSI) {
			out.RearTirePSI = saved.RearTirePSI
		}
		if saved.Has(domain.KeyRiderWeight) {
			out.RiderWeight = saved.RiderWeight
		}
		if saved.Has(domain.KeyLastUpdated) {
			out.LastUpdated = saved.LastUpdated
		}
	}
	out.Complete()
	return &out
}
