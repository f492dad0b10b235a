package migration

import (
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/templates"
)

// RefreshPolicy reports whether bike's maintenance items should be
// discarded and rebuilt from tpl.
type RefreshPolicy func(bike domain.Bike, tpl templates.Template) bool

// ItemCountPolicy treats a bike as structurally stale when it has no items
// or fewer items than its template. It compares counts only, so a refresh
// drops the bike's completion history.
func ItemCountPolicy(bike domain.Bike, tpl templates.Template) bool {
	return bike.MaintenanceItems == nil || len(bike.MaintenanceItems) < len(tpl.Items)
}
