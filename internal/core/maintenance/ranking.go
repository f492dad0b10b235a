package maintenance

import (
	"sort"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

// UrgentItem is an urgent maintenance item tagged with its bike.
type UrgentItem struct {
	BikeID   string                 `json:"bikeId"`
	BikeName string                 `json:"bikeName"`
	BikeType domain.BikeType        `json:"bikeType"`
	Item     domain.MaintenanceItem `json:"item"`
}

// RankUrgent collects urgent items across bikes. Overdue items come first,
// then high priority; ties keep encounter order.
func RankUrgent(bikes []domain.Bike) []UrgentItem {
	urgent := []UrgentItem{}
	for _, bike := range bikes {
		for _, item := range bike.MaintenanceItems {
			if !IsUrgent(item) {
				continue
			}
			urgent = append(urgent, UrgentItem{
				BikeID:   bike.ID,
				BikeName: bike.Name,
				BikeType: bike.Type,
				Item:     item,
			})
		}
	}

	sort.SliceStable(urgent, func(i, j int) bool {
		return urgencyRank(urgent[i].Item) < urgencyRank(urgent[j].Item)
	})
	return urgent
}

func urgencyRank(item domain.MaintenanceItem) int {
	rank := 0
	if item.Status != domain.StatusOverdue {
		rank += 2
	}
	if item.Priority != domain.PriorityHigh {
		rank++
	}
	return rank
}
