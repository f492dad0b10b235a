package maintenance

import (
	"time"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

// ItemView is a stored item together with its derived display fields.
type ItemView struct {
	domain.MaintenanceItem
	DisplayStatus
	FrequencyGroup string `json:"frequencyGroup"`
}

// ItemList is one bike's checklist as shown to the user.
type ItemList struct {
	BikeID string                `json:"bikeId"`
	Filter string                `json:"filter"`
	Counts StatusCounts          `json:"counts"`
	Items  []ItemView            `json:"items"`
	Groups map[string][]ItemView `json:"groups"`
}

func View(item domain.MaintenanceItem, now time.Time) ItemView {
	return ItemView{
		MaintenanceItem: item,
		DisplayStatus:   Derive(item, now),
		FrequencyGroup:  FrequencyGroup(item),
	}
}

// BuildList filters the bike's items by status and groups the result.
// Counts always cover every item so filter tabs stay populated.
func BuildList(bike domain.Bike, filter domain.Status, now time.Time) ItemList {
	list := ItemList{
		BikeID: bike.ID,
		Filter: "all",
		Counts: CountByStatus(bike.MaintenanceItems),
		Items:  []ItemView{},
		Groups: make(map[string][]ItemView, len(FrequencyGroups)),
	}
	if filter != "" {
		list.Filter = string(filter)
	}
	for _, name := range FrequencyGroups {
		list.Groups[name] = []ItemView{}
	}

	for _, item := range FilterByStatus(bike.MaintenanceItems, filter) {
		v := View(item, now)
		list.Items = append(list.Items, v)
		list.Groups[v.FrequencyGroup] = append(list.Groups[v.FrequencyGroup], v)
	}
	return list
}
