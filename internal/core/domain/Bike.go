package domain

import (
	"time"
)

// swagger:model domain.Bike
type Bike struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Brand            string              `json:"brand"`
	Model            string              `json:"model"`
	Year             int                 `json:"year"`
	Type             BikeType            `json:"type"`
	WheelSize        string              `json:"wheelSize"`
	CreatedAt        time.Time           `json:"createdAt"`
	MaintenanceItems []MaintenanceItem   `json:"maintenanceItems"`
	Configuration    *Configuration      `json:"configuration"`
	Links            []DocumentationLink `json:"links"`
}

type BikeType string

const (
	Mountain BikeType = "mountain"
	Gravel   BikeType = "gravel"
	Hybrid   BikeType = "hybrid"
)

// BikeTypes lists the supported bike types in display order.
var BikeTypes = []BikeType{Mountain, Gravel, Hybrid}

func (t BikeType) Valid() bool {
	switch t {
	case Mountain, Gravel, Hybrid:
		return true
	}
	return false
}

// DefaultWheelSize is the wheel size a new bike of this type starts with.
func (t BikeType) DefaultWheelSize() string {
	if t == Mountain {
		return `29"`
	}
	return "700c"
}

// Item returns a pointer to the maintenance item with the given id.
func (b *Bike) Item(itemID string) (*MaintenanceItem, bool) {
	for i := range b.MaintenanceItems {
		if b.MaintenanceItems[i].ID == itemID {
			return &b.MaintenanceItems[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the bike.
func (b Bike) Clone() Bike {
	dup := b
	if b.MaintenanceItems != nil {
		dup.MaintenanceItems = make([]MaintenanceItem, len(b.MaintenanceItems))
		copy(dup.MaintenanceItems, b.MaintenanceItems)
	}
	if b.Links != nil {
		dup.Links = make([]DocumentationLink, len(b.Links))
		copy(dup.Links, b.Links)
	}
	if b.Configuration != nil {
		cfg := b.Configuration.Clone()
		dup.Configuration = &cfg
	}
	return dup
}
