package domain

import "time"

// BikeInput carries the user-editable identity fields of a bike.
type BikeInput struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Brand     string   `json:"brand" validate:"required,max=100"`
	Model     string   `json:"model" validate:"required,max=100"`
	Year      int      `json:"year" validate:"gte=1900,lte=2100"`
	Type      BikeType `json:"type" validate:"required,oneof=mountain gravel hybrid"`
	WheelSize string   `json:"wheelSize" validate:"max=20"`
}

// Recommendation is the advice text produced for one bike.
type Recommendation struct {
	BikeID      string    `json:"bikeId"`
	Text        string    `json:"text"`
	Season      string    `json:"season"`
	GeneratedAt time.Time `json:"generatedAt"`
	Cached      bool      `json:"cached"`
}
