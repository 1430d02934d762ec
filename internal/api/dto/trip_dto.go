package dto

import "time"

// ActivityPayload is one itinerary entry in a trip payload.
type ActivityPayload struct {
	Name     string     `json:"name"`
	Date     *time.Time `json:"date,omitempty"`
	Time     string     `json:"time,omitempty"`
	Location string     `json:"location,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// CreateTripRequest payload for a new trip.
type CreateTripRequest struct {
	Destination string            `json:"destination"`
	StartDate   time.Time         `json:"startDate"`
	EndDate     time.Time         `json:"endDate"`
	Description string            `json:"description"`
	Budget      *float64          `json:"budget"`
	Activities  []ActivityPayload `json:"activities"`
	Notes       string            `json:"notes"`
	IsPublic    bool              `json:"isPublic"`
}

// UpdateTripRequest payload for partial trip changes.
type UpdateTripRequest struct {
	Destination *string           `json:"destination"`
	StartDate   *time.Time        `json:"startDate"`
	EndDate     *time.Time        `json:"endDate"`
	Description *string           `json:"description"`
	Budget      *float64          `json:"budget"`
	Activities  []ActivityPayload `json:"activities"`
	Notes       *string           `json:"notes"`
	IsPublic    *bool             `json:"isPublic"`
}
