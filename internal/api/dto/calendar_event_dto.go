package dto

import "time"

// CreateCalendarEventRequest payload for a new calendar event.
type CreateCalendarEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	AllDay      bool      `json:"allDay"`
}

// UpdateCalendarEventRequest payload for partial event changes.
type UpdateCalendarEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	AllDay      *bool      `json:"allDay"`
}
