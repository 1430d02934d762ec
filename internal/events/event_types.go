package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTripCreated        EventType = "trip_created"
	EventMessageSent        EventType = "message_sent"
	EventTeamMemberAdded    EventType = "team_member_added"
	EventTeamMemberRemoved  EventType = "team_member_removed"
	EventAnnouncementPosted EventType = "announcement_posted"
)

// Event represents a domain event emitted by services. ActorID is the user
// whose request produced the event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TripCreatedPayload payload.
type TripCreatedPayload struct {
	TripID      string `json:"trip_id"`
	Destination string `json:"destination"`
	IsPublic    bool   `json:"is_public"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	MessageID  string `json:"message_id"`
	ReceiverID string `json:"receiver_id"`
	Preview    string `json:"preview"`
}

// TeamMemberAddedPayload payload.
type TeamMemberAddedPayload struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	MemberID string `json:"member_id"`
}

// TeamMemberRemovedPayload payload.
type TeamMemberRemovedPayload struct {
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	MemberID    string `json:"member_id"`
	TeamDeleted bool   `json:"team_deleted"`
}

// AnnouncementPostedPayload payload.
type AnnouncementPostedPayload struct {
	AnnouncementID string `json:"announcement_id"`
	Title          string `json:"title"`
	Priority       string `json:"priority"`
}
