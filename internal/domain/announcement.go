package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnnouncementType categorizes an announcement.
type AnnouncementType string

const (
	AnnouncementTypeUpdate      AnnouncementType = "update"
	AnnouncementTypeImportant   AnnouncementType = "important"
	AnnouncementTypeOpportunity AnnouncementType = "opportunity"
	AnnouncementTypeMeeting     AnnouncementType = "meeting"
	AnnouncementTypeWelcome     AnnouncementType = "welcome"
)

// ValidAnnouncementType reports whether t is a known type.
func ValidAnnouncementType(t AnnouncementType) bool {
	switch t {
	case AnnouncementTypeUpdate, AnnouncementTypeImportant, AnnouncementTypeOpportunity,
		AnnouncementTypeMeeting, AnnouncementTypeWelcome:
		return true
	}
	return false
}

// AnnouncementPriority ranks an announcement.
type AnnouncementPriority string

const (
	AnnouncementPriorityLow    AnnouncementPriority = "low"
	AnnouncementPriorityMedium AnnouncementPriority = "medium"
	AnnouncementPriorityHigh   AnnouncementPriority = "high"
	AnnouncementPriorityUrgent AnnouncementPriority = "urgent"
)

// ValidAnnouncementPriority reports whether p is a known priority.
func ValidAnnouncementPriority(p AnnouncementPriority) bool {
	switch p {
	case AnnouncementPriorityLow, AnnouncementPriorityMedium,
		AnnouncementPriorityHigh, AnnouncementPriorityUrgent:
		return true
	}
	return false
}

// Announcement is a post visible to all users; only its author may change it.
type Announcement struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Content   string               `bson:"content" json:"content"`
	Type      AnnouncementType     `bson:"type" json:"type"`
	Priority  AnnouncementPriority `bson:"priority" json:"priority"`
	Tags      []string             `bson:"tags" json:"tags"`
	Pinned    bool                 `bson:"pinned" json:"pinned"`
	AuthorID  primitive.ObjectID   `bson:"author_id" json:"authorId"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updatedAt"`
}
