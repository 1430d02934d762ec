package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is an itinerary entry embedded in a trip document.
type Activity struct {
	Name     string     `bson:"name" json:"name"`
	Date     *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Time     string     `bson:"time,omitempty" json:"time,omitempty"`
	Location string     `bson:"location,omitempty" json:"location,omitempty"`
	Notes    string     `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Trip is a travel plan owned by a single user. Public trips are readable by
// anyone through the explore surface.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Destination string             `bson:"destination" json:"destination"`
	StartDate   time.Time          `bson:"start_date" json:"startDate"`
	EndDate     time.Time          `bson:"end_date" json:"endDate"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Budget      *float64           `bson:"budget,omitempty" json:"budget,omitempty"`
	Activities  []Activity         `bson:"activities,omitempty" json:"activities"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	IsPublic    bool               `bson:"is_public" json:"isPublic"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// PublicTrip pairs a public trip with its owner's summary for explore listings.
type PublicTrip struct {
	Trip  `bson:",inline"`
	Owner UserSummary `bson:"owner" json:"user"`
}
