package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team groups users under a single admin. The admin is always present in the
// member list; both are written in the same document so a team is never
// observable without its admin as member.
type Team struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	AdminID     primitive.ObjectID   `bson:"admin_id" json:"adminId"`
	MemberIDs   []primitive.ObjectID `bson:"member_ids" json:"memberIds"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updatedAt"`
}

// HasMember reports whether the given user belongs to the team.
func (t *Team) HasMember(userID primitive.ObjectID) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
