package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a direct message between two users.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   primitive.ObjectID `bson:"sender_id" json:"senderId"`
	ReceiverID primitive.ObjectID `bson:"receiver_id" json:"receiverId"`
	Content    string             `bson:"content" json:"content"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Participant reports whether the user is sender or receiver of the message.
func (m *Message) Participant(userID primitive.ObjectID) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
