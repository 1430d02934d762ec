package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/travel-planner/internal/domain"
)

// ConversationEntry is the last message exchanged with one counterpart,
// produced by the recent-conversations aggregation.
type ConversationEntry struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Content   string             `bson:"content" json:"content"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	Sender    domain.UserSummary `bson:"sender" json:"sender"`
	Receiver  domain.UserSummary `bson:"receiver" json:"receiver"`
	OtherUser domain.UserSummary `bson:"other_user" json:"otherUser"`
}

// MessageRepository manages persistence for direct messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListConversation(ctx context.Context, a, b primitive.ObjectID) ([]domain.Message, error)
	RecentConversations(ctx context.Context, userID primitive.ObjectID) ([]ConversationEntry, error)
	MarkRead(ctx context.Context, senderID, receiverID primitive.ObjectID) (int64, error)
}

type messageRepository struct {
	col *mongo.Collection
}

// NewMessageRepository constructs repository.
func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{col: db.Collection("messages")}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}
	return nil
}

// ListConversation returns both directions between a and b, oldest first.
func (r *messageRepository) ListConversation(ctx context.Context, a, b primitive.ObjectID) ([]domain.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": a, "receiver_id": b},
		bson.M{"sender_id": b, "receiver_id": a},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	msgs := []domain.Message{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// RecentConversations groups the user's messages by counterpart, keeps the
// newest message per counterpart, joins both participants' profiles, and
// orders conversations by recency.
func (r *messageRepository) RecentConversations(ctx context.Context, userID primitive.ObjectID) ([]ConversationEntry, error) {
	userFields := bson.M{"_id": 1, "username": 1, "name": 1, "email": 1}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"sender_id": userID},
			bson.M{"receiver_id": userID},
		}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$sender_id", userID}},
				"$receiver_id",
				"$sender_id",
			}},
			"lastMessage": bson.M{"$first": "$$ROOT"},
		}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$lastMessage"}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "sender_id",
			"foreignField": "_id",
			"as":           "sender",
			"pipeline":     bson.A{bson.M{"$project": userFields}},
		}}},
		{{Key: "$unwind", Value: "$sender"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "receiver_id",
			"foreignField": "_id",
			"as":           "receiver",
			"pipeline":     bson.A{bson.M{"$project": userFields}},
		}}},
		{{Key: "$unwind", Value: "$receiver"}},
		{{Key: "$addFields", Value: bson.M{
			"other_user": bson.M{"$cond": bson.M{
				"if":   bson.M{"$eq": bson.A{"$sender._id", userID}},
				"then": "$receiver",
				"else": "$sender",
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []ConversationEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MarkRead flags all unread messages from senderID to receiverID as read and
// returns how many were modified.
func (r *messageRepository) MarkRead(ctx context.Context, senderID, receiverID primitive.ObjectID) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"sender_id": senderID, "receiver_id": receiverID, "read": false},
		bson.M{"$set": bson.M{"read": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
