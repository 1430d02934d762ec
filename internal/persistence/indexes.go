package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the indexes the repositories rely on. Uniqueness of
// user email/username and team name is enforced here; repositories translate
// duplicate-key errors into conflicts.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	specs := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"teams": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "member_ids", Value: 1}}},
		},
		"trips": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_date", Value: -1}}},
			{Keys: bson.D{{Key: "is_public", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"messages": {
			{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "receiver_id", Value: 1}}},
			{Keys: bson.D{{Key: "receiver_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"announcements": {
			{Keys: bson.D{{Key: "pinned", Value: -1}, {Key: "created_at", Value: -1}}},
		},
		"calendar_events": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_date", Value: 1}}},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
		logger.Info("ensured indexes", zap.String("collection", collection), zap.Int("count", len(models)))
	}
	return nil
}
