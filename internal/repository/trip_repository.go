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

// TripRepository manages persistence for trips.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	Update(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Trip, error)
	ListPublic(ctx context.Context) ([]domain.PublicTrip, error)
	GetPublicByID(ctx context.Context, id string) (*domain.PublicTrip, error)
}

type tripRepository struct {
	col *mongo.Collection
}

// NewTripRepository constructs repository.
func NewTripRepository(db *mongo.Database) TripRepository {
	return &tripRepository{col: db.Collection("trips")}
}

func (r *tripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, trip)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		trip.ID = id
	}
	return nil
}

func (r *tripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	trip.UpdatedAt = time.Now()
	res, err := r.col.UpdateByID(ctx, trip.ID, bson.M{"$set": bson.M{
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"description": trip.Description,
		"budget":      trip.Budget,
		"activities":  trip.Activities,
		"notes":       trip.Notes,
		"is_public":   trip.IsPublic,
		"updated_at":  trip.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var trip domain.Trip
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	trips := []domain.Trip{}
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// publicTripPipeline joins each public trip with its owner's summary,
// newest first.
func publicTripPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: "$owner"}},
	}
}

func (r *tripRepository) ListPublic(ctx context.Context) ([]domain.PublicTrip, error) {
	cur, err := r.col.Aggregate(ctx, publicTripPipeline(bson.M{"is_public": true}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	trips := []domain.PublicTrip{}
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetPublicByID(ctx context.Context, id string) (*domain.PublicTrip, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	cur, err := r.col.Aggregate(ctx, publicTripPipeline(bson.M{"_id": oid, "is_public": true}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return nil, mongo.ErrNoDocuments
	}
	var trip domain.PublicTrip
	if err := cur.Decode(&trip); err != nil {
		return nil, err
	}
	return &trip, nil
}
