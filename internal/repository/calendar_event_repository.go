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

// CalendarEventRepository manages persistence for calendar events.
type CalendarEventRepository interface {
	Create(ctx context.Context, ev *domain.CalendarEvent) error
	Update(ctx context.Context, ev *domain.CalendarEvent) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.CalendarEvent, error)
}

type calendarEventRepository struct {
	col *mongo.Collection
}

// NewCalendarEventRepository constructs repository.
func NewCalendarEventRepository(db *mongo.Database) CalendarEventRepository {
	return &calendarEventRepository{col: db.Collection("calendar_events")}
}

func (r *calendarEventRepository) Create(ctx context.Context, ev *domain.CalendarEvent) error {
	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, ev)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		ev.ID = id
	}
	return nil
}

func (r *calendarEventRepository) Update(ctx context.Context, ev *domain.CalendarEvent) error {
	ev.UpdatedAt = time.Now()
	res, err := r.col.UpdateByID(ctx, ev.ID, bson.M{"$set": bson.M{
		"title":       ev.Title,
		"description": ev.Description,
		"start_date":  ev.StartDate,
		"end_date":    ev.EndDate,
		"all_day":     ev.AllDay,
		"updated_at":  ev.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *calendarEventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *calendarEventRepository) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var ev domain.CalendarEvent
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *calendarEventRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.CalendarEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []domain.CalendarEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
