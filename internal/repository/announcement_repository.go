package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/travel-planner/internal/domain"
)

// AnnouncementFilter narrows the announcement listing.
type AnnouncementFilter struct {
	Type   string
	Search string
}

// AnnouncementRepository manages persistence for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context, filter AnnouncementFilter) ([]domain.Announcement, error)
}

type announcementRepository struct {
	col *mongo.Collection
}

// NewAnnouncementRepository constructs repository.
func NewAnnouncementRepository(db *mongo.Database) AnnouncementRepository {
	return &announcementRepository{col: db.Collection("announcements")}
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = id
	}
	return nil
}

func (r *announcementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	a.UpdatedAt = time.Now()
	res, err := r.col.UpdateByID(ctx, a.ID, bson.M{"$set": bson.M{
		"title":      a.Title,
		"content":    a.Content,
		"type":       a.Type,
		"priority":   a.Priority,
		"tags":       a.Tags,
		"pinned":     a.Pinned,
		"updated_at": a.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var a domain.Announcement
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// announcementQuery builds the listing filter document. The search term is
// quoted so regex metacharacters in user input match literally.
func announcementQuery(filter AnnouncementFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" && filter.Type != "all" {
		query["type"] = filter.Type
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}
	return query
}

// List returns announcements matching the filter, pinned first then newest.
func (r *announcementRepository) List(ctx context.Context, filter AnnouncementFilter) ([]domain.Announcement, error) {
	query := announcementQuery(filter)

	opts := options.Find().SetSort(bson.D{
		{Key: "pinned", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []domain.Announcement{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
