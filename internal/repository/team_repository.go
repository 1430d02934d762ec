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

// TeamRepository manages persistence for teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	ListByMember(ctx context.Context, userID primitive.ObjectID) ([]domain.Team, error)
}

type teamRepository struct {
	col *mongo.Collection
}

// NewTeamRepository constructs repository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{col: db.Collection("teams")}
}

// Create writes the team, including admin and member list, as a single
// document insert so no reader can observe a team without its admin listed.
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, team)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		team.ID = id
	}
	return nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	team.UpdatedAt = time.Now()
	res, err := r.col.UpdateByID(ctx, team.ID, bson.M{"$set": bson.M{
		"name":        team.Name,
		"description": team.Description,
		"admin_id":    team.AdminID,
		"member_ids":  team.MemberIDs,
		"updated_at":  team.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var team domain.Team
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	var team domain.Team
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListByMember(ctx context.Context, userID primitive.ObjectID) ([]domain.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"member_ids": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	teams := []domain.Team{}
	if err := cur.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}
