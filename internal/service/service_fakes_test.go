package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/travel-planner/internal/domain"
	"github.com/spec-kit/travel-planner/internal/events"
)

// In-memory repository fakes shared by the service tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	user.ID = primitive.NewObjectID()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[oid]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memUserRepo) Summaries(ctx context.Context, ids []primitive.ObjectID) ([]domain.UserSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.UserSummary, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u.Summary())
		}
	}
	return out, nil
}

type memTeamRepo struct {
	mu    sync.Mutex
	teams map[primitive.ObjectID]*domain.Team
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{teams: map[primitive.ObjectID]*domain.Team{}}
}

func (r *memTeamRepo) Create(ctx context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.teams {
		if existing.Name == team.Name {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	team.ID = primitive.NewObjectID()
	copied := *team
	r.teams[team.ID] = &copied
	return nil
}

func (r *memTeamRepo) Update(ctx context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *team
	r.teams[team.ID] = &copied
	return nil
}

func (r *memTeamRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.teams, id)
	return nil
}

func (r *memTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if team, ok := r.teams[oid]; ok {
		copied := *team
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memTeamRepo) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, team := range r.teams {
		if team.Name == name {
			copied := *team
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memTeamRepo) ListByMember(ctx context.Context, userID primitive.ObjectID) ([]domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Team{}
	for _, team := range r.teams {
		if team.HasMember(userID) {
			out = append(out, *team)
		}
	}
	return out, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
