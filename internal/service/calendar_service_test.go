package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/travel-planner/internal/domain"
)

type memCalendarRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*domain.CalendarEvent
}

func newMemCalendarRepo() *memCalendarRepo {
	return &memCalendarRepo{items: map[primitive.ObjectID]*domain.CalendarEvent{}}
}

func (r *memCalendarRepo) Create(ctx context.Context, ev *domain.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev.ID = primitive.NewObjectID()
	copied := *ev
	r.items[ev.ID] = &copied
	return nil
}

func (r *memCalendarRepo) Update(ctx context.Context, ev *domain.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[ev.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *ev
	r.items[ev.ID] = &copied
	return nil
}

func (r *memCalendarRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.items, id)
	return nil
}

func (r *memCalendarRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev, ok := r.items[oid]; ok {
		copied := *ev
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memCalendarRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.CalendarEvent{}
	for _, ev := range r.items {
		if ev.UserID == userID {
			out = append(out, *ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func newCalendarService() (*CalendarService, primitive.ObjectID) {
	return NewCalendarService(newMemCalendarRepo()), primitive.NewObjectID()
}

func day(d int) time.Time {
	return time.Date(2026, 11, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateEvent_Validation(t *testing.T) {
	t.Parallel()

	s, owner := newCalendarService()
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, owner, CalendarEventCreateInput{StartDate: day(1), EndDate: day(2)})
	requireStatus(t, err, 400)

	_, err = s.CreateEvent(ctx, owner, CalendarEventCreateInput{Title: "Standup"})
	requireStatus(t, err, 400)

	_, err = s.CreateEvent(ctx, owner, CalendarEventCreateInput{Title: "Standup", StartDate: day(2), EndDate: day(1)})
	requireStatus(t, err, 400)

	ev, err := s.CreateEvent(ctx, owner, CalendarEventCreateInput{Title: "Standup", StartDate: day(1), EndDate: day(1), AllDay: true})
	require.NoError(t, err)
	assert.True(t, ev.AllDay)
}

func TestListEvents_SortedByStart(t *testing.T) {
	t.Parallel()

	s, owner := newCalendarService()
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, owner, CalendarEventCreateInput{Title: "Later", StartDate: day(5), EndDate: day(6)})
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, owner, CalendarEventCreateInput{Title: "Sooner", StartDate: day(1), EndDate: day(2)})
	require.NoError(t, err)

	listed, err := s.ListEvents(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Sooner", listed[0].Title)
	assert.Equal(t, "Later", listed[1].Title)
}

func TestEventAccess_OwnerOnly(t *testing.T) {
	t.Parallel()

	s, owner := newCalendarService()
	ctx := context.Background()
	stranger := primitive.NewObjectID()

	ev, err := s.CreateEvent(ctx, owner, CalendarEventCreateInput{Title: "Standup", StartDate: day(1), EndDate: day(2)})
	require.NoError(t, err)

	_, err = s.GetEvent(ctx, stranger, ev.ID.Hex())
	requireStatus(t, err, 403)

	title := "Renamed"
	_, err = s.UpdateEvent(ctx, stranger, ev.ID.Hex(), CalendarEventUpdateInput{Title: &title})
	requireStatus(t, err, 403)

	err = s.DeleteEvent(ctx, stranger, ev.ID.Hex())
	requireStatus(t, err, 403)

	updated, err := s.UpdateEvent(ctx, owner, ev.ID.Hex(), CalendarEventUpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	require.NoError(t, s.DeleteEvent(ctx, owner, ev.ID.Hex()))

	_, err = s.GetEvent(ctx, owner, ev.ID.Hex())
	requireStatus(t, err, 404)
}

func TestUpdateEvent_DateRevalidation(t *testing.T) {
	t.Parallel()

	s, owner := newCalendarService()
	ctx := context.Background()

	ev, err := s.CreateEvent(ctx, owner, CalendarEventCreateInput{Title: "Offsite", StartDate: day(3), EndDate: day(5)})
	require.NoError(t, err)

	badStart := day(7)
	_, err = s.UpdateEvent(ctx, owner, ev.ID.Hex(), CalendarEventUpdateInput{StartDate: &badStart})
	requireStatus(t, err, 400)
}
