package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var got []Event
	d.Subscribe(EventTripCreated, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventTripCreated})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestDispatcher_TypeIsolation(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventMessageSent, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTripCreated}))
	assert.Zero(t, calls)
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	reached := false
	d.Subscribe(EventTeamMemberAdded, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventTeamMemberAdded, func(ctx context.Context, e Event) error {
		reached = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTeamMemberAdded}))
	assert.True(t, reached)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventAnnouncementPosted}))
}
