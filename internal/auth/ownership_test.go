package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/travel-planner/internal/domain"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

func requireForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 403, domainErr.HTTPStatus)
}

func TestCanViewTrip(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	private := &domain.Trip{UserID: owner}
	public := &domain.Trip{UserID: owner, IsPublic: true}

	assert.NoError(t, CanViewTrip(owner, private))
	assert.NoError(t, CanViewTrip(stranger, public))
	requireForbidden(t, CanViewTrip(stranger, private))
}

func TestCanModifyTrip(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	// Public visibility never grants write access.
	public := &domain.Trip{UserID: owner, IsPublic: true}

	assert.NoError(t, CanModifyTrip(owner, public))
	requireForbidden(t, CanModifyTrip(stranger, public))
}

func TestCanViewTeam(t *testing.T) {
	t.Parallel()

	admin := primitive.NewObjectID()
	member := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	team := &domain.Team{AdminID: admin, MemberIDs: []primitive.ObjectID{admin, member}}

	assert.NoError(t, CanViewTeam(admin, team))
	assert.NoError(t, CanViewTeam(member, team))
	requireForbidden(t, CanViewTeam(stranger, team))
}

func TestCanManageTeam(t *testing.T) {
	t.Parallel()

	admin := primitive.NewObjectID()
	member := primitive.NewObjectID()

	team := &domain.Team{AdminID: admin, MemberIDs: []primitive.ObjectID{admin, member}}

	assert.NoError(t, CanManageTeam(admin, team))
	requireForbidden(t, CanManageTeam(member, team))
}

func TestCanRemoveMember_Matrix(t *testing.T) {
	t.Parallel()

	admin := primitive.NewObjectID()
	memberA := primitive.NewObjectID()
	memberB := primitive.NewObjectID()

	team := &domain.Team{AdminID: admin, MemberIDs: []primitive.ObjectID{admin, memberA, memberB}}

	// Admin removes any non-admin member.
	assert.NoError(t, CanRemoveMember(admin, team, memberA))

	// Member removes itself.
	assert.NoError(t, CanRemoveMember(memberA, team, memberA))

	// Member cannot remove another member.
	requireForbidden(t, CanRemoveMember(memberA, team, memberB))

	// Nobody removes the admin while other members remain.
	requireForbidden(t, CanRemoveMember(admin, team, admin))
	requireForbidden(t, CanRemoveMember(memberA, team, admin))
}

func TestCanRemoveMember_SoleAdmin(t *testing.T) {
	t.Parallel()

	admin := primitive.NewObjectID()
	team := &domain.Team{AdminID: admin, MemberIDs: []primitive.ObjectID{admin}}

	err := CanRemoveMember(admin, team, admin)
	requireForbidden(t, err)
	assert.Contains(t, err.Error(), "only member")
}

func TestCanModifyAnnouncement(t *testing.T) {
	t.Parallel()

	author := primitive.NewObjectID()
	other := primitive.NewObjectID()
	a := &domain.Announcement{AuthorID: author}

	assert.NoError(t, CanModifyAnnouncement(author, a))
	requireForbidden(t, CanModifyAnnouncement(other, a))
}

func TestCanModifyCalendarEvent(t *testing.T) {
	t.Parallel()

	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	ev := &domain.CalendarEvent{UserID: owner}

	assert.NoError(t, CanModifyCalendarEvent(owner, ev))
	requireForbidden(t, CanModifyCalendarEvent(other, ev))
}

func TestCanViewMessage(t *testing.T) {
	t.Parallel()

	sender := primitive.NewObjectID()
	receiver := primitive.NewObjectID()
	other := primitive.NewObjectID()
	msg := &domain.Message{SenderID: sender, ReceiverID: receiver}

	assert.NoError(t, CanViewMessage(sender, msg))
	assert.NoError(t, CanViewMessage(receiver, msg))
	requireForbidden(t, CanViewMessage(other, msg))
}
