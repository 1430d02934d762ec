package auth

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/travel-planner/internal/domain"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// Ownership rules for each resource type, applied after authentication.
// Every denial is a Forbidden error, distinct from the Unauthorized errors
// the middleware produces for unknown identities.

// CanViewTrip allows the owner, or anyone when the trip is public.
func CanViewTrip(actorID primitive.ObjectID, trip *domain.Trip) error {
	if trip.UserID == actorID || trip.IsPublic {
		return nil
	}
	return apperrors.NewForbidden("Not authorized to view this trip")
}

// CanModifyTrip allows only the owner to update or delete.
func CanModifyTrip(actorID primitive.ObjectID, trip *domain.Trip) error {
	if trip.UserID == actorID {
		return nil
	}
	return apperrors.NewForbidden("Not authorized to modify this trip")
}

// CanViewTeam allows members only.
func CanViewTeam(actorID primitive.ObjectID, team *domain.Team) error {
	if team.HasMember(actorID) {
		return nil
	}
	return apperrors.NewForbidden("Not authorized to view this team")
}

// CanManageTeam allows only the admin to rename, add members, or delete.
func CanManageTeam(actorID primitive.ObjectID, team *domain.Team) error {
	if team.AdminID == actorID {
		return nil
	}
	return apperrors.NewForbidden("Not authorized to manage this team")
}

// CanRemoveMember decides whether actor may remove memberID from the team.
// The admin may remove any other member; a regular member may remove only
// itself. Removing the admin is always denied: as the last member the team
// must be deleted instead, and with members remaining admin rights must be
// transferred first.
func CanRemoveMember(actorID primitive.ObjectID, team *domain.Team, memberID primitive.ObjectID) error {
	if team.AdminID != actorID && actorID != memberID {
		return apperrors.NewForbidden("Not authorized to remove this member")
	}
	if team.AdminID == memberID {
		if len(team.MemberIDs) == 1 {
			return apperrors.NewForbidden("Admin cannot leave the team if they are the only member. Delete the team instead or transfer admin rights.")
		}
		return apperrors.NewForbidden("Admin cannot leave the team. Please transfer admin rights or delete the team.")
	}
	return nil
}

// CanViewMessage allows conversation participants only.
func CanViewMessage(actorID primitive.ObjectID, msg *domain.Message) error {
	if msg.Participant(actorID) {
		return nil
	}
	return apperrors.NewForbidden("Not authorized to view this message")
}

// CanModifyAnnouncement allows only the author to update or delete.
func CanModifyAnnouncement(actorID primitive.ObjectID, a *domain.Announcement) error {
	if a.AuthorID == actorID {
		return nil
	}
	return apperrors.NewForbidden("Not authorized to modify this announcement")
}

// CanModifyCalendarEvent allows only the owner.
func CanModifyCalendarEvent(actorID primitive.ObjectID, ev *domain.CalendarEvent) error {
	if ev.UserID == actorID {
		return nil
	}
	return apperrors.NewForbidden("Not authorized to access this event")
}
