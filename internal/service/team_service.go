package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/domain"
	"github.com/spec-kit/travel-planner/internal/events"
	"github.com/spec-kit/travel-planner/internal/repository"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// TeamView is a team with admin and member profiles attached.
type TeamView struct {
	domain.Team
	Admin   domain.UserSummary   `json:"admin"`
	Members []domain.UserSummary `json:"members"`
}

// TeamService owns team business rules: admin-only management, the member
// removal matrix, and auto-deletion of empty teams.
type TeamService struct {
	teams      repository.TeamRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewTeamService builds the service.
func NewTeamService(teams repository.TeamRepository, users repository.UserRepository, dispatcher events.Dispatcher) *TeamService {
	return &TeamService{teams: teams, users: users, dispatcher: dispatcher}
}

// CreateTeam creates a team with the actor as admin and sole member. Admin
// and member list land in the same document write, so the team is never
// visible without its admin listed.
func (s *TeamService) CreateTeam(ctx context.Context, admin *domain.User, name, description string) (*TeamView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("Team name is required", nil)
	}

	if _, err := s.teams.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("Team name already exists", nil)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	team := &domain.Team{
		Name:        name,
		Description: strings.TrimSpace(description),
		AdminID:     admin.ID,
		MemberIDs:   []primitive.ObjectID{admin.ID},
	}
	if err := s.teams.Create(ctx, team); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflict("Team name already exists", nil)
		}
		return nil, err
	}
	return s.view(ctx, team)
}

// ListTeams returns all teams the user belongs to, sorted by name.
func (s *TeamService) ListTeams(ctx context.Context, userID primitive.ObjectID) ([]TeamView, error) {
	teams, err := s.teams.ListByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]TeamView, 0, len(teams))
	for i := range teams {
		view, err := s.view(ctx, &teams[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// GetTeam returns a team's details; members only.
func (s *TeamService) GetTeam(ctx context.Context, actorID primitive.ObjectID, teamID string) (*TeamView, error) {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanViewTeam(actorID, team); err != nil {
		return nil, err
	}
	return s.view(ctx, team)
}

// UpdateTeam renames or re-describes a team; admin only.
func (s *TeamService) UpdateTeam(ctx context.Context, actorID primitive.ObjectID, teamID string, name, description *string) (*TeamView, error) {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanManageTeam(actorID, team); err != nil {
		return nil, err
	}

	if name != nil {
		newName := strings.TrimSpace(*name)
		if newName == "" {
			return nil, apperrors.NewValidationError("Team name is required", nil)
		}
		if newName != team.Name {
			if existing, err := s.teams.GetByName(ctx, newName); err == nil && existing.ID != team.ID {
				return nil, apperrors.NewConflict("Team name already exists", nil)
			} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			team.Name = newName
		}
	}
	if description != nil {
		team.Description = strings.TrimSpace(*description)
	}

	if err := s.teams.Update(ctx, team); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflict("Team name already exists", nil)
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Team", nil)
		}
		return nil, err
	}
	return s.view(ctx, team)
}

// AddMember adds an existing user to the team; admin only.
func (s *TeamService) AddMember(ctx context.Context, actorID primitive.ObjectID, teamID, userIDToAdd string) (*TeamView, error) {
	if userIDToAdd == "" {
		return nil, apperrors.NewValidationError("User ID to add is required", nil)
	}

	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanManageTeam(actorID, team); err != nil {
		return nil, err
	}

	userToAdd, err := s.users.GetByID(ctx, userIDToAdd)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("User to add", nil)
		}
		return nil, err
	}
	if team.HasMember(userToAdd.ID) {
		return nil, apperrors.NewConflict("User is already a member of this team", nil)
	}

	team.MemberIDs = append(team.MemberIDs, userToAdd.ID)
	if err := s.teams.Update(ctx, team); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Team", nil)
		}
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTeamMemberAdded,
		ActorID:   actorID.Hex(),
		Timestamp: time.Now(),
		Payload: events.TeamMemberAddedPayload{
			TeamID:   team.ID.Hex(),
			TeamName: team.Name,
			MemberID: userToAdd.ID.Hex(),
		},
	})
	return s.view(ctx, team)
}

// RemoveMember removes a member under the removal matrix: the admin may
// remove any other member, a member may remove only itself, and the admin can
// never be removed. An emptied team is deleted. The returned view is nil when
// the team was deleted.
func (s *TeamService) RemoveMember(ctx context.Context, actorID primitive.ObjectID, teamID, memberID string) (*TeamView, bool, error) {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, false, err
	}

	memberOID, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return nil, false, apperrors.NewNotFound("Member", nil)
	}
	if !team.HasMember(memberOID) {
		return nil, false, apperrors.NewNotFound("Member", nil)
	}

	if err := auth.CanRemoveMember(actorID, team, memberOID); err != nil {
		return nil, false, err
	}

	remaining := make([]primitive.ObjectID, 0, len(team.MemberIDs)-1)
	for _, id := range team.MemberIDs {
		if id != memberOID {
			remaining = append(remaining, id)
		}
	}
	team.MemberIDs = remaining

	deleted := false
	if len(team.MemberIDs) == 0 {
		if err := s.teams.Delete(ctx, team.ID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, err
		}
		deleted = true
	} else if err := s.teams.Update(ctx, team); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, apperrors.NewNotFound("Team", nil)
		}
		return nil, false, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTeamMemberRemoved,
		ActorID:   actorID.Hex(),
		Timestamp: time.Now(),
		Payload: events.TeamMemberRemovedPayload{
			TeamID:      team.ID.Hex(),
			TeamName:    team.Name,
			MemberID:    memberOID.Hex(),
			TeamDeleted: deleted,
		},
	})

	if deleted {
		return nil, true, nil
	}
	view, err := s.view(ctx, team)
	return view, false, err
}

// DeleteTeam removes the team entirely; admin only.
func (s *TeamService) DeleteTeam(ctx context.Context, actorID primitive.ObjectID, teamID string) error {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if err := auth.CanManageTeam(actorID, team); err != nil {
		return err
	}
	if err := s.teams.Delete(ctx, team.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Team", nil)
		}
		return err
	}
	return nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Team", nil)
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) view(ctx context.Context, team *domain.Team) (*TeamView, error) {
	members, err := s.users.Summaries(ctx, team.MemberIDs)
	if err != nil {
		return nil, err
	}
	view := &TeamView{Team: *team, Members: members}
	for _, m := range members {
		if m.ID == team.AdminID {
			view.Admin = m
			break
		}
	}
	return view, nil
}
