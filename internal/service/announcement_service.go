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

// AnnouncementView is an announcement with its author's profile attached.
type AnnouncementView struct {
	domain.Announcement
	Author domain.UserSummary `json:"author"`
}

// AnnouncementService owns announcement rules: author-only mutation, type and
// priority validation, tag normalization.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	users         repository.UserRepository
	dispatcher    events.Dispatcher
}

// NewAnnouncementService builds the service.
func NewAnnouncementService(announcements repository.AnnouncementRepository, users repository.UserRepository, dispatcher events.Dispatcher) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, users: users, dispatcher: dispatcher}
}

// AnnouncementCreateInput carries fields for a new announcement.
type AnnouncementCreateInput struct {
	Title    string
	Content  string
	Type     string
	Priority string
	Tags     []string
	Pinned   bool
}

// AnnouncementUpdateInput carries partial announcement changes.
type AnnouncementUpdateInput struct {
	Title    *string
	Content  *string
	Type     *string
	Priority *string
	Tags     []string
	Pinned   *bool
}

// Create validates and persists a new announcement by the author.
func (s *AnnouncementService) Create(ctx context.Context, author *domain.User, input AnnouncementCreateInput) (*AnnouncementView, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("Title and content are required", nil)
	}

	annType := domain.AnnouncementTypeUpdate
	if input.Type != "" {
		annType = domain.AnnouncementType(input.Type)
		if !domain.ValidAnnouncementType(annType) {
			return nil, apperrors.NewValidationError("Unknown announcement type", nil)
		}
	}
	priority := domain.AnnouncementPriorityMedium
	if input.Priority != "" {
		priority = domain.AnnouncementPriority(input.Priority)
		if !domain.ValidAnnouncementPriority(priority) {
			return nil, apperrors.NewValidationError("Unknown announcement priority", nil)
		}
	}

	announcement := &domain.Announcement{
		Title:    title,
		Content:  input.Content,
		Type:     annType,
		Priority: priority,
		Tags:     normalizeTags(input.Tags),
		Pinned:   input.Pinned,
		AuthorID: author.ID,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAnnouncementPosted,
		ActorID:   author.ID.Hex(),
		Timestamp: time.Now(),
		Payload: events.AnnouncementPostedPayload{
			AnnouncementID: announcement.ID.Hex(),
			Title:          announcement.Title,
			Priority:       string(announcement.Priority),
		},
	})
	return &AnnouncementView{Announcement: *announcement, Author: author.Summary()}, nil
}

// List returns announcements matching the filter with authors attached,
// pinned first then newest.
func (s *AnnouncementService) List(ctx context.Context, filter repository.AnnouncementFilter) ([]AnnouncementView, error) {
	items, err := s.announcements.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]primitive.ObjectID, 0, len(items))
	seen := map[primitive.ObjectID]bool{}
	for i := range items {
		if !seen[items[i].AuthorID] {
			seen[items[i].AuthorID] = true
			authorIDs = append(authorIDs, items[i].AuthorID)
		}
	}
	summaries, err := s.users.Summaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]domain.UserSummary, len(summaries))
	for _, sum := range summaries {
		byID[sum.ID] = sum
	}

	views := make([]AnnouncementView, 0, len(items))
	for i := range items {
		views = append(views, AnnouncementView{Announcement: items[i], Author: byID[items[i].AuthorID]})
	}
	return views, nil
}

// Get returns one announcement with its author attached.
func (s *AnnouncementService) Get(ctx context.Context, id string) (*AnnouncementView, error) {
	announcement, err := s.getAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withAuthor(ctx, announcement)
}

// Update applies partial changes; author only.
func (s *AnnouncementService) Update(ctx context.Context, actorID primitive.ObjectID, id string, input AnnouncementUpdateInput) (*AnnouncementView, error) {
	announcement, err := s.getAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanModifyAnnouncement(actorID, announcement); err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("Title is required", nil)
		}
		announcement.Title = title
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, apperrors.NewValidationError("Content is required", nil)
		}
		announcement.Content = *input.Content
	}
	if input.Type != nil {
		annType := domain.AnnouncementType(*input.Type)
		if !domain.ValidAnnouncementType(annType) {
			return nil, apperrors.NewValidationError("Unknown announcement type", nil)
		}
		announcement.Type = annType
	}
	if input.Priority != nil {
		priority := domain.AnnouncementPriority(*input.Priority)
		if !domain.ValidAnnouncementPriority(priority) {
			return nil, apperrors.NewValidationError("Unknown announcement priority", nil)
		}
		announcement.Priority = priority
	}
	if input.Tags != nil {
		announcement.Tags = normalizeTags(input.Tags)
	}
	if input.Pinned != nil {
		announcement.Pinned = *input.Pinned
	}

	if err := s.announcements.Update(ctx, announcement); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Announcement", nil)
		}
		return nil, err
	}
	return s.withAuthor(ctx, announcement)
}

// Delete removes the announcement; author only.
func (s *AnnouncementService) Delete(ctx context.Context, actorID primitive.ObjectID, id string) error {
	announcement, err := s.getAnnouncement(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CanModifyAnnouncement(actorID, announcement); err != nil {
		return err
	}
	if err := s.announcements.Delete(ctx, announcement.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Announcement", nil)
		}
		return err
	}
	return nil
}

func (s *AnnouncementService) getAnnouncement(ctx context.Context, id string) (*domain.Announcement, error) {
	announcement, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Announcement", nil)
		}
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) withAuthor(ctx context.Context, announcement *domain.Announcement) (*AnnouncementView, error) {
	view := &AnnouncementView{Announcement: *announcement}
	summaries, err := s.users.Summaries(ctx, []primitive.ObjectID{announcement.AuthorID})
	if err != nil {
		return nil, err
	}
	if len(summaries) > 0 {
		view.Author = summaries[0]
	}
	return view, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
