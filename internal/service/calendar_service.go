package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/domain"
	"github.com/spec-kit/travel-planner/internal/repository"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

// CalendarService owns personal calendar events; all access is owner-only.
type CalendarService struct {
	events repository.CalendarEventRepository
}

// NewCalendarService builds the service.
func NewCalendarService(events repository.CalendarEventRepository) *CalendarService {
	return &CalendarService{events: events}
}

// CalendarEventCreateInput carries fields for a new event.
type CalendarEventCreateInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	AllDay      bool
}

// CalendarEventUpdateInput carries partial event changes.
type CalendarEventUpdateInput struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	AllDay      *bool
}

// CreateEvent validates and persists a new event for the owner.
func (s *CalendarService) CreateEvent(ctx context.Context, ownerID primitive.ObjectID, input CalendarEventCreateInput) (*domain.CalendarEvent, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("Title is required", nil)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, apperrors.NewValidationError("Start and end dates are required", nil)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.NewValidationError("End date must be after start date", nil)
	}

	ev := &domain.CalendarEvent{
		UserID:      ownerID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		AllDay:      input.AllDay,
	}
	if err := s.events.Create(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// ListEvents returns the owner's events ordered by start date.
func (s *CalendarService) ListEvents(ctx context.Context, ownerID primitive.ObjectID) ([]domain.CalendarEvent, error) {
	return s.events.ListByUser(ctx, ownerID)
}

// GetEvent returns one event after the ownership check.
func (s *CalendarService) GetEvent(ctx context.Context, actorID primitive.ObjectID, id string) (*domain.CalendarEvent, error) {
	ev, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanModifyCalendarEvent(actorID, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// UpdateEvent applies partial changes after the ownership check.
func (s *CalendarService) UpdateEvent(ctx context.Context, actorID primitive.ObjectID, id string, input CalendarEventUpdateInput) (*domain.CalendarEvent, error) {
	ev, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanModifyCalendarEvent(actorID, ev); err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("Title is required", nil)
		}
		ev.Title = title
	}
	if input.Description != nil {
		ev.Description = *input.Description
	}
	if input.StartDate != nil {
		ev.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		ev.EndDate = *input.EndDate
	}
	if ev.EndDate.Before(ev.StartDate) {
		return nil, apperrors.NewValidationError("End date must be after start date", nil)
	}
	if input.AllDay != nil {
		ev.AllDay = *input.AllDay
	}

	if err := s.events.Update(ctx, ev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Event", nil)
		}
		return nil, err
	}
	return ev, nil
}

// DeleteEvent removes the event after the ownership check.
func (s *CalendarService) DeleteEvent(ctx context.Context, actorID primitive.ObjectID, id string) error {
	ev, err := s.getEvent(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CanModifyCalendarEvent(actorID, ev); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, ev.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Event", nil)
		}
		return err
	}
	return nil
}

func (s *CalendarService) getEvent(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	ev, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Event", nil)
		}
		return nil, err
	}
	return ev, nil
}
