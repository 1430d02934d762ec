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

// TripService owns trip business rules: date ordering, ownership, and the
// explore cache lifecycle.
type TripService struct {
	trips      repository.TripRepository
	explore    *ExploreService
	dispatcher events.Dispatcher
}

// NewTripService builds the service.
func NewTripService(trips repository.TripRepository, explore *ExploreService, dispatcher events.Dispatcher) *TripService {
	return &TripService{trips: trips, explore: explore, dispatcher: dispatcher}
}

// TripCreateInput carries fields for a new trip.
type TripCreateInput struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Budget      *float64
	Activities  []domain.Activity
	Notes       string
	IsPublic    bool
}

// TripUpdateInput carries partial trip changes.
type TripUpdateInput struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Description *string
	Budget      *float64
	Activities  []domain.Activity
	Notes       *string
	IsPublic    *bool
}

// CreateTrip validates and persists a new trip for the owner.
func (s *TripService) CreateTrip(ctx context.Context, ownerID primitive.ObjectID, input TripCreateInput) (*domain.Trip, error) {
	destination := strings.TrimSpace(input.Destination)
	if destination == "" {
		return nil, apperrors.NewValidationError("Please add a destination", nil)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, apperrors.NewValidationError("Please add a start date and an end date", nil)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.NewValidationError("End date must be after start date", nil)
	}

	trip := &domain.Trip{
		UserID:      ownerID,
		Destination: destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: strings.TrimSpace(input.Description),
		Budget:      input.Budget,
		Activities:  input.Activities,
		Notes:       input.Notes,
		IsPublic:    input.IsPublic,
	}
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.explore.InvalidateCache(ctx)
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTripCreated,
		ActorID:   ownerID.Hex(),
		Timestamp: time.Now(),
		Payload: events.TripCreatedPayload{
			TripID:      trip.ID.Hex(),
			Destination: trip.Destination,
			IsPublic:    trip.IsPublic,
		},
	})
	return trip, nil
}

// ListTrips returns the owner's trips, most recent start date first.
func (s *TripService) ListTrips(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Trip, error) {
	return s.trips.ListByUser(ctx, ownerID)
}

// GetTrip returns a trip the actor may view: their own, or any public trip.
func (s *TripService) GetTrip(ctx context.Context, actorID primitive.ObjectID, id string) (*domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Trip", nil)
		}
		return nil, err
	}
	if err := auth.CanViewTrip(actorID, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// UpdateTrip applies partial changes after the ownership check. Date ordering
// is re-validated against the merged values.
func (s *TripService) UpdateTrip(ctx context.Context, actorID primitive.ObjectID, id string, input TripUpdateInput) (*domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Trip", nil)
		}
		return nil, err
	}
	if err := auth.CanModifyTrip(actorID, trip); err != nil {
		return nil, err
	}

	if input.Destination != nil {
		destination := strings.TrimSpace(*input.Destination)
		if destination == "" {
			return nil, apperrors.NewValidationError("Please add a destination", nil)
		}
		trip.Destination = destination
	}
	if input.StartDate != nil {
		trip.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		trip.EndDate = *input.EndDate
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, apperrors.NewValidationError("End date must be after start date", nil)
	}
	if input.Description != nil {
		trip.Description = *input.Description
	}
	if input.Budget != nil {
		trip.Budget = input.Budget
	}
	if input.Activities != nil {
		trip.Activities = input.Activities
	}
	if input.Notes != nil {
		trip.Notes = *input.Notes
	}
	if input.IsPublic != nil {
		trip.IsPublic = *input.IsPublic
	}

	if err := s.trips.Update(ctx, trip); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Trip", nil)
		}
		return nil, err
	}

	s.explore.InvalidateCache(ctx)
	return trip, nil
}

// DeleteTrip removes the trip after the ownership check.
func (s *TripService) DeleteTrip(ctx context.Context, actorID primitive.ObjectID, id string) error {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Trip", nil)
		}
		return err
	}
	if err := auth.CanModifyTrip(actorID, trip); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, trip.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Trip", nil)
		}
		return err
	}

	s.explore.InvalidateCache(ctx)
	return nil
}
