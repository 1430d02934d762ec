package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/spec-kit/travel-planner/internal/domain"
	"github.com/spec-kit/travel-planner/internal/persistence"
	"github.com/spec-kit/travel-planner/internal/repository"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

const exploreCacheKey = "explore:public_trips"

// ExploreService serves the public trips surface. The listing is cached in
// Redis with a short TTL; the cache is best-effort and an unreachable Redis
// degrades to direct reads.
type ExploreService struct {
	trips  repository.TripRepository
	cache  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewExploreService builds the service.
func NewExploreService(trips repository.TripRepository, cache *persistence.Redis, ttl time.Duration, logger *zap.Logger) *ExploreService {
	return &ExploreService{trips: trips, cache: cache, ttl: ttl, logger: logger}
}

// ListPublicTrips returns all public trips with owner summaries, newest first.
func (s *ExploreService) ListPublicTrips(ctx context.Context) ([]domain.PublicTrip, error) {
	if cached, err := s.cache.Client.Get(ctx, exploreCacheKey).Bytes(); err == nil {
		var trips []domain.PublicTrip
		if err := json.Unmarshal(cached, &trips); err == nil {
			return trips, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("explore cache read failed", zap.Error(err))
	}

	trips, err := s.trips.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(trips); err == nil {
		if err := s.cache.Client.Set(ctx, exploreCacheKey, payload, s.ttl).Err(); err != nil {
			s.logger.Warn("explore cache write failed", zap.Error(err))
		}
	}
	return trips, nil
}

// GetPublicTrip returns one public trip by id.
func (s *ExploreService) GetPublicTrip(ctx context.Context, id string) (*domain.PublicTrip, error) {
	trip, err := s.trips.GetPublicByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Public trip", nil)
		}
		return nil, err
	}
	return trip, nil
}

// InvalidateCache drops the cached listing after any trip mutation.
func (s *ExploreService) InvalidateCache(ctx context.Context) {
	if err := s.cache.Client.Del(ctx, exploreCacheKey).Err(); err != nil {
		s.logger.Warn("explore cache invalidation failed", zap.Error(err))
	}
}
