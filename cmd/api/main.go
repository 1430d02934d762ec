package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/travel-planner/internal/api/http"
	"github.com/spec-kit/travel-planner/internal/api/http/handlers"
	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/config"
	"github.com/spec-kit/travel-planner/internal/events"
	"github.com/spec-kit/travel-planner/internal/observability"
	"github.com/spec-kit/travel-planner/internal/persistence"
	"github.com/spec-kit/travel-planner/internal/repository"
	"github.com/spec-kit/travel-planner/internal/service"
	"github.com/spec-kit/travel-planner/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	if err := persistence.EnsureIndexes(ctx, mongo.Database(), logger); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	db := mongo.Database()
	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	calendarRepo := repository.NewCalendarEventRepository(db)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	exploreService := service.NewExploreService(tripRepo, redis, cfg.Cache.ExploreTTL(), logger)
	tripService := service.NewTripService(tripRepo, exploreService, dispatcher)
	teamService := service.NewTeamService(teamRepo, userRepo, dispatcher)
	chatService := service.NewChatService(messageRepo, userRepo, dispatcher)
	announcementService := service.NewAnnouncementService(announcementRepo, userRepo, dispatcher)
	calendarService := service.NewCalendarService(calendarRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(mongo, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Trips:          handlers.NewTripsHandler(tripService),
		Teams:          handlers.NewTeamsHandler(teamService),
		Chat:           handlers.NewChatHandler(chatService),
		Announcements:  handlers.NewAnnouncementsHandler(announcementService),
		CalendarEvents: handlers.NewCalendarEventsHandler(calendarService),
		Settings:       handlers.NewSettingsHandler(authService),
		Explore:        handlers.NewExploreHandler(exploreService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
