package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-planner/internal/api/http/handlers"
	"github.com/spec-kit/travel-planner/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Trips          *handlers.TripsHandler
	Teams          *handlers.TeamsHandler
	Chat           *handlers.ChatHandler
	Announcements  *handlers.AnnouncementsHandler
	CalendarEvents *handlers.CalendarEventsHandler
	Settings       *handlers.SettingsHandler
	Explore        *handlers.ExploreHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	explore := api.Group("/explore")
	explore.Get("/trips", cfg.Explore.ListPublicTrips)
	explore.Get("/trips/:id", cfg.Explore.GetPublicTrip)

	announcements := api.Group("/announcements")
	announcements.Get("/", cfg.Announcements.List)
	announcements.Get("/:id", cfg.Announcements.Get)
	announcements.Post("/", cfg.AuthMiddleware.Handle, cfg.Announcements.Create)
	announcements.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Announcements.Update)
	announcements.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Announcements.Delete)

	// The unauthenticated public listing must be registered before the
	// parameterized trip routes so "public" is not captured as an :id.
	api.Get("/trips/public", cfg.Explore.ListPublicTrips)

	trips := api.Group("/trips", cfg.AuthMiddleware.Handle)
	trips.Post("/", cfg.Trips.CreateTrip)
	trips.Get("/", cfg.Trips.ListTrips)
	trips.Get("/:id", cfg.Trips.GetTrip)
	trips.Put("/:id", cfg.Trips.UpdateTrip)
	trips.Delete("/:id", cfg.Trips.DeleteTrip)

	teams := api.Group("/teams", cfg.AuthMiddleware.Handle)
	teams.Post("/", cfg.Teams.CreateTeam)
	teams.Get("/", cfg.Teams.ListTeams)
	teams.Get("/:teamId", cfg.Teams.GetTeam)
	teams.Put("/:teamId", cfg.Teams.UpdateTeam)
	teams.Delete("/:teamId", cfg.Teams.DeleteTeam)
	teams.Post("/:teamId/members", cfg.Teams.AddMember)
	teams.Delete("/:teamId/members/:memberId", cfg.Teams.RemoveMember)

	chat := api.Group("/chat", cfg.AuthMiddleware.Handle)
	chat.Post("/send/:receiverId", cfg.Chat.SendMessage)
	chat.Get("/conversations", cfg.Chat.ListConversations)
	chat.Get("/conversation/:otherUserId", cfg.Chat.GetConversation)
	chat.Put("/read/:chatPartnerId", cfg.Chat.MarkRead)

	events := api.Group("/calendar-events", cfg.AuthMiddleware.Handle)
	events.Post("/", cfg.CalendarEvents.Create)
	events.Get("/", cfg.CalendarEvents.List)
	events.Get("/:id", cfg.CalendarEvents.Get)
	events.Put("/:id", cfg.CalendarEvents.Update)
	events.Delete("/:id", cfg.CalendarEvents.Delete)

	settings := api.Group("/settings", cfg.AuthMiddleware.Handle)
	settings.Get("/profile", cfg.Settings.GetProfile)
	settings.Put("/profile", cfg.Settings.UpdateProfile)
	settings.Put("/password", cfg.Settings.ChangePassword)
}
