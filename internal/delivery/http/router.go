package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"techfest/internal/delivery/http/controllers"
	"techfest/internal/delivery/http/middleware"
	"techfest/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes. Admin
// routes are wrapped with bearer-token auth; catalog reads and registration
// submission are public.
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	sponsorController *controllers.SponsorController,
	registrationController *controllers.RegistrationController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Public catalog
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("GET /sponsors", sponsorController.ListSponsors)

	// Public registration
	mux.HandleFunc("POST /events/{eventID}/registrations", registrationController.Submit)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Admin: event mutations
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PATCH /events/{eventID}", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.DeleteEvent))
	mux.HandleFunc("POST /events/{eventID}/images", requireAuth(eventController.AttachImage))

	// Admin: sponsor mutations
	mux.HandleFunc("POST /sponsors", requireAuth(sponsorController.CreateSponsor))
	mux.HandleFunc("PATCH /sponsors/{sponsorID}", requireAuth(sponsorController.UpdateSponsor))
	mux.HandleFunc("DELETE /sponsors/{sponsorID}", requireAuth(sponsorController.DeleteSponsor))

	// Admin: registration dashboard
	mux.HandleFunc("GET /registrations", requireAuth(registrationController.List))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
