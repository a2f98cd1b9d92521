package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"techfest/config"
	_ "techfest/docs"
	"techfest/internal/adapters/auth"
	"techfest/internal/adapters/email"
	"techfest/internal/adapters/storage"
	"techfest/internal/cache"
	"techfest/internal/catalog"
	httpdelivery "techfest/internal/delivery/http"
	"techfest/internal/delivery/http/controllers"
	"techfest/internal/delivery/http/middleware"
	"techfest/internal/repository/postgres"
	"techfest/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Techfest API
// @version 1.0
// @description Backend for the college technical festival: event and sponsor catalogs, registrations, and the admin dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	objects := storage.NewSupabaseStore(cfg.StorageURL, cfg.StorageKey)

	eventsStore := catalog.New(objects, cache.NewMemory(),
		cfg.RegistrationsBucket, catalog.EventsObject, catalog.EventsCacheKey,
		catalog.DefaultEvents(), logger)
	sponsorsStore := catalog.New(objects, cache.NewMemory(),
		cfg.RegistrationsBucket, catalog.SponsorsObject, catalog.SponsorsCacheKey,
		catalog.DefaultSponsors(), logger)

	regRepo := postgres.NewRegistrationRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	jwtProvider := auth.NewJWTProvider(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(auth.DefaultBcryptCost)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to configure mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	outbox := services.NewOutbox(logger)

	eventService := services.NewEventService(eventsStore, regRepo, objects,
		cfg.EventImagesBucket, cfg.RegistrationsBucket, logger, serviceTimeout)
	sponsorService := services.NewSponsorService(sponsorsStore, serviceTimeout)
	registrationService := services.NewRegistrationService(eventService, regRepo, objects,
		cfg.RegistrationsBucket, emailService, outbox, logger, serviceTimeout)
	adminService := services.NewAdminService(adminRepo, hasher, jwtProvider, cfg.TokenExpiry, serviceTimeout)

	mux := httpdelivery.NewRouter(
		controllers.NewAuthController(logger, adminService),
		controllers.NewEventController(logger, eventService),
		controllers.NewSponsorController(logger, sponsorService),
		controllers.NewRegistrationController(logger, registrationService),
		jwtProvider,
		logger,
	)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go outbox.Run(ctx)

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
