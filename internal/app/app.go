package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"homevest_backend/internal/auth"
	"homevest_backend/internal/config"
	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/email"
	"homevest_backend/internal/handlers"
	"homevest_backend/internal/logger"
	"homevest_backend/internal/middleware"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/internal/routes"
	"homevest_backend/internal/services"
	"homevest_backend/internal/storage"
)

// Deps is everything SetupRouter needs. Tests build it with a nil database
// and a mock mailer; Run builds it from config.
type Deps struct {
	DB     *gorm.DB
	Health *database.HealthChecker
	Store  *demo.Store
	Hasher auth.Hasher
	Mailer email.Sender
	Files  storage.Storage
}

// SetupRouter wires repositories, services, handlers, and routes into a gin
// engine. It returns the auth service as well so the caller can run the
// session cleanup loop against the same wiring.
func SetupRouter(cfg *config.Config, deps Deps) (*gin.Engine, services.AuthService) {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	investorRepo := repositories.NewInvestorRepository(deps.DB, deps.Health, deps.Store)
	institutionalRepo := repositories.NewInstitutionalRepository(deps.DB, deps.Health, deps.Store)
	partnerRepo := repositories.NewPartnerRepository(deps.DB, deps.Health, deps.Store)
	adminRepo := repositories.NewAdminRepository(deps.DB, deps.Health, deps.Store)
	sessionRepo := repositories.NewSessionRepository(deps.DB, deps.Health, deps.Store)
	resetRepo := repositories.NewPasswordResetRepository(deps.DB, deps.Health, deps.Store)
	propertyRepo := repositories.NewPropertyRepository(deps.DB, deps.Health, deps.Store)
	foreclosureRepo := repositories.NewForeclosureRepository(deps.DB, deps.Health, deps.Store)
	blogRepo := repositories.NewBlogRepository(deps.DB, deps.Health, deps.Store)
	campaignRepo := repositories.NewCampaignRepository(deps.DB, deps.Health, deps.Store)
	offerRepo := repositories.NewOfferRepository(deps.DB, deps.Health, deps.Store)
	leadRepo := repositories.NewLeadRepository(deps.DB, deps.Health, deps.Store)

	authService := services.NewAuthService(
		investorRepo, institutionalRepo, partnerRepo, adminRepo,
		sessionRepo, resetRepo, deps.Hasher, deps.Mailer,
	)
	accountService := services.NewAccountService(
		investorRepo, institutionalRepo, partnerRepo, adminRepo,
		deps.Hasher, deps.Mailer,
	)
	propertyService := services.NewPropertyService(propertyRepo)
	foreclosureService := services.NewForeclosureService(foreclosureRepo)
	blogService := services.NewBlogService(blogRepo)
	campaignService := services.NewCampaignService(
		campaignRepo, investorRepo, institutionalRepo, partnerRepo, deps.Mailer,
	)
	offerService := services.NewOfferService(offerRepo, propertyRepo)
	leadService := services.NewLeadService(leadRepo, propertyRepo)
	importService := services.NewImportService(propertyRepo)

	authMW := middleware.NewAuthMiddleware(sessionRepo, investorRepo, institutionalRepo, adminRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.Setup(router, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Account:     handlers.NewAccountHandler(accountService),
		Property:    handlers.NewPropertyHandler(propertyService, importService),
		Foreclosure: handlers.NewForeclosureHandler(foreclosureService),
		Blog:        handlers.NewBlogHandler(blogService, deps.Files),
		Campaign:    handlers.NewCampaignHandler(campaignService),
		Offer:       handlers.NewOfferHandler(offerService),
		Lead:        handlers.NewLeadHandler(leadService),
	}, authMW, deps.Health, cfg.Storage.BasePath)

	return router, authService
}

// Run boots the whole application and blocks until shutdown.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		// A configured but unreachable database is not fatal: the health
		// checker keeps probing and requests fall back to demo data.
		logger.Warn("database connection failed, starting in degraded mode", "error", err.Error())
		db = nil
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	health := database.NewHealthChecker(db, time.Duration(cfg.Database.HealthTimeoutMS)*time.Millisecond)
	store := demo.NewStore()
	hasher := auth.NewHasher(cfg.Database.DSN)

	var mailer email.Sender
	if cfg.Email.SMTPHost != "" {
		mailer = email.NewSMTPSender(cfg.Email)
	} else {
		logger.Warn("no SMTP host configured, outbound email is recorded only")
		mailer = email.NewMockSender()
	}

	deps := Deps{
		DB:     db,
		Health: health,
		Store:  store,
		Hasher: hasher,
		Mailer: mailer,
		Files:  storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL),
	}
	router, authService := SetupRouter(cfg, deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedFirstAdmin(ctx, cfg, health, store, hasher); err != nil {
		return err
	}
	go sessionCleanupLoop(ctx, authService)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// seedFirstAdmin creates the initial back-office account when the admin
// table is empty and credentials are configured. The demo store seeds its
// own admin, so this only matters for live databases.
func seedFirstAdmin(ctx context.Context, cfg *config.Config, health *database.HealthChecker, store *demo.Store, hasher auth.Hasher) error {
	if cfg.FirstAdminUsername == "" || cfg.FirstAdminPassword == "" {
		return nil
	}
	adminRepo := repositories.NewAdminRepository(health.DB(), health, store)

	n, err := adminRepo.Count(ctx)
	if err != nil {
		logger.Warn("could not check admin table, skipping first-admin seed", "error", err.Error())
		return nil
	}
	if n > 0 {
		return nil
	}

	hash, err := hasher.Hash(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("hash first admin password: %w", err)
	}
	if _, err := adminRepo.Create(ctx, &models.AdminUser{
		Username:     cfg.FirstAdminUsername,
		PasswordHash: hash,
		IsActive:     true,
	}); err != nil {
		return fmt.Errorf("seed first admin: %w", err)
	}
	logger.Info("first admin account created", "username", cfg.FirstAdminUsername)
	return nil
}

// sessionCleanupLoop prunes expired sessions once an hour until shutdown.
func sessionCleanupLoop(ctx context.Context, authService services.AuthService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := authService.CleanupExpiredSessions(ctx); err != nil {
				logger.Error("session cleanup failed", "error", err.Error())
			}
		}
	}
}
