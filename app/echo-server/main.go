package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tenantpulse/app/echo-server/router"
	"tenantpulse/business/activity"
	"tenantpulse/business/auth"
	"tenantpulse/business/retention"
	"tenantpulse/business/scoring"
	"tenantpulse/domain"
	"tenantpulse/internal/middleware"
	"tenantpulse/internal/repository/notification"
	psqlRepo "tenantpulse/internal/repository/postgres"
	redisRepo "tenantpulse/internal/repository/redis"
	"tenantpulse/internal/rest"
	"tenantpulse/pkg/config"
	"tenantpulse/pkg/database"
	"tenantpulse/pkg/logger"
	"tenantpulse/pkg/metrics"
	"tenantpulse/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting TenantPulse", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	if err := db.AutoMigrate(
		&domain.Tenant{},
		&domain.User{},
		&domain.ActivityEvent{},
		&domain.ChurnPrediction{},
		&domain.LeadScore{},
		&domain.ScoringConfig{},
	); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	redisClient, err := database.InitRedis(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}

	logger.Info("Redis connected successfully")

	// Init mailer for retention alerts
	mailer := notification.NewMailerRepository(
		notification.MailerConfig{
			MailerBaseURL:           cfg.Alert.MailerBaseURL,
			MailerBasicAuthUsername: cfg.Alert.MailerBasicAuthUsername,
			MailerBasicAuthPassword: cfg.Alert.MailerBasicAuthPassword,
			MailerSenderEmail:       cfg.Alert.MailerSenderEmail,
			MailerSenderName:        cfg.Alert.MailerSenderName,
		},
	)

	// Init repo
	tenantRepo := psqlRepo.NewTenantRepository(db)
	userRepo := psqlRepo.NewUserRepository(db)
	activityRepo := psqlRepo.NewActivityRepository(db)
	predictionRepo := psqlRepo.NewChurnPredictionRepository(db)
	leadScoreRepo := psqlRepo.NewLeadScoreRepository(db)
	configRepo := psqlRepo.NewScoringConfigRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	featureStore := scoring.NewFeatureStore(activityRepo)
	retentionService := retention.NewService(mailer, cfg.Alert.RetentionTeamEmail, cfg.Alert.RetentionTeamName)
	churnService := scoring.NewChurnService(tenantRepo, predictionRepo, configRepo, featureStore, retentionService)
	leadService := scoring.NewLeadService(userRepo, leadScoreRepo, configRepo, featureStore)
	configService := scoring.NewConfigService(configRepo)
	activityService := activity.NewService(activityRepo, userRepo)
	authService := auth.NewService(userRepo, sessionRepo)

	// Init handler
	predictionHandler := rest.NewPredictionHandler(churnService)
	leadHandler := rest.NewLeadHandler(leadService)
	eventHandler := rest.NewEventHandler(activityService)
	scoringAdminHandler := rest.NewScoringAdminHandler(configService)
	authHandler := rest.NewAuthHandler(authService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithSession(authService)
	adminOnly := middleware.RequireRole("admin")

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAuthRoutes(api, authHandler, authRequired)
	router.SetupPredictionRoutes(api, predictionHandler, authRequired)
	router.SetupLeadRoutes(api, leadHandler, authRequired)
	router.SetupEventRoutes(api, eventHandler, authRequired)
	router.SetupScoringAdminRoutes(api, scoringAdminHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	logger.Info("Server stopped")
}
