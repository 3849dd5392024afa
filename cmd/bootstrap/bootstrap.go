package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-dental-estimator/config"
	deliveryHttp "go-dental-estimator/internal/delivery/http"
	"go-dental-estimator/internal/delivery/http/handler"
	"go-dental-estimator/internal/delivery/http/middleware"
	"go-dental-estimator/internal/engine"
	"go-dental-estimator/internal/infrastructure/cache"
	"go-dental-estimator/internal/infrastructure/database"
	"go-dental-estimator/internal/repository"
	"go-dental-estimator/internal/service"
	"go-dental-estimator/internal/usecase"
	"go-dental-estimator/pkg/jwt"
	"go-dental-estimator/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	SyncService *service.CatalogSyncService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	log := logrus.StandardLogger()

	// Migrate and seed the catalog tables
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := database.SeedDefaultCatalog(db, log); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize repositories and services
	catalogRepo := repository.NewCatalogRepository(db)
	syncService := service.NewCatalogSyncService(redisClient, log)
	app.SyncService = syncService

	// Load the catalog snapshot; the service cannot estimate without one
	catalogUsecase := usecase.NewCatalogUsecase(log, catalogRepo, syncService, cfg.Engine.StrictCompatibility)
	if err := catalogUsecase.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	syncService.StartPeriodicSync(cfg.Engine.CatalogSyncInterval, catalogUsecase.Snapshot)

	// Initialize the server with all layers wired
	server := initializeServer(cfg, log, catalogUsecase)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, catalogUsecase usecase.CatalogUsecase) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Auth)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize engine
	estimationEngine := engine.New(engine.Config{RoundUp: cfg.Engine.RoundUp})

	// Initialize usecases
	estimateUsecase := usecase.NewEstimateUsecase(log, catalogUsecase, estimationEngine)
	authUsecase := usecase.NewAuthUsecase(log, jwtService, cfg.Auth)

	// Initialize handlers
	estimateHandler := handler.NewEstimateHandler(estimateUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)

	// Initialize middleware
	adminAuthMiddleware := middleware.NewAdminAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(estimateHandler, catalogHandler, authHandler, adminAuthMiddleware, corsMiddleware, requestIDMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop the periodic catalog sync
	if app.SyncService != nil {
		app.SyncService.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
