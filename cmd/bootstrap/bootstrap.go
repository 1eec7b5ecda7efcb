package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-calendar-service/config"
	deliveryHttp "project-calendar-service/internal/delivery/http"
	"project-calendar-service/internal/delivery/http/handler"
	"project-calendar-service/internal/delivery/http/middleware"
	"project-calendar-service/internal/infrastructure/cache"
	"project-calendar-service/internal/infrastructure/database"
	"project-calendar-service/internal/repository"
	"project-calendar-service/internal/service"
	"project-calendar-service/internal/usecase"
	"project-calendar-service/pkg/jwt"
	"project-calendar-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// New loads configuration, connects to PostgreSQL and Redis, and wires the HTTP server.
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.RunMigrations {
		if err := database.RunMigrations(db, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, redisClient, log)

	return app, nil
}

// setupLogger configures the standard logrus logger, falling back to info on an unknown level.
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	return logrus.StandardLogger()
}

func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	tokenStore := cache.NewTokenStore(redisClient)
	customValidator := validator.NewValidator()

	// Repositories
	calendarRepo := repository.NewProjectCalendarRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	calendarQueryUsecase := usecase.NewProjectCalendarQueryUsecase(db, log, calendarRepo)
	calendarUsecase := usecase.NewProjectCalendarUsecase(db, log, calendarRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	calendarHandler := handler.NewProjectCalendarHandler(calendarQueryUsecase, calendarUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins)

	router := deliveryHttp.NewRouter(calendarHandler, auditLogHandler, authMiddleware, corsMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes the database and Redis connections.
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
