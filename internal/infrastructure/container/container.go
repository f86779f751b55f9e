package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spotlight-dating/spotlight-backend/internal/config"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http/handler"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http/middleware"
	"github.com/spotlight-dating/spotlight-backend/internal/infrastructure/database"
	"github.com/spotlight-dating/spotlight-backend/internal/infrastructure/server"
	"github.com/spotlight-dating/spotlight-backend/internal/infrastructure/storage"
	"github.com/spotlight-dating/spotlight-backend/internal/logger"
	"github.com/spotlight-dating/spotlight-backend/internal/repository/postgres"
	redisrepo "github.com/spotlight-dating/spotlight-backend/internal/repository/redis"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/analytics"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/auth"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/profile"
	"github.com/spotlight-dating/spotlight-backend/internal/usecase/spectator"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *sqlx.DB
	Redis  *goredis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.New(&cfg.Logging)

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(migrateCtx, db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis (spectator seen-set storage)
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize image storage
	imageStore, err := storage.NewImageStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	// Sweep stale logins left over from previous runs.
	if removed, err := sessionRepo.DeleteExpired(migrateCtx); err != nil {
		log.Error().Err(err).Msg("failed to clean up expired sessions")
	} else if removed > 0 {
		log.Info().Int("count", removed).Msg("removed expired sessions")
	}
	profileRepo := postgres.NewProfileRepository(db)
	imageRepo := postgres.NewImageRepository(db)
	interactionRepo := postgres.NewInteractionRepository(db)
	seenStore := redisrepo.NewViewerSessionStore(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		imageRepo,
		imageStore,
	)

	analyticsUseCase := analytics.NewAnalyticsUseCase(
		profileRepo,
		interactionRepo,
	)

	spectatorUseCase := spectator.NewSpectatorUseCase(
		profileRepo,
		imageRepo,
		interactionRepo,
		seenStore,
		log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase, analyticsUseCase)
	spectatorHandler := handler.NewSpectatorHandler(spectatorUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		spectatorHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error().Err(err).Msg("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
