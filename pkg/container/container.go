package container

import (
	"context"
	"fmt"
	"time"

	"bookshelf-api/internal/config"
	infraCache "bookshelf-api/internal/infrastructure/cache"
	"bookshelf-api/internal/infrastructure/database"
	"bookshelf-api/pkg/cache"
	"bookshelf-api/pkg/jwt"
	"bookshelf-api/pkg/logger"

	bookHandler "bookshelf-api/internal/domains/book/handler"
	bookRepo "bookshelf-api/internal/domains/book/repository"
	bookService "bookshelf-api/internal/domains/book/service"
	userHandler "bookshelf-api/internal/domains/user/handler"
	userRepo "bookshelf-api/internal/domains/user/repository"
	userService "bookshelf-api/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton shared for the lifetime of the process.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	BookRepo bookRepo.Repository
	UserRepo userRepo.Repository

	BookService bookService.ServiceInterface
	UserService userService.ServiceInterface

	BookHandler *bookHandler.Handler
	UserHandler *userHandler.Handler
}

// NewContainer builds the dependency graph in order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// A cache outage is not fatal: repositories fall back to the database.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			logger.Error("Redis connection failed, running without cache", err)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.UserHandler = userHandler.NewHandler(c.UserService)
}

// Cleanup releases external resources. Called during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("Database connections closed", nil)
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("Failed to close Redis client", err)
		} else {
			logger.Info("Redis connections closed", nil)
		}
	}
}
