package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/micropost/micropost/internal/api/handler"
	"github.com/micropost/micropost/internal/api/middleware"
	"github.com/micropost/micropost/internal/core/service"
	"github.com/micropost/micropost/internal/infrastructure/config"
	mongoarchive "github.com/micropost/micropost/internal/infrastructure/db/mongo"
	redisstore "github.com/micropost/micropost/internal/infrastructure/db/redis"
	"github.com/micropost/micropost/internal/infrastructure/fanout"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("micropost"))
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Stores (all Redis-backed except the Mongo post archive) ---
	counter := redisstore.NewCounterService(rdb)
	users := redisstore.NewUserRepository(rdb)
	graph := redisstore.NewGraphRepository(rdb)
	posts := redisstore.NewPostRepository(rdb)
	timelines := redisstore.NewTimelineRepository(rdb)
	archive := mongoarchive.NewArchiveRepository(db)

	// --- Services ---
	deliverer := fanout.New(cfg.FanoutWorkers, timelines, log)
	authService := service.NewAuthService(users, counter, cfg.JWTSecret, 24*time.Hour, log)
	postService := service.NewPostService(counter, posts, graph, timelines, deliverer, archive, log)
	feedService := service.NewFeedService(timelines, posts, cfg.FeedWindow, log)
	socialService := service.NewSocialService(graph, users, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	feedHandler := handler.NewFeedHandler(feedService, socialService)
	followHandler := handler.NewFollowHandler(socialService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))
	v1.GET("/feed", feedHandler.Get)
	v1.POST("/posts", postHandler.Publish)
	v1.POST("/follow", followHandler.Follow)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
