package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/streamhive/streamhive-api/internal/facades"
	"github.com/streamhive/streamhive-api/internal/handlers"
	"github.com/streamhive/streamhive-api/internal/jwt"
	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/middlewares"
	"github.com/streamhive/streamhive-api/internal/repositories"
	"github.com/streamhive/streamhive-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// config carries everything parsed from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string
	statsCacheTTL int

	kafkaBrokers string
	kafkaTopic   string

	mediaBaseURL string
	mediaAPIKey  string

	jwtAccessSecret  string
	jwtRefreshSecret string
	jwtAccessExpSec  int
	jwtRefreshExpSec int
}

// @title streamhive API
// @version 1.0.0
// @description REST backend for a video sharing platform: videos, comments, likes, subscriptions, playlists and tweets
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "streamhive")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.statsCacheTTL, err = strconv.Atoi(getEnv("STATS_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; empty brokers disable view-event publishing
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_VIEW_TOPIC", "video-views")

	// Media host config
	cfg.mediaBaseURL = getEnv("MEDIA_BASE_URL", "http://localhost:9000")
	cfg.mediaAPIKey = getEnv("MEDIA_API_KEY", "")

	// JWT config
	cfg.jwtAccessSecret = getEnv("JWT_ACCESS_SECRET", "my_super_secret_key")
	cfg.jwtRefreshSecret = getEnv("JWT_REFRESH_SECRET", "my_other_secret_key")
	if cfg.jwtAccessExpSec, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_SECOND", "900")); err != nil {
		return
	}
	if cfg.jwtRefreshExpSec, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "864000")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server. It sets
// up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for view events; nil disables publishing
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBrokers),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// JWT service
	tokens := jwt.New(cfg.jwtAccessSecret, cfg.jwtRefreshSecret,
		time.Duration(cfg.jwtAccessExpSec)*time.Second,
		time.Duration(cfg.jwtRefreshExpSec)*time.Second)

	// Media host facade
	mediaStorage := facades.NewMediaStorageHTTPFacade(cfg.mediaBaseURL, cfg.mediaAPIKey, nil)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	videoReadRepo := repositories.NewVideoReadRepository(db)
	videoWriteRepo := repositories.NewVideoWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)
	likeReadRepo := repositories.NewLikeReadRepository(db)
	likeWriteRepo := repositories.NewLikeWriteRepository(db)
	subscriptionReadRepo := repositories.NewSubscriptionReadRepository(db)
	subscriptionWriteRepo := repositories.NewSubscriptionWriteRepository(db)
	playlistReadRepo := repositories.NewPlaylistReadRepository(db)
	playlistWriteRepo := repositories.NewPlaylistWriteRepository(db)
	tweetReadRepo := repositories.NewTweetReadRepository(db)
	tweetWriteRepo := repositories.NewTweetWriteRepository(db)
	dashboardReadRepo := repositories.NewDashboardReadRepository(db)
	statsCacheRepo := repositories.NewStatsCacheRepository(rdb, time.Duration(cfg.statsCacheTTL)*time.Second)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, mediaStorage, tokens)
	userService := services.NewUserService(userReadRepo, userWriteRepo, mediaStorage)
	videoService := services.NewVideoService(videoReadRepo, videoWriteRepo, userWriteRepo, mediaStorage, kafkaWriter)
	commentService := services.NewCommentService(commentReadRepo, commentWriteRepo, videoReadRepo)
	likeService := services.NewLikeService(likeReadRepo, likeWriteRepo, videoReadRepo, commentReadRepo, tweetReadRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionReadRepo, subscriptionWriteRepo, userReadRepo)
	playlistService := services.NewPlaylistService(playlistReadRepo, playlistWriteRepo, videoReadRepo)
	tweetService := services.NewTweetService(tweetReadRepo, tweetWriteRepo)
	dashboardService := services.NewDashboardService(dashboardReadRepo, statsCacheRepo, videoReadRepo)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware())

	requireAuth := middlewares.AuthMiddleware(tokens)
	optionalAuth := middlewares.OptionalAuthMiddleware(tokens)

	r.Get("/healthcheck", handlers.NewHealthcheckHandler(db))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users/register", handlers.NewRegisterHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))
		r.Post("/users/refresh-token", handlers.NewRefreshTokenHandler(authService))

		// Optional-auth routes: anonymous callers get membership flags as false
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/videos", handlers.NewListVideosHandler(videoService))
			r.Get("/videos/{videoId}", handlers.NewGetVideoHandler(videoService))
			r.Get("/users/channel-details/{username}", handlers.NewChannelDetailsHandler(userService))
			r.Get("/comments/{videoId}", handlers.NewListCommentsHandler(commentService))
			r.Get("/playlists/user/{userId}", handlers.NewListPlaylistsHandler(playlistService))
			r.Get("/playlists/{playlistId}", handlers.NewGetPlaylistHandler(playlistService))
			r.Get("/tweets/user/{userId}", handlers.NewListTweetsHandler(tweetService))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/users/logout", handlers.NewLogoutHandler(authService))
			r.Post("/users/change-password", handlers.NewChangePasswordHandler(authService))
			r.Get("/users/current-user", handlers.NewCurrentUserHandler(userService))
			r.Get("/users/watch-history", handlers.NewWatchHistoryHandler(userService))
			r.Patch("/users/update-account", handlers.NewUpdateAccountHandler(userService))
			r.Patch("/users/avatar", handlers.NewUpdateAvatarHandler(userService))
			r.Patch("/users/cover-image", handlers.NewUpdateCoverImageHandler(userService))

			r.Post("/videos", handlers.NewUploadVideoHandler(videoService))
			r.Patch("/videos/{videoId}", handlers.NewUpdateVideoHandler(videoService))
			r.Delete("/videos/{videoId}", handlers.NewDeleteVideoHandler(videoService))
			r.Patch("/videos/{videoId}/toggle/publish", handlers.NewTogglePublishHandler(videoService))

			r.Post("/comments/{videoId}", handlers.NewAddCommentHandler(commentService))
			r.Patch("/comments/{commentId}", handlers.NewUpdateCommentHandler(commentService))
			r.Delete("/comments/{commentId}", handlers.NewDeleteCommentHandler(commentService))

			r.Post("/likes/video/{videoId}", handlers.NewToggleVideoLikeHandler(likeService))
			r.Post("/likes/comment/{commentId}", handlers.NewToggleCommentLikeHandler(likeService))
			r.Post("/likes/tweet/{tweetId}", handlers.NewToggleTweetLikeHandler(likeService))
			r.Get("/likes/videos", handlers.NewLikedVideosHandler(likeService))

			r.Post("/subscriptions", handlers.NewToggleSubscriptionHandler(subscriptionService))

			r.Post("/playlists", handlers.NewCreatePlaylistHandler(playlistService))
			r.Patch("/playlists/{playlistId}", handlers.NewUpdatePlaylistHandler(playlistService))
			r.Delete("/playlists/{playlistId}", handlers.NewDeletePlaylistHandler(playlistService))
			r.Patch("/playlists/{playlistId}/videos/{videoId}", handlers.NewAddPlaylistVideoHandler(playlistService))
			r.Delete("/playlists/{playlistId}/videos/{videoId}", handlers.NewRemovePlaylistVideoHandler(playlistService))

			r.Post("/tweets", handlers.NewCreateTweetHandler(tweetService))
			r.Patch("/tweets/{tweetId}", handlers.NewUpdateTweetHandler(tweetService))
			r.Delete("/tweets/{tweetId}", handlers.NewDeleteTweetHandler(tweetService))

			r.Get("/dashboard/stats", handlers.NewChannelStatsHandler(dashboardService))
			r.Get("/dashboard/videos", handlers.NewChannelVideosHandler(dashboardService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
