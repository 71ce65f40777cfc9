package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"guildboard/internal/config"
	"guildboard/internal/database"
	"guildboard/internal/discord"
	"guildboard/internal/feature"
	"guildboard/internal/platform/logging"
	"guildboard/internal/redis"
	"guildboard/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *gorm.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	return db
}

func setupRedis(cfg *config.Config) *goredis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *server.Server, cleanups ...func()) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		for _, cleanup := range cleanups {
			cleanup()
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	db := setupDB(cfg)

	redisClient := setupRedis(cfg)
	defer func() { _ = redisClient.Close() }()

	// Guild directory with freshness-window caching in front of the live client
	directory := discord.NewCachedClient(
		discord.NewClient(cfg.DiscordBotToken),
		discord.DefaultWindows(),
		clock,
	)
	stopEviction := directory.StartEvictionTimer(1 * time.Minute)

	featureRepo := database.NewFeatureRepo(db)
	viewCache := redis.NewViewCache(redisClient)
	featureSvc := feature.NewService(featureRepo, viewCache)

	checkDB := func(ctx context.Context) error { return database.HealthCheck(ctx, db) }
	srv, err := server.NewServer(cfg, featureSvc, directory, viewCache, checkDB, redisClient)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv, stopEviction)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
