package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mcoot/puppybowl-roster/internal/api"
	"github.com/mcoot/puppybowl-roster/internal/factory"
	redisstorage "github.com/mcoot/puppybowl-roster/internal/storage/redis"
)

const defaultCohort = "2302-ACC-PT-WEB-PT-B"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := factory.PlayersAPIConfig{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	players, err := factory.NewPlayersAPI(cfg)
	if err != nil {
		logger.Error("failed to create players api", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = players.Close() }()

	var origins []string
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	serverConfig := api.ServerConfigFromEnv(8081)
	server := api.NewServer(players.Router(origins), serverConfig, logger)

	cohort := os.Getenv("ROSTER_COHORT")
	if cohort == "" {
		cohort = defaultCohort
	}
	logger.Info("players api ready",
		slog.String("storage", storageName(cfg.StorageType)),
		slog.String("players_url", "http://localhost"+server.Addr()+"/api/"+cohort+"/players"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func storageName(t string) string {
	if t == "" {
		return factory.StorageTypeMemory
	}
	return t
}
