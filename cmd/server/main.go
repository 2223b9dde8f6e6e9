package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/puppybowl-roster/internal/api"
	"github.com/mcoot/puppybowl-roster/internal/factory"
	"github.com/mcoot/puppybowl-roster/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		APIBaseURL: os.Getenv("ROSTER_API_URL"),
		Logger:     logger,
	}

	app := factory.New(cfg)
	defer app.Close()

	logger.Info("using players api", slog.String("url", app.Client.BaseURL()))

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
		Hub:        app.Hub,
		StaticDir:  findStaticDir(),
	})

	server := api.NewServer(webRouter, api.ServerConfigFromEnv(8080), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return "internal/web/static"
}
