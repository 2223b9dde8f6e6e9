package factory

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/puppybowl-roster/internal/api"
	"github.com/mcoot/puppybowl-roster/internal/dependencies/clock"
	"github.com/mcoot/puppybowl-roster/internal/roster"
	"github.com/mcoot/puppybowl-roster/internal/rosterapi"
	"github.com/mcoot/puppybowl-roster/internal/storage"
	"github.com/mcoot/puppybowl-roster/internal/storage/memory"
	redisstorage "github.com/mcoot/puppybowl-roster/internal/storage/redis"
	"github.com/mcoot/puppybowl-roster/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains the wired components of the roster web UI
type App struct {
	Client     *rosterapi.Client
	Controller *roster.Controller
	Hub        *sse.Hub
}

// Config holds configuration for the roster web UI
type Config struct {
	// APIBaseURL is the players collection the UI talks to.
	// If empty, defaults to rosterapi.DefaultBaseURL
	APIBaseURL string
	// HTTPTimeout bounds each Players API call.
	// If zero, defaults to rosterapi.DefaultTimeout
	HTTPTimeout time.Duration
	// HTTPClient replaces the Players API client's transport (optional)
	HTTPClient *http.Client
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates the roster web UI with all dependencies wired. The SSE hub is
// running when New returns; Close stops it.
func New(cfg Config) *App {
	logger := orNop(cfg.Logger)
	return newWithDependencies(NewClient(cfg, logger), logger)
}

// NewClient builds the Players API client described by cfg
func NewClient(cfg Config, logger *slog.Logger) *rosterapi.Client {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = rosterapi.DefaultBaseURL
	}

	opts := []rosterapi.Option{rosterapi.WithLogger(orNop(logger))}
	if cfg.HTTPClient != nil {
		opts = append(opts, rosterapi.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, rosterapi.WithTimeout(cfg.HTTPTimeout))
	}
	return rosterapi.NewClient(baseURL, opts...)
}

// newWithDependencies creates an App over the given Players API (useful for testing)
func newWithDependencies(client roster.API, logger *slog.Logger) *App {
	hub := sse.NewHub(logger)
	go hub.Run()

	app := &App{
		Controller: roster.NewController(client, logger),
		Hub:        hub,
	}
	if c, ok := client.(*rosterapi.Client); ok {
		app.Client = c
	}
	return app
}

// Close stops the SSE hub
func (a *App) Close() {
	a.Hub.Close()
}

// PlayersAPI contains the wired components of the local Players API
type PlayersAPI struct {
	Storage storage.Storage
	Clock   clock.Clock

	logger *slog.Logger
}

// PlayersAPIConfig holds configuration for the local Players API
type PlayersAPIConfig struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// NewPlayersAPI creates the local Players API with its storage backend
func NewPlayersAPI(cfg PlayersAPIConfig) (*PlayersAPI, error) {
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return &PlayersAPI{
		Storage: store,
		Clock:   clock.New(),
		logger:  orNop(cfg.Logger),
	}, nil
}

// Router returns the HTTP handler serving the Players API. Browser clients
// from allowedOrigins may call it cross-origin.
func (p *PlayersAPI) Router(allowedOrigins []string) http.Handler {
	return api.NewRouter(api.RouterConfig{
		Logger:         p.logger,
		Storage:        p.Storage,
		Clock:          p.Clock,
		AllowedOrigins: allowedOrigins,
	})
}

// Close releases the storage backend
func (p *PlayersAPI) Close() error {
	if closer, ok := p.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func orNop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return logger
}
