package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"github.com/mcoot/puppybowl-roster/internal/api/handler"
	"github.com/mcoot/puppybowl-roster/internal/api/middleware"
	"github.com/mcoot/puppybowl-roster/internal/dependencies/clock"
	"github.com/mcoot/puppybowl-roster/internal/storage"
)

// RouterConfig holds configuration for the Players API router
type RouterConfig struct {
	Logger  *slog.Logger
	Storage storage.Storage
	Clock   clock.Clock
	// AllowedOrigins lists origins allowed to call the API from a browser.
	// If empty, any origin is allowed.
	AllowedOrigins []string
}

// NewRouter creates a new Players API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Storage, clk, cfg.Logger)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no cohort)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Player routes, scoped by cohort like the hosted API
	players := api.PathPrefix("/{cohort}/players").Subrouter()
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
