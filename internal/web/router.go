package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/puppybowl-roster/internal/roster"
	"github.com/mcoot/puppybowl-roster/internal/web/handler"
	"github.com/mcoot/puppybowl-roster/internal/web/middleware"
	"github.com/mcoot/puppybowl-roster/internal/web/sse"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/components"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *roster.Controller
	Hub        *sse.Hub              // optional; nil disables /events pushes
	Containers components.Containers // zero value means DefaultContainers
	StaticDir  string                // empty disables /static/
}

// NewRouter creates the web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	containers := cfg.Containers
	if containers == (components.Containers{}) {
		containers = components.DefaultContainers()
	}

	rosterHandler := handler.NewRosterHandler(cfg.Controller, containers, cfg.Hub, cfg.Logger)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/health", rosterHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/events", rosterHandler.Events).Methods(http.MethodGet)

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.HandleFunc("/", rosterHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/players", rosterHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/players/{id}", rosterHandler.Details).Methods(http.MethodGet)
	pages.HandleFunc("/players/{id}/delete", rosterHandler.Remove).Methods(http.MethodPost)
	pages.HandleFunc("/details/close", rosterHandler.CloseDetails).Methods(http.MethodGet)

	return r
}
