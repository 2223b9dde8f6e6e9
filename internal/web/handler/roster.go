package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/roster"
	"github.com/mcoot/puppybowl-roster/internal/web/middleware"
	"github.com/mcoot/puppybowl-roster/internal/web/sse"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/components"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/layout"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/pages"
)

// RosterHandler serves the roster page and the HTMX fragments behind it.
// HTMX requests get the affected container back; plain form posts are
// redirected to the page.
type RosterHandler struct {
	controller  *roster.Controller
	containers  components.Containers
	hub         *sse.Hub
	broadcaster *sse.Broadcaster
	logger      *slog.Logger
}

// NewRosterHandler creates a new RosterHandler. hub may be nil, in which
// case nothing is pushed to other pages.
func NewRosterHandler(controller *roster.Controller, containers components.Containers, hub *sse.Hub, logger *slog.Logger) *RosterHandler {
	h := &RosterHandler{
		controller: controller,
		containers: containers,
		hub:        hub,
		logger:     logger.With(slog.String("component", "roster-handler")),
	}
	if hub != nil {
		h.broadcaster = sse.NewBroadcaster(hub, containers, logger)
	}
	return h
}

// Home renders the full page. ?details={id} opens the details panel.
func (h *RosterHandler) Home(w http.ResponseWriter, r *http.Request) {
	players := h.controller.Load(r.Context())

	var details *model.Player
	if id := strings.TrimSpace(r.URL.Query().Get("details")); id != "" {
		details, _ = h.controller.Details(r.Context(), model.PlayerID(id))
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Roster",
			Flash: middleware.GetFlash(r.Context()),
		},
		Containers: h.containers,
		Players:    players,
		Details:    details,
	}
	h.render(w, r, pages.Home(data))
}

// Details handles GET /players/{id}. A failed fetch leaves the panel closed.
func (h *RosterHandler) Details(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !isHTMX(r) {
		http.Redirect(w, r, "/?details="+url.QueryEscape(id), http.StatusSeeOther)
		return
	}

	player, _ := h.controller.Details(r.Context(), model.PlayerID(id))
	h.render(w, r, components.PlayerDetails(h.containers, player))
}

// CloseDetails handles GET /details/close. It only changes what is shown,
// so the Players API is never called.
func (h *RosterHandler) CloseDetails(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, components.PlayerDetails(h.containers, nil))
}

// Create handles POST /players: create, refresh, then re-render the roster
// and reset the form
func (h *RosterHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("invalid new player form", slog.Any("error", err))
		if isHTMX(r) {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	draft := model.PlayerDraft{
		Name:     strings.TrimSpace(r.PostFormValue(components.FieldName)),
		Position: strings.TrimSpace(r.PostFormValue(components.FieldPosition)),
		ImageURL: strings.TrimSpace(r.PostFormValue(components.FieldImageURL)),
	}

	players, added := h.controller.Add(r.Context(), draft)
	h.broadcaster.BroadcastRoster(r.Context(), players)

	if !isHTMX(r) {
		// A failed create is only logged; the page just shows the roster as it is
		if added {
			middleware.SetFlash(w, "success", "Player added")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r,
		components.Roster(h.containers, players),
		components.NewPlayerForm(h.containers, true),
	)
}

// Remove handles POST /players/{id}/delete
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	players, removed := h.controller.Remove(r.Context(), id)
	h.broadcaster.BroadcastRoster(r.Context(), players)

	if !isHTMX(r) {
		if removed {
			middleware.SetFlash(w, "success", "Player removed")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, components.Roster(h.containers, players))
}

// Events handles GET /events, streaming roster-update events
func (h *RosterHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		http.NotFound(w, r)
		return
	}
	sse.ServeSSE(w, r, h.hub)
}

// Health handles GET /health
func (h *RosterHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// render writes the components in order as one HTML response
func (h *RosterHandler) render(w http.ResponseWriter, r *http.Request, parts ...templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, c := range parts {
		if err := c.Render(r.Context(), w); err != nil {
			h.logger.Error("failed to render", slog.String("path", r.URL.Path), slog.Any("error", err))
			return
		}
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
