package sse

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/components"
)

// Broadcaster pushes freshly rendered roster containers to every open page
type Broadcaster struct {
	hub        *Hub
	containers components.Containers
	logger     *slog.Logger
}

// NewBroadcaster creates a Broadcaster rendering into the given containers
func NewBroadcaster(hub *Hub, containers components.Containers, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:        hub,
		containers: containers,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastRoster sends the whole roster container as a roster-update event
func (b *Broadcaster) BroadcastRoster(ctx context.Context, players []model.Player) {
	if b == nil || b.hub == nil {
		return
	}

	var buf bytes.Buffer
	if err := components.Roster(b.containers, players).Render(ctx, &buf); err != nil {
		b.logger.Error("sse failed to render roster", slog.Any("error", err))
		return
	}

	b.hub.BroadcastEvent(components.RosterUpdateEvent, buf.String())
}
