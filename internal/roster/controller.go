package roster

import (
	"context"
	"log/slog"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// API is the subset of the Players API the roster screens need
type API interface {
	ListAll(ctx context.Context) ([]model.Player, error)
	GetOne(ctx context.Context, id model.PlayerID) (*model.Player, error)
	Create(ctx context.Context, draft model.PlayerDraft) (*model.Player, error)
	Delete(ctx context.Context, id model.PlayerID) error
}

// Controller runs the fetch/render/refresh cycle behind the roster screens.
// It is the error boundary for UI flows: API failures are logged and the
// caller gets an empty result instead of an error.
type Controller struct {
	api    API
	logger *slog.Logger
}

// NewController creates a new roster Controller
func NewController(api API, logger *slog.Logger) *Controller {
	return &Controller{
		api:    api,
		logger: logger.With(slog.String("component", "roster")),
	}
}

// Load fetches the current roster. A failed fetch yields nil, which renders
// as an empty roster.
func (c *Controller) Load(ctx context.Context) []model.Player {
	players, err := c.api.ListAll(ctx)
	if err != nil {
		c.logger.Error("trouble fetching players", slog.Any("error", err))
		return nil
	}
	return players
}

// Details fetches a single player for the details panel
func (c *Controller) Details(ctx context.Context, id model.PlayerID) (*model.Player, bool) {
	player, err := c.api.GetOne(ctx, id)
	if err != nil {
		c.logger.Error("trouble fetching player",
			slog.String("player_id", string(id)),
			slog.Any("error", err))
		return nil, false
	}
	return player, true
}

// Remove deletes a player and returns the refreshed roster. The roster is
// refreshed either way; ok reports whether the delete itself went through.
func (c *Controller) Remove(ctx context.Context, id model.PlayerID) (players []model.Player, ok bool) {
	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.Error("trouble removing player from the roster",
			slog.String("player_id", string(id)),
			slog.Any("error", err))
	} else {
		c.logger.Info("player removed", slog.String("player_id", string(id)))
		ok = true
	}
	return c.Load(ctx), ok
}

// Add creates a player from the draft and returns the refreshed roster. The
// roster is refreshed either way; ok reports whether the create went through.
func (c *Controller) Add(ctx context.Context, draft model.PlayerDraft) (players []model.Player, ok bool) {
	created, err := c.api.Create(ctx, draft)
	switch {
	case err != nil:
		c.logger.Error("something went wrong with adding that player",
			slog.String("name", draft.Name),
			slog.Any("error", err))
	case created != nil:
		c.logger.Info("player added",
			slog.String("player_id", string(created.ID)),
			slog.String("name", created.Name))
		ok = true
	default:
		c.logger.Info("player added", slog.String("name", draft.Name))
		ok = true
	}
	return c.Load(ctx), ok
}
