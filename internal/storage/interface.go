package storage

import (
	"context"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// Storage defines the interface for roster persistence behind the local Players API.
// Rosters are partitioned by cohort, mirroring /api/{cohort}/players.
type Storage interface {
	// ListPlayers returns the cohort's players ordered by id (creation order)
	ListPlayers(ctx context.Context, cohort string) ([]*model.Player, error)
	GetPlayer(ctx context.Context, cohort string, id model.PlayerID) (*model.Player, error)
	// CreatePlayer assigns the next id to player and stores it
	CreatePlayer(ctx context.Context, cohort string, player *model.Player) error
	// DeletePlayer returns model.ErrPlayerNotFound if the player does not exist
	DeletePlayer(ctx context.Context, cohort string, id model.PlayerID) error
}
