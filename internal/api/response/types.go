package response

import (
	"encoding/json"
	"time"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID        json.Number `json:"id"`
	Name      string      `json:"name"`
	Breed     string      `json:"breed"`
	Status    string      `json:"status"`
	ImageURL  string      `json:"imageUrl"`
	TeamID    *int        `json:"teamId"`
	CohortID  int         `json:"cohortId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// PlayerFromModel converts a model.Player to a response Player.
// Storage hands out numeric ids, so the id is emitted as a JSON number.
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        json.Number(p.ID),
		Name:      p.Name,
		Breed:     p.Breed,
		Status:    p.Status,
		ImageURL:  p.ImageURL,
		TeamID:    p.TeamID,
		CohortID:  p.CohortID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersData is the data of GET /players
type PlayersData struct {
	Players []Player `json:"players"`
}

// PlayersDataFromModel converts a list of players
func PlayersDataFromModel(players []*model.Player) PlayersData {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return PlayersData{Players: out}
}

// PlayerData is the data of GET /players/{id}
type PlayerData struct {
	Player Player `json:"player"`
}

// NewPlayerData is the data of POST /players
type NewPlayerData struct {
	NewPlayer Player `json:"newPlayer"`
}
