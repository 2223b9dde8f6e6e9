package rosterapi

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// envelope is the outer shape of every Players API response
type envelope struct {
	Success bool            `json:"success"`
	Error   *apiError       `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type playersData struct {
	Players []playerDTO `json:"players"`
}

type playerData struct {
	Player    *playerDTO `json:"player"`
	NewPlayer *playerDTO `json:"newPlayer"`
}

// playerID accepts both JSON numbers and strings
type playerID string

func (id *playerID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = playerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = playerID(n.String())
	return nil
}

type playerDTO struct {
	ID        playerID   `json:"id"`
	Name      string     `json:"name"`
	Breed     string     `json:"breed"`
	Status    string     `json:"status"`
	ImageURL  string     `json:"imageUrl"`
	TeamID    *int       `json:"teamId"`
	CohortID  int        `json:"cohortId"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (p playerDTO) toModel() model.Player {
	player := model.Player{
		ID:       model.PlayerID(p.ID),
		Name:     p.Name,
		Breed:    p.Breed,
		Status:   p.Status,
		ImageURL: p.ImageURL,
		TeamID:   p.TeamID,
		CohortID: p.CohortID,
	}
	if p.CreatedAt != nil {
		player.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		player.UpdatedAt = *p.UpdatedAt
	}
	return player
}

// createRequest is the body of POST {base}
type createRequest struct {
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func createRequestFromDraft(d model.PlayerDraft) createRequest {
	return createRequest{
		Name:     d.Name,
		Breed:    d.Position,
		ImageURL: d.ImageURL,
	}
}
