package request

import "github.com/mcoot/puppybowl-roster/internal/model"

// CreatePlayerRequest is the request body for adding a player
type CreatePlayerRequest struct {
	Name     string `json:"name" validate:"required"`
	Breed    string `json:"breed" validate:"required"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=bench field"`
	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	TeamID   *int   `json:"teamId,omitempty" validate:"omitempty,gt=0"`
}

// ToModel builds the player to store, defaulting the status to bench
func (r CreatePlayerRequest) ToModel() *model.Player {
	status := r.Status
	if status == "" {
		status = model.StatusBench
	}
	return &model.Player{
		Name:     r.Name,
		Breed:    r.Breed,
		Status:   status,
		ImageURL: r.ImageURL,
		TeamID:   r.TeamID,
	}
}
