package model

import "time"

// PlayerID identifies a player on the remote roster. The API assigns it and
// it never changes; it is treated as opaque text even when the API sends a number.
type PlayerID string

// Default status assigned to new players by the Players API
const StatusBench = "bench"

// Player is a single roster entry as reported by the Players API
type Player struct {
	ID        PlayerID
	Name      string
	Breed     string
	Status    string
	ImageURL  string
	TeamID    *int // nil when the player is not on a team
	CohortID  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerDraft holds the values submitted through the new player form
type PlayerDraft struct {
	Name     string
	Position string // sent to the API as the player's breed
	ImageURL string
}

// Validate checks that every form field was filled in
func (d PlayerDraft) Validate() error {
	if d.Name == "" || d.Position == "" || d.ImageURL == "" {
		return ErrInvalidDraft
	}
	return nil
}
