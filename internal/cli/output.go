package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Roster:
		o.printRoster(v)
	case MutationResult:
		o.printMutationResult(v)
	case HealthResult:
		_, _ = fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player is the CLI's view of a roster entry
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl"`
	TeamID   *int   `json:"teamId"`
	CohortID int    `json:"cohortId,omitempty"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		Breed:    p.Breed,
		Status:   p.Status,
		ImageURL: p.ImageURL,
		TeamID:   p.TeamID,
		CohortID: p.CohortID,
	}
}

// Roster is a list of players in API order
type Roster struct {
	Players []Player `json:"players"`
}

// RosterFromModel converts a list of players; nil becomes an empty roster
func RosterFromModel(players []model.Player) Roster {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return Roster{Players: out}
}

// MutationResult reports an add or remove together with the refreshed roster
type MutationResult struct {
	Action string  `json:"action"`
	Player *Player `json:"player,omitempty"`
	Roster Roster  `json:"roster"`
}

// HealthResult reports whether the Players API answered
type HealthResult struct {
	Status string `json:"status"`
	API    string `json:"api"`
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Name, p.ID)
	_, _ = fmt.Fprintf(o.w, "Breed: %s\n", p.Breed)
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", p.Status)
	if p.ImageURL != "" {
		_, _ = fmt.Fprintf(o.w, "Image: %s\n", p.ImageURL)
	}
	if p.TeamID != nil {
		_, _ = fmt.Fprintf(o.w, "Team: %d\n", *p.TeamID)
	}
}

func (o *Output) printRoster(r Roster) {
	if len(r.Players) == 0 {
		_, _ = fmt.Fprintln(o.w, "No players on the roster.")
		return
	}

	idWidth := len("ID")
	for _, p := range r.Players {
		idWidth = max(idWidth, len(p.ID))
	}

	_, _ = fmt.Fprintf(o.w, "Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		_, _ = fmt.Fprintf(o.w, "  %-*s  %s - %s [%s]\n", idWidth, p.ID, p.Name, p.Breed, p.Status)
	}
}

func (o *Output) printMutationResult(m MutationResult) {
	if m.Player != nil {
		_, _ = fmt.Fprintf(o.w, "%s %s (%s)\n", capitalize(m.Action), m.Player.Name, m.Player.ID)
	} else {
		_, _ = fmt.Fprintln(o.w, capitalize(m.Action))
	}
	o.printRoster(m.Roster)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
