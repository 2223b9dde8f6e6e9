package components

// Containers names the page elements each view renders into. Handlers carry
// one of these and pass the ids down, so every view knows exactly which
// element it owns.
type Containers struct {
	Roster  string
	Form    string
	Details string
}

// DefaultContainers returns the element ids used by the home page
func DefaultContainers() Containers {
	return Containers{
		Roster:  "all-players-container",
		Form:    "new-player-form",
		Details: "player-details-container",
	}
}
