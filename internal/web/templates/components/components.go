package components

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// RosterUpdateEvent is the SSE event carrying a re-rendered roster
const RosterUpdateEvent = "roster-update"

// Form field names
const (
	FieldName     = "name"
	FieldPosition = "position"
	FieldImageURL = "imageUrl"
)

func playerPath(id model.PlayerID) string {
	return "/players/" + url.PathEscape(string(id))
}

func removePath(id model.PlayerID) string {
	return playerPath(id) + "/delete"
}

// selector turns a container id into an hx-target
func selector(id string) string {
	return "#" + id
}

func fieldID(name string) string {
	return "new-player-" + strings.ToLower(name)
}

func imageSrc(p model.Player) string {
	return string(templ.URL(p.ImageURL))
}
