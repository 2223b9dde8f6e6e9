package pages

import (
	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/components"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
	Containers components.Containers
	Players    []model.Player
	Details    *model.Player // nil keeps the details panel closed
}
