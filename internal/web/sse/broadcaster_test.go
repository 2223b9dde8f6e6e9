package sse

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/testutil"
	"github.com/mcoot/puppybowl-roster/internal/web/templates/components"
)

// eventData strips the SSE framing and returns the event name and joined data
func eventData(t *testing.T, msg string) (string, string) {
	t.Helper()
	var event string
	var data []string
	for _, line := range strings.Split(strings.TrimSuffix(msg, "\n\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}
	require.NotEmpty(t, event)
	return event, strings.Join(data, "\n")
}

func TestBroadcaster_BroadcastRoster(t *testing.T) {
	hub := startHub(t)
	containers := components.DefaultContainers()
	broadcaster := NewBroadcaster(hub, containers, testutil.NopLogger())

	client := NewClient()
	hub.Register(client)
	waitForClients(t, hub, 1)

	broadcaster.BroadcastRoster(t.Context(), []model.Player{
		{ID: "1", Name: "Rex", Breed: "Boxer", Status: "field"},
		{ID: "2", Name: "Ace", Breed: "Pug", Status: "bench"},
	})

	event, html := eventData(t, receive(t, client))
	assert.Equal(t, components.RosterUpdateEvent, event)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	roster := doc.Find("#" + containers.Roster)
	require.Equal(t, 1, roster.Length())
	cards := roster.Find(".player")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "Rex", cards.Eq(0).Find(".player-name").Text())
	assert.Equal(t, "Ace", cards.Eq(1).Find(".player-name").Text())
}

func TestBroadcaster_EmptyRoster(t *testing.T) {
	hub := startHub(t)
	broadcaster := NewBroadcaster(hub, components.DefaultContainers(), testutil.NopLogger())

	client := NewClient()
	hub.Register(client)
	waitForClients(t, hub, 1)

	broadcaster.BroadcastRoster(t.Context(), nil)

	_, html := eventData(t, receive(t, client))
	assert.Contains(t, html, "roster-empty")
	assert.NotContains(t, html, `class="player"`)
}

func TestBroadcaster_NilIsNoop(t *testing.T) {
	var broadcaster *Broadcaster
	assert.NotPanics(t, func() {
		broadcaster.BroadcastRoster(t.Context(), nil)
	})
}
