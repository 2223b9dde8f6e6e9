package factory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/rosterapi"
	redisstorage "github.com/mcoot/puppybowl-roster/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.app.Close()
}

func (s *IntegrationSuite) draft(name string) model.PlayerDraft {
	return model.PlayerDraft{Name: name, Position: "Guard", ImageURL: "http://img/" + name + ".png"}
}

// Test: add, inspect and remove players through the roster controller
func (s *IntegrationSuite) TestRosterLifecycle() {
	// Empty to start with
	s.Empty(s.app.Controller.Load(s.ctx))

	// Add two players; each add returns the refreshed roster
	players, ok := s.app.Controller.Add(s.ctx, s.draft("Rex"))
	s.Require().True(ok)
	s.Require().Len(players, 1)
	players, ok = s.app.Controller.Add(s.ctx, s.draft("Ace"))
	s.Require().True(ok)
	s.Require().Len(players, 2)
	s.Equal("Rex", players[0].Name)
	s.Equal("Ace", players[1].Name)
	s.Equal("Guard", players[1].Breed)
	s.Equal(model.StatusBench, players[1].Status)
	s.True(s.app.MockClock.Now().Equal(players[1].CreatedAt))

	// Details
	player, ok := s.app.Controller.Details(s.ctx, players[1].ID)
	s.Require().True(ok)
	s.Equal("Ace", player.Name)

	// Remove the first
	players, ok = s.app.Controller.Remove(s.ctx, players[0].ID)
	s.True(ok)
	s.Require().Len(players, 1)
	s.Equal("Ace", players[0].Name)
}

// Test: every mutation is exactly one write followed by exactly one list
func (s *IntegrationSuite) TestMutationsRefreshOnce() {
	path := "/api/" + TestCohort + "/players"

	s.app.Requests.Reset()
	players, _ := s.app.Controller.Add(s.ctx, s.draft("Rex"))
	s.Equal([]string{"POST " + path, "GET " + path}, s.app.Requests.Requests())

	s.app.Requests.Reset()
	s.app.Controller.Remove(s.ctx, players[0].ID)
	s.Equal([]string{"DELETE " + path + "/" + string(players[0].ID), "GET " + path}, s.app.Requests.Requests())
}

// Test: removing a missing player still refreshes and leaves the roster intact
func (s *IntegrationSuite) TestRemoveMissingPlayer() {
	s.app.Controller.Add(s.ctx, s.draft("Rex"))

	players, ok := s.app.Controller.Remove(s.ctx, "999")
	s.False(ok)
	s.Len(players, 1)
}

// Test: a draft the API rejects is reported as not added
func (s *IntegrationSuite) TestAddRejectedDraft() {
	players, ok := s.app.Controller.Add(s.ctx, model.PlayerDraft{Name: "Rex"})
	s.False(ok)
	s.Empty(players)
}

// Test: details of a missing player report not found
func (s *IntegrationSuite) TestDetailsMissingPlayer() {
	_, err := s.app.Client.GetOne(s.ctx, "999")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	player, ok := s.app.Controller.Details(s.ctx, "999")
	s.False(ok)
	s.Nil(player)
}

// Test: the UI survives the Players API going away
func (s *IntegrationSuite) TestAPIDown() {
	s.app.Controller.Add(s.ctx, s.draft("Rex"))
	s.app.Server.Close()

	s.Nil(s.app.Controller.Load(s.ctx))
	players, ok := s.app.Controller.Add(s.ctx, s.draft("Ace"))
	s.False(ok)
	s.Nil(players)
}

func TestNewPlayersAPIRejectsUnknownStorage(t *testing.T) {
	_, err := NewPlayersAPI(PlayersAPIConfig{StorageType: "postgres"})
	require.Error(t, err)
}

func TestNewPlayersAPIRedisRequiresConfig(t *testing.T) {
	_, err := NewPlayersAPI(PlayersAPIConfig{StorageType: StorageTypeRedis})
	require.Error(t, err)
}

func TestNewPlayersAPIServesMemoryStorage(t *testing.T) {
	players, err := NewPlayersAPI(PlayersAPIConfig{})
	require.NoError(t, err)
	defer func() { _ = players.Close() }()

	srv := httptest.NewServer(players.Router(nil))
	defer srv.Close()

	client := rosterapi.NewClient(PlayersURL(srv.URL))
	created, err := client.Create(t.Context(), model.PlayerDraft{Name: "Rex", Position: "Boxer"})
	require.NoError(t, err)
	require.NotNil(t, created)

	stored, err := players.Storage.GetPlayer(t.Context(), TestCohort, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", stored.Name)
}

func TestNewPlayersAPIRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()
	players, err := NewPlayersAPI(PlayersAPIConfig{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	require.NoError(t, err)
	defer func() { _ = players.Close() }()

	require.NoError(t, players.Storage.CreatePlayer(t.Context(), TestCohort, &model.Player{Name: "Rex", Breed: "Boxer"}))
	list, err := players.Storage.ListPlayers(t.Context(), TestCohort)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rex", list[0].Name)
}

func TestNewDefaults(t *testing.T) {
	app := New(Config{})
	defer app.Close()

	require.NotNil(t, app.Client)
	assert.Equal(t, rosterapi.DefaultBaseURL, app.Client.BaseURL())
	assert.NotNil(t, app.Controller)
	assert.NotNil(t, app.Hub)
}

func TestNewClientLeavesSuppliedHTTPClientAlone(t *testing.T) {
	supplied := &http.Client{}

	client := NewClient(Config{HTTPClient: supplied, HTTPTimeout: time.Second}, nil)

	require.NotNil(t, client)
	assert.Zero(t, supplied.Timeout)
}
