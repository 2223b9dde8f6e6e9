package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) create(cohort, name string) *model.Player {
	teamID := 4
	player := &model.Player{
		Name:      name,
		Breed:     "Mutt",
		Status:    model.StatusBench,
		ImageURL:  "http://img/" + name + ".png",
		TeamID:    &teamID,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, cohort, player))
	return player
}

func (s *StorageSuite) TestCreateAndGetPlayer() {
	rex := s.create("c1", "Rex")
	s.Equal(model.PlayerID("1"), rex.ID)

	retrieved, err := s.storage.GetPlayer(s.ctx, "c1", rex.ID)
	s.Require().NoError(err)
	s.Equal(rex.ID, retrieved.ID)
	s.Equal("Rex", retrieved.Name)
	s.Equal("http://img/Rex.png", retrieved.ImageURL)
	s.Require().NotNil(retrieved.TeamID)
	s.Equal(4, *retrieved.TeamID)
	s.True(rex.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestCreateStoresUnderExpectedKeys() {
	rex := s.create("c1", "Rex")

	s.True(s.mini.Exists(playerKey("c1", rex.ID)))
	members, err := s.mini.ZMembers(playersIndexKey("c1"))
	s.Require().NoError(err)
	s.Equal([]string{"1"}, members)

	seq, err := s.mini.Get(playerSequenceKey())
	s.Require().NoError(err)
	s.Equal("1", seq)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "c1", "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListOrderedByID() {
	for _, name := range []string{"Rex", "Ace", "Bo", "Zed", "Kit", "Max", "Ned", "Oz", "Pip", "Quin", "Roo"} {
		s.create("c1", name)
	}

	players, err := s.storage.ListPlayers(s.ctx, "c1")
	s.Require().NoError(err)
	s.Require().Len(players, 11)
	s.Equal("Rex", players[0].Name)
	s.Equal(model.PlayerID("10"), players[9].ID)
	s.Equal("Roo", players[10].Name)
}

func (s *StorageSuite) TestListUnknownCohortIsEmpty() {
	players, err := s.storage.ListPlayers(s.ctx, "nobody")
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *StorageSuite) TestListSkipsDanglingIndexEntries() {
	rex := s.create("c1", "Rex")
	s.create("c1", "Ace")

	s.mini.Del(playerKey("c1", rex.ID))

	players, err := s.storage.ListPlayers(s.ctx, "c1")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Ace", players[0].Name)
}

func (s *StorageSuite) TestDeletePlayer() {
	rex := s.create("c1", "Rex")

	err := s.storage.DeletePlayer(s.ctx, "c1", rex.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "c1", rex.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx, "c1")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	s.ErrorIs(s.storage.DeletePlayer(s.ctx, "c1", "42"), model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestIDsAreNotReusedAfterDelete() {
	rex := s.create("c1", "Rex")
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "c1", rex.ID))

	ace := s.create("c1", "Ace")
	s.Equal(model.PlayerID("2"), ace.ID)
}
