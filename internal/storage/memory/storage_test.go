package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) create(cohort, name string) *model.Player {
	player := &model.Player{
		Name:      name,
		Breed:     "Mutt",
		Status:    model.StatusBench,
		CreatedAt: time.Now(),
	}
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, cohort, player))
	return player
}

func (s *StorageSuite) TestCreateAssignsIncreasingIDs() {
	first := s.create("c1", "Rex")
	second := s.create("c1", "Ace")

	s.Equal(model.PlayerID("1"), first.ID)
	s.Equal(model.PlayerID("2"), second.ID)
}

func (s *StorageSuite) TestListPreservesCreationOrder() {
	s.create("c1", "Rex")
	s.create("c1", "Ace")
	s.create("c1", "Bo")

	players, err := s.storage.ListPlayers(s.ctx, "c1")
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("Rex", players[0].Name)
	s.Equal("Ace", players[1].Name)
	s.Equal("Bo", players[2].Name)
}

func (s *StorageSuite) TestListUnknownCohortIsEmpty() {
	players, err := s.storage.ListPlayers(s.ctx, "nobody")
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *StorageSuite) TestCohortsAreIsolated() {
	rex := s.create("c1", "Rex")
	s.create("c2", "Ace")

	players, err := s.storage.ListPlayers(s.ctx, "c2")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Ace", players[0].Name)

	_, err = s.storage.GetPlayer(s.ctx, "c2", rex.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayer() {
	rex := s.create("c1", "Rex")

	retrieved, err := s.storage.GetPlayer(s.ctx, "c1", rex.ID)
	s.Require().NoError(err)
	s.Equal("Rex", retrieved.Name)
	s.Equal("Mutt", retrieved.Breed)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "c1", "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	rex := s.create("c1", "Rex")
	ace := s.create("c1", "Ace")

	err := s.storage.DeletePlayer(s.ctx, "c1", rex.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "c1", rex.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx, "c1")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(ace.ID, players[0].ID)
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	s.ErrorIs(s.storage.DeletePlayer(s.ctx, "c1", "42"), model.ErrPlayerNotFound)

	rex := s.create("c1", "Rex")
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "c1", rex.ID))
	s.ErrorIs(s.storage.DeletePlayer(s.ctx, "c1", rex.ID), model.ErrPlayerNotFound)
}
