package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rosters map[string]*roster
	lastID  int64
}

// roster keeps one cohort's players in creation order
type roster struct {
	order   []model.PlayerID
	players map[model.PlayerID]*model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rosters: make(map[string]*roster),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ListPlayers(ctx context.Context, cohort string) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rosters[cohort]
	if !ok {
		return []*model.Player{}, nil
	}

	players := make([]*model.Player, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, r.players[id])
	}
	return players, nil
}

func (s *Storage) GetPlayer(ctx context.Context, cohort string, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rosters[cohort]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := r.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) CreatePlayer(ctx context.Context, cohort string, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[cohort]
	if !ok {
		r = &roster{players: make(map[model.PlayerID]*model.Player)}
		s.rosters[cohort] = r
	}

	s.lastID++
	player.ID = model.PlayerID(strconv.FormatInt(s.lastID, 10))
	r.order = append(r.order, player.ID)
	r.players[player.ID] = player
	return nil
}

func (s *Storage) DeletePlayer(ctx context.Context, cohort string, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[cohort]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if _, ok := r.players[id]; !ok {
		return model.ErrPlayerNotFound
	}

	delete(r.players, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
