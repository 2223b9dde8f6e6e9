package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ListPlayers(ctx context.Context, cohort string) ([]*model.Player, error) {
	ids, err := s.client.ZRange(ctx, playersIndexKey(cohort), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(cohort, model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, v := range values {
		// Index entries can outlive their player record if a delete was interrupted
		str, ok := v.(string)
		if !ok {
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(str), &player); err != nil {
			return nil, err
		}
		players = append(players, &player)
	}
	return players, nil
}

func (s *Storage) GetPlayer(ctx context.Context, cohort string, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(cohort, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) CreatePlayer(ctx context.Context, cohort string, player *model.Player) error {
	seq, err := s.client.Incr(ctx, playerSequenceKey()).Result()
	if err != nil {
		return err
	}
	player.ID = model.PlayerID(strconv.FormatInt(seq, 10))

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Record and index are written together
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(cohort, player.ID), data, 0)
		pipe.ZAdd(ctx, playersIndexKey(cohort), redis.Z{Score: float64(seq), Member: string(player.ID)})
		return nil
	})
	return err
}

func (s *Storage) DeletePlayer(ctx context.Context, cohort string, id model.PlayerID) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, playerKey(cohort, id))
		pipe.ZRem(ctx, playersIndexKey(cohort), string(id))
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}
