package redis

import (
	"fmt"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// Key prefix for all roster data
const keyPrefix = "roster"

// playerKey returns the Redis key for a Player
func playerKey(cohort string, id model.PlayerID) string {
	return fmt.Sprintf("%s:%s:player:%s", keyPrefix, cohort, id)
}

// playersIndexKey returns the Redis key for the ZSET of a cohort's player ids, scored by id
func playersIndexKey(cohort string) string {
	return fmt.Sprintf("%s:%s:idx:players", keyPrefix, cohort)
}

// playerSequenceKey returns the Redis key of the counter that hands out player ids
func playerSequenceKey() string {
	return fmt.Sprintf("%s:seq:player", keyPrefix)
}
