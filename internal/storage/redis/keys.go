package redis

import (
	"fmt"

	"github.com/kihyunnn/Texas-holdem/internal/model"
)

// Key prefix for all poker tracker data
const keyPrefix = "pokertrack"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerNameIndexKey returns the Redis key for the name -> player_id index
func playerNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:player_name:%s", keyPrefix, name)
}

// playersIndexKey returns the Redis key for the ZSET of all players,
// scored by creation time
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the ZSET of all games, scored by Seq
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// gameSeqKey returns the Redis key for the monotonic game sequence counter
func gameSeqKey() string {
	return fmt.Sprintf("%s:seq:games", keyPrefix)
}
