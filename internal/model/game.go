package model

import "time"

// GameID uniquely identifies a recorded game
type GameID string

// Participant is a player's entry in a game's participant list
type Participant struct {
	PlayerID  PlayerID
	BetAmount int64
}

// Game is one recorded poker game. Games are immutable after creation;
// the only lifecycle operation is deletion by id.
type Game struct {
	ID        GameID
	WinnerID  PlayerID
	PotAmount int64
	// Seq is assigned monotonically by the store at creation. It total-orders
	// games and breaks PlayedAt ties in chronological sorts.
	Seq      int64
	PlayedAt time.Time
	// WinningHand is an optional free-text hand category ("Flush", "Pair", ...)
	WinningHand string
	Notes       string
	// AIAnalysis is optional commentary attached best-effort at creation.
	// Never required for correctness of any aggregate.
	AIAnalysis string
	// Participants may be empty: older records tracked only the winner.
	// A game with no participants still counts as exactly one win for its
	// winner and contributes no participation to anyone else.
	Participants []Participant
}

// HasParticipants reports whether participant data was recorded for this game
func (g *Game) HasParticipants() bool {
	return len(g.Participants) > 0
}

// IsParticipant reports whether the player is listed in the participant set
func (g *Game) IsParticipant(id PlayerID) bool {
	for _, p := range g.Participants {
		if p.PlayerID == id {
			return true
		}
	}
	return false
}

// Involves reports whether the player is the winner or a listed participant.
// For games without participant data only the winner is involved.
func (g *Game) Involves(id PlayerID) bool {
	return g.WinnerID == id || g.IsParticipant(id)
}
