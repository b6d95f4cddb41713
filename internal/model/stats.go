package model

// PlayerStat is one player's aggregate row. The same accumulation rule
// backs the leaderboard, session stats, per-player stats and rivalry views:
// a game with participant data counts toward TotalGames for each listed
// participant; a game without it counts only for its winner.
type PlayerStat struct {
	Rank     int
	PlayerID PlayerID
	Name     string
	// TotalGames is the participation count (see rule above)
	TotalGames int
	TotalWins  int
	// TotalWon is the sum of pot amounts over won games
	TotalWon int64
	// TotalBet is the sum of bet amounts over participated games;
	// zero when no participant data exists for the player's games
	TotalBet int64
	// Profit = TotalWon - TotalBet
	Profit int64
	// WinRate is TotalWins/TotalGames as a percentage rounded to the
	// nearest integer, 0 when TotalGames is 0
	WinRate int
	// TopHand is the most frequent winning hand among the player's wins,
	// empty when none of them recorded a hand. Populated only on the
	// per-player stats path.
	TopHand string
}

// TrendPoint is one game's entry in the pot-size trend series
type TrendPoint struct {
	// Index is the 1-based position in chronological order
	Index      int
	PotAmount  int64
	WinnerName string
}

// HandCount is one winning-hand category and its frequency
type HandCount struct {
	Hand  string
	Count int
}

// RivalSide is one player's half of a rivalry comparison
type RivalSide struct {
	PlayerID  PlayerID
	Name      string
	TotalWins int
	TotalWon  int64
}

// RivalryResult is a side-by-side comparison of two players' independent
// aggregates. It is deliberately not a head-to-head subset: the two sides
// are computed over the same game set without requiring that both players
// appeared in any game together.
type RivalryResult struct {
	Player1 RivalSide
	Player2 RivalSide
	// Narrative is optional commentary; empty when the summarizer is
	// unavailable or failed
	Narrative string
}
