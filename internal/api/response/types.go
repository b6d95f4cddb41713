package response

import (
	"time"

	"github.com/kihyunnn/Texas-holdem/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// Participant represents a game participant entry
type Participant struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name,omitempty"`
	BetAmount int64  `json:"bet_amount"`
}

// Game represents a recorded game in API responses
type Game struct {
	ID           string        `json:"id"`
	WinnerID     string        `json:"winner_id"`
	WinnerName   string        `json:"winner_name,omitempty"`
	PotAmount    int64         `json:"pot_amount"`
	WinningHand  string        `json:"winning_hand,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	AIAnalysis   string        `json:"ai_analysis,omitempty"`
	PlayedAt     time.Time     `json:"played_at"`
	Participants []Participant `json:"participants"`
}

// GameFromModel converts a model.Game, resolving names from the player map.
// Names of since-deleted players come out empty rather than failing.
func GameFromModel(g *model.Game, players map[model.PlayerID]*model.Player) Game {
	participants := make([]Participant, len(g.Participants))
	for i, p := range g.Participants {
		participants[i] = Participant{
			PlayerID:  string(p.PlayerID),
			BetAmount: p.BetAmount,
		}
		if player, ok := players[p.PlayerID]; ok {
			participants[i].Name = player.Name
		}
	}

	game := Game{
		ID:           string(g.ID),
		WinnerID:     string(g.WinnerID),
		PotAmount:    g.PotAmount,
		WinningHand:  g.WinningHand,
		Notes:        g.Notes,
		AIAnalysis:   g.AIAnalysis,
		PlayedAt:     g.PlayedAt,
		Participants: participants,
	}
	if winner, ok := players[g.WinnerID]; ok {
		game.WinnerName = winner.Name
	}
	return game
}

// PlayerStat represents one aggregate row
type PlayerStat struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	TotalGames int    `json:"total_games"`
	TotalWins  int    `json:"total_wins"`
	TotalWon   int64  `json:"total_won"`
	TotalBet   int64  `json:"total_bet"`
	Profit     int64  `json:"profit"`
	WinRate    int    `json:"win_rate"`
	TopHand    string `json:"top_hand,omitempty"`
}

// PlayerStatFromModel converts a model.PlayerStat
func PlayerStatFromModel(s model.PlayerStat) PlayerStat {
	return PlayerStat{
		Rank:       s.Rank,
		PlayerID:   string(s.PlayerID),
		Name:       s.Name,
		TotalGames: s.TotalGames,
		TotalWins:  s.TotalWins,
		TotalWon:   s.TotalWon,
		TotalBet:   s.TotalBet,
		Profit:     s.Profit,
		WinRate:    s.WinRate,
		TopHand:    s.TopHand,
	}
}

// PlayerStatsFromModel converts a slice of model.PlayerStat
func PlayerStatsFromModel(stats []model.PlayerStat) []PlayerStat {
	out := make([]PlayerStat, len(stats))
	for i, s := range stats {
		out[i] = PlayerStatFromModel(s)
	}
	return out
}

// TrendPoint represents one entry of the pot-size series
type TrendPoint struct {
	Index      int    `json:"index"`
	PotAmount  int64  `json:"pot_amount"`
	WinnerName string `json:"winner_name,omitempty"`
}

// TrendFromModel converts a slice of model.TrendPoint
func TrendFromModel(points []model.TrendPoint) []TrendPoint {
	out := make([]TrendPoint, len(points))
	for i, p := range points {
		out[i] = TrendPoint{
			Index:      p.Index,
			PotAmount:  p.PotAmount,
			WinnerName: p.WinnerName,
		}
	}
	return out
}

// HandCount represents one winning-hand frequency entry
type HandCount struct {
	WinningHand string `json:"winning_hand"`
	Count       int    `json:"count"`
}

// HandStatsFromModel converts a slice of model.HandCount
func HandStatsFromModel(hands []model.HandCount) []HandCount {
	out := make([]HandCount, len(hands))
	for i, h := range hands {
		out[i] = HandCount{WinningHand: h.Hand, Count: h.Count}
	}
	return out
}

// RivalSide represents one half of a rivalry comparison
type RivalSide struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	TotalWins int    `json:"total_wins"`
	TotalWon  int64  `json:"total_won"`
}

// RivalryResult represents a rivalry comparison
type RivalryResult struct {
	Player1   RivalSide `json:"player1"`
	Player2   RivalSide `json:"player2"`
	Narrative string    `json:"narrative,omitempty"`
}

// RivalryFromModel converts a model.RivalryResult
func RivalryFromModel(r *model.RivalryResult) RivalryResult {
	side := func(s model.RivalSide) RivalSide {
		return RivalSide{
			PlayerID:  string(s.PlayerID),
			Name:      s.Name,
			TotalWins: s.TotalWins,
			TotalWon:  s.TotalWon,
		}
	}
	return RivalryResult{
		Player1:   side(r.Player1),
		Player2:   side(r.Player2),
		Narrative: r.Narrative,
	}
}

// Achievement represents one earned badge
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AchievementsFromModel converts a slice of model.Achievement
func AchievementsFromModel(achievements []model.Achievement) []Achievement {
	out := make([]Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = Achievement{
			ID:          string(a.ID),
			Name:        a.Name,
			Description: a.Description,
		}
	}
	return out
}

// Insight represents a player narrative response
type Insight struct {
	Narrative string `json:"narrative"`
}
