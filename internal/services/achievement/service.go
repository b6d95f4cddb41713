package achievement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/stats"
	"github.com/kihyunnn/Texas-holdem/internal/storage"
)

// Service evaluates the achievement catalog against a player's full game
// history. Evaluation is pure and deterministic: the same game set always
// yields the same achievement set, in catalog order. Nothing is revoked
// and nothing is persisted; each call recomputes from scratch.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new achievement Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Evaluate returns the achievements the player has earned over the full
// unscoped game log. Returns model.ErrPlayerNotFound for an unknown id.
func (s *Service) Evaluate(ctx context.Context, playerID model.PlayerID) ([]model.Achievement, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	playerList, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	players := make(map[model.PlayerID]bool, len(playerList))
	for _, p := range playerList {
		players[p.ID] = true
	}

	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}

	// Orphaned-winner games are dropped here the same way the aggregation
	// snapshot drops them, so the hand pool and streak history agree with
	// the leaderboard's view of the log
	orphans := 0
	kept := make([]*model.Game, 0, len(games))
	for _, g := range games {
		if !players[g.WinnerID] {
			orphans++
			continue
		}
		kept = append(kept, g)
	}
	if orphans > 0 {
		s.logger.Debug("excluded orphaned-winner games from achievement history",
			slog.Int("count", orphans))
	}

	return Evaluate(playerID, kept), nil
}

// Evaluate runs the catalog against the given game set. Exposed as a pure
// function so aggregation paths can share one snapshot.
func Evaluate(playerID model.PlayerID, games []*model.Game) []model.Achievement {
	h := buildHistory(playerID, games)

	earned := make([]model.Achievement, 0, len(catalog))
	for _, r := range catalog {
		if r.earned(h) {
			earned = append(earned, r.def)
		}
	}
	return earned
}

func buildHistory(playerID model.PlayerID, games []*model.Game) history {
	h := history{
		playerID: playerID,
		allHands: make(map[string]bool),
	}

	for _, g := range stats.SortChronological(games) {
		if g.WinningHand != "" {
			h.allHands[g.WinningHand] = true
		}
		// Participation follows the aggregate rule: the participant list
		// when present, the winner alone when absent
		participated := g.IsParticipant(playerID)
		if !g.HasParticipants() {
			participated = g.WinnerID == playerID
		}
		if participated || g.WinnerID == playerID {
			h.played = append(h.played, g)
		}
		if g.WinnerID == playerID {
			h.wins = append(h.wins, g)
		}
	}

	return h
}
