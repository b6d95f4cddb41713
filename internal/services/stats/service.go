package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kihyunnn/Texas-holdem/internal/dependencies/clock"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/scope"
	"github.com/kihyunnn/Texas-holdem/internal/storage"
)

// Service is the aggregation engine. Every call reads a fresh snapshot of
// players and games from storage and computes pure functions over it;
// nothing is maintained incrementally between calls.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new stats Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Snapshot is one consistent reading of the record store, already passed
// through a scope filter. Orphaned-winner games (winner no longer in the
// player set) are dropped before any aggregation sees them.
type Snapshot struct {
	Games   []*model.Game
	Players map[model.PlayerID]*model.Player
}

// Load reads players and games once, resolves the filter against a single
// clock reading, and returns the filtered snapshot.
func (s *Service) Load(ctx context.Context, f scope.Filter) (*Snapshot, error) {
	pred, err := scope.Resolve(f, s.clock.Now())
	if err != nil {
		return nil, err
	}

	playerList, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	players := make(map[model.PlayerID]*model.Player, len(playerList))
	for _, p := range playerList {
		players[p.ID] = p
	}

	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}

	orphans := 0
	kept := make([]*model.Game, 0, len(games))
	for _, g := range games {
		if _, ok := players[g.WinnerID]; !ok {
			orphans++
			continue
		}
		if pred(g) {
			kept = append(kept, g)
		}
	}
	if orphans > 0 {
		s.logger.Debug("excluded orphaned-winner games from aggregation",
			slog.Int("count", orphans))
	}

	return &Snapshot{Games: kept, Players: players}, nil
}

// Leaderboard computes the ranked aggregate table for the filtered game set
func (s *Service) Leaderboard(ctx context.Context, f scope.Filter) ([]model.PlayerStat, error) {
	snap, err := s.Load(ctx, f)
	if err != nil {
		return nil, err
	}
	return ComputeLeaderboard(snap.Games, snap.Players), nil
}

// SessionStats computes today's aggregate table ordered by gross winnings
func (s *Service) SessionStats(ctx context.Context) ([]model.PlayerStat, error) {
	snap, err := s.Load(ctx, scope.Filter{Scope: scope.ScopeToday})
	if err != nil {
		return nil, err
	}
	return ComputeSessionStats(snap.Games, snap.Players), nil
}

// Trend computes the pot-size series for the filtered game set
func (s *Service) Trend(ctx context.Context, f scope.Filter) ([]model.TrendPoint, error) {
	snap, err := s.Load(ctx, f)
	if err != nil {
		return nil, err
	}
	return ComputeTrend(snap.Games, snap.Players), nil
}

// HandStats computes winning-hand frequencies for the filtered game set
func (s *Service) HandStats(ctx context.Context, f scope.Filter) ([]model.HandCount, error) {
	snap, err := s.Load(ctx, f)
	if err != nil {
		return nil, err
	}
	return ComputeHandStats(snap.Games), nil
}

// PlayerStats computes a single player's aggregate row including TopHand.
// Returns model.ErrPlayerNotFound when the id is unknown.
func (s *Service) PlayerStats(ctx context.Context, playerID model.PlayerID, f scope.Filter) (*model.PlayerStat, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	snap, err := s.Load(ctx, f)
	if err != nil {
		return nil, err
	}

	stat := ComputePlayerStat(playerID, snap.Games, snap.Players)
	return &stat, nil
}

// RecentGames returns the filtered game set most recent first, truncated
// to limit when limit is positive. Orphaned-winner games are excluded here
// too so the listing agrees with the aggregates built from it.
func (s *Service) RecentGames(ctx context.Context, f scope.Filter, limit int) ([]*model.Game, error) {
	snap, err := s.Load(ctx, f)
	if err != nil {
		return nil, err
	}

	// Chronological order reversed: most recent first
	games := SortChronological(snap.Games)
	for i, j := 0, len(games)-1; i < j; i, j = i+1, j-1 {
		games[i], games[j] = games[j], games[i]
	}

	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}
