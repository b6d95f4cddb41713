package rivalry

import (
	"context"
	"log/slog"

	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/insight"
	"github.com/kihyunnn/Texas-holdem/internal/services/scope"
	"github.com/kihyunnn/Texas-holdem/internal/services/stats"
	"github.com/kihyunnn/Texas-holdem/internal/storage"
)

// Service compares two players side by side. A rivalry here is a
// comparison of independent aggregates over the same game set, not a
// head-to-head subset: the two players never need to have shared a table.
// Each side uses the same accumulation rule as the leaderboard.
type Service struct {
	storage  storage.Storage
	stats    *stats.Service
	composer *insight.Composer
	logger   *slog.Logger
}

// New creates a new rivalry Service
func New(storage storage.Storage, statsService *stats.Service, composer *insight.Composer, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		stats:    statsService,
		composer: composer,
		logger:   logger,
	}
}

// Compare computes both players' aggregates over the filtered game set and
// attaches an optional narrative. Fails with model.ErrSamePlayer before
// touching the store when the two ids are equal, and with
// model.ErrPlayerNotFound when either id is unknown.
func (s *Service) Compare(ctx context.Context, player1, player2 model.PlayerID, f scope.Filter) (*model.RivalryResult, error) {
	if player1 == player2 {
		return nil, model.ErrSamePlayer
	}

	p1, err := s.storage.GetPlayer(ctx, player1)
	if err != nil {
		return nil, err
	}
	p2, err := s.storage.GetPlayer(ctx, player2)
	if err != nil {
		return nil, err
	}

	snap, err := s.stats.Load(ctx, f)
	if err != nil {
		return nil, err
	}

	result := &model.RivalryResult{
		Player1: side(p1, snap),
		Player2: side(p2, snap),
	}
	result.Narrative = s.composer.RivalryNarrative(ctx, result.Player1, result.Player2)

	return result, nil
}

func side(p *model.Player, snap *stats.Snapshot) model.RivalSide {
	stat := stats.ComputePlayerStat(p.ID, snap.Games, snap.Players)
	return model.RivalSide{
		PlayerID:  p.ID,
		Name:      p.Name,
		TotalWins: stat.TotalWins,
		TotalWon:  stat.TotalWon,
	}
}
