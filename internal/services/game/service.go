package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kihyunnn/Texas-holdem/internal/dependencies/clock"
	"github.com/kihyunnn/Texas-holdem/internal/dependencies/random"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/insight"
	"github.com/kihyunnn/Texas-holdem/internal/storage"
)

const idLength = 12

// Service records, lists and deletes games
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	random   random.Random
	composer *insight.Composer
	logger   *slog.Logger
}

// New creates a new game Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, composer *insight.Composer, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		clock:    clock,
		random:   random,
		composer: composer,
		logger:   logger,
	}
}

// RecordInput is the validated-at-the-boundary shape for a new game
type RecordInput struct {
	WinnerID     model.PlayerID
	PotAmount    int64
	WinningHand  string
	Notes        string
	Participants []model.Participant
}

// Record validates and persists a new game. AI commentary is composed
// best-effort before the save; a summarizer failure leaves the field empty
// and never fails the recording.
func (s *Service) Record(ctx context.Context, in RecordInput) (*model.Game, error) {
	if in.PotAmount < 0 {
		return nil, model.ErrInvalidAmount
	}

	winner, err := s.storage.GetPlayer(ctx, in.WinnerID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, model.ErrUnknownWinner
		}
		return nil, fmt.Errorf("checking winner: %w", err)
	}

	if err := s.validateParticipants(ctx, in); err != nil {
		return nil, err
	}

	seq, err := s.storage.NextGameSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocating sequence: %w", err)
	}

	game := &model.Game{
		ID:           model.GameID("g_" + s.random.String(idLength, random.Alphanumeric)),
		WinnerID:     in.WinnerID,
		PotAmount:    in.PotAmount,
		Seq:          seq,
		PlayedAt:     s.clock.Now(),
		WinningHand:  in.WinningHand,
		Notes:        in.Notes,
		Participants: in.Participants,
	}

	game.AIAnalysis = s.composer.GameAnalysis(ctx, game, winner)

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("saving game: %w", err)
	}

	s.logger.Info("game recorded",
		slog.String("game_id", string(game.ID)),
		slog.String("winner_id", string(game.WinnerID)),
		slog.Int64("pot", game.PotAmount))

	return game, nil
}

func (s *Service) validateParticipants(ctx context.Context, in RecordInput) error {
	if len(in.Participants) == 0 {
		return nil
	}

	seen := make(map[model.PlayerID]bool, len(in.Participants))
	winnerListed := false
	for _, p := range in.Participants {
		if p.BetAmount < 0 {
			return model.ErrInvalidAmount
		}
		if seen[p.PlayerID] {
			return model.ErrDuplicateParticipant
		}
		seen[p.PlayerID] = true
		if p.PlayerID == in.WinnerID {
			winnerListed = true
			continue // Winner already verified
		}
		if _, err := s.storage.GetPlayer(ctx, p.PlayerID); err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				return model.ErrUnknownParticipant
			}
			return fmt.Errorf("checking participant: %w", err)
		}
	}
	if !winnerListed {
		return model.ErrWinnerNotParticipant
	}
	return nil
}

// Get returns a game by id
func (s *Service) Get(ctx context.Context, id model.GameID) (*model.Game, error) {
	return s.storage.GetGame(ctx, id)
}

// Delete removes a game by id. The removal is immediately visible to the
// next aggregation read. Returns model.ErrGameNotFound for an unknown id.
func (s *Service) Delete(ctx context.Context, id model.GameID) error {
	if _, err := s.storage.GetGame(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}

	s.logger.Info("game deleted", slog.String("game_id", string(id)))
	return nil
}
