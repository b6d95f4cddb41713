package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kihyunnn/Texas-holdem/internal/dependencies/clock"
	"github.com/kihyunnn/Texas-holdem/internal/dependencies/random"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/storage"
)

const idLength = 12

// Service manages the player registry
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Create adds a player. Names are trimmed and must be non-empty and
// unique within the active set.
func (s *Service) Create(ctx context.Context, name string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyName
	}

	_, err := s.storage.GetPlayerByName(ctx, name)
	if err == nil {
		return nil, model.ErrDuplicateName
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, fmt.Errorf("checking name: %w", err)
	}

	player := &model.Player{
		ID:        model.PlayerID("p_" + s.random.String(idLength, random.Alphanumeric)),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("saving player: %w", err)
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name))

	return player, nil
}

// Get returns a player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// List returns all players in creation order
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// Delete removes a player by id. Games won by a deleted player remain in
// the log; aggregations exclude them as orphaned-winner games.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}
