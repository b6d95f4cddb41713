package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kihyunnn/Texas-holdem/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "p1",
		Name:      "Alice",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.True(player.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerByName() {
	player := &model.Player{ID: "p1", Name: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayerByName(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), retrieved.ID)

	_, err = s.storage.GetPlayerByName(s.ctx, "Bob")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersCreationOrder() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "p2", Name: "Bob", CreatedAt: base.Add(time.Hour)}))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "p1", Name: "Alice", CreatedAt: base}))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(model.PlayerID("p1"), players[0].ID)
	s.Equal(model.PlayerID("p2"), players[1].ID)
}

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayerClearsIndexes() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "p1", Name: "Alice"}))

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "p1"))

	_, err := s.storage.GetPlayer(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerByName(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayerIsIdempotent() {
	s.NoError(s.storage.DeletePlayer(s.ctx, "nonexistent"))
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:          "g1",
		WinnerID:    "p1",
		PotAmount:   500,
		Seq:         1,
		PlayedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		WinningHand: "Flush",
		Participants: []model.Participant{
			{PlayerID: "p1", BetAmount: 200},
			{PlayerID: "p2", BetAmount: 300},
		},
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal("Flush", retrieved.WinningHand)
	s.Len(retrieved.Participants, 2)
	s.Equal(int64(300), retrieved.Participants[1].BetAmount)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesSeqOrder() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "g2", WinnerID: "p1", Seq: 2}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "g1", WinnerID: "p1", Seq: 1}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameID("g1"), games[0].ID)
	s.Equal(model.GameID("g2"), games[1].ID)
}

func (s *StorageSuite) TestDeleteGameRemovesFromIndex() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "g1", WinnerID: "p1", Seq: 1}))

	s.Require().NoError(s.storage.DeleteGame(s.ctx, "g1"))

	_, err := s.storage.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestNextGameSeqMonotonic() {
	first, err := s.storage.NextGameSeq(s.ctx)
	s.Require().NoError(err)
	second, err := s.storage.NextGameSeq(s.ctx)
	s.Require().NoError(err)

	s.Equal(int64(1), first)
	s.Equal(int64(2), second)
}
