package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kihyunnn/Texas-holdem/internal/dependencies/mocks"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/insight"
	"github.com/kihyunnn/Texas-holdem/internal/storage/memory"
	"github.com/kihyunnn/Texas-holdem/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	summarizer *mocks.MockSummarizer
	service    *Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.summarizer = mocks.NewMockSummarizer("What a hand!")
	composer := insight.NewComposer(s.summarizer, time.Second, testutil.NopLogger())
	s.service = New(s.storage, s.clock, s.random, composer, testutil.NopLogger())
	s.ctx = context.Background()

	s.addPlayer("pA", "Alice")
	s.addPlayer("pB", "Bob")
}

func (s *ServiceSuite) addPlayer(id, name string) {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{
		ID: model.PlayerID(id), Name: name, CreatedAt: s.clock.Now(),
	}))
}

func (s *ServiceSuite) TestRecordWinnerOnly() {
	s.random.QueueString("aaa111bbb222")

	g, err := s.service.Record(s.ctx, RecordInput{
		WinnerID:    "pA",
		PotAmount:   500,
		WinningHand: "Flush",
		Notes:       "river bluff",
	})
	s.Require().NoError(err)

	s.Equal(model.GameID("g_aaa111bbb222"), g.ID)
	s.Equal(model.PlayerID("pA"), g.WinnerID)
	s.Equal(int64(500), g.PotAmount)
	s.Equal("Flush", g.WinningHand)
	s.Equal(s.clock.Now(), g.PlayedAt)
	s.Equal(int64(1), g.Seq)
	s.Equal("What a hand!", g.AIAnalysis)
	s.False(g.HasParticipants())

	stored, err := s.storage.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(g.ID, stored.ID)
}

func (s *ServiceSuite) TestRecordAssignsMonotonicSeq() {
	g1, err := s.service.Record(s.ctx, RecordInput{WinnerID: "pA", PotAmount: 1})
	s.Require().NoError(err)
	g2, err := s.service.Record(s.ctx, RecordInput{WinnerID: "pB", PotAmount: 2})
	s.Require().NoError(err)

	s.Greater(g2.Seq, g1.Seq)
}

func (s *ServiceSuite) TestRecordWithParticipants() {
	g, err := s.service.Record(s.ctx, RecordInput{
		WinnerID:  "pA",
		PotAmount: 500,
		Participants: []model.Participant{
			{PlayerID: "pA", BetAmount: 200},
			{PlayerID: "pB", BetAmount: 300},
		},
	})
	s.Require().NoError(err)
	s.Len(g.Participants, 2)
}

func (s *ServiceSuite) TestRecordNegativePot() {
	_, err := s.service.Record(s.ctx, RecordInput{WinnerID: "pA", PotAmount: -1})
	s.ErrorIs(err, model.ErrInvalidAmount)
}

func (s *ServiceSuite) TestRecordZeroPotIsValid() {
	_, err := s.service.Record(s.ctx, RecordInput{WinnerID: "pA", PotAmount: 0})
	s.NoError(err)
}

func (s *ServiceSuite) TestRecordUnknownWinner() {
	_, err := s.service.Record(s.ctx, RecordInput{WinnerID: "ghost", PotAmount: 100})
	s.ErrorIs(err, model.ErrUnknownWinner)
}

func (s *ServiceSuite) TestRecordUnknownParticipant() {
	_, err := s.service.Record(s.ctx, RecordInput{
		WinnerID:  "pA",
		PotAmount: 100,
		Participants: []model.Participant{
			{PlayerID: "pA", BetAmount: 50},
			{PlayerID: "ghost", BetAmount: 50},
		},
	})
	s.ErrorIs(err, model.ErrUnknownParticipant)
}

func (s *ServiceSuite) TestRecordDuplicateParticipant() {
	_, err := s.service.Record(s.ctx, RecordInput{
		WinnerID:  "pA",
		PotAmount: 100,
		Participants: []model.Participant{
			{PlayerID: "pA", BetAmount: 50},
			{PlayerID: "pA", BetAmount: 50},
		},
	})
	s.ErrorIs(err, model.ErrDuplicateParticipant)
}

func (s *ServiceSuite) TestRecordWinnerMissingFromParticipants() {
	_, err := s.service.Record(s.ctx, RecordInput{
		WinnerID:  "pA",
		PotAmount: 100,
		Participants: []model.Participant{
			{PlayerID: "pB", BetAmount: 100},
		},
	})
	s.ErrorIs(err, model.ErrWinnerNotParticipant)
}

func (s *ServiceSuite) TestRecordNegativeBet() {
	_, err := s.service.Record(s.ctx, RecordInput{
		WinnerID:  "pA",
		PotAmount: 100,
		Participants: []model.Participant{
			{PlayerID: "pA", BetAmount: -5},
		},
	})
	s.ErrorIs(err, model.ErrInvalidAmount)
}

func (s *ServiceSuite) TestRecordSurvivesSummarizerFailure() {
	s.summarizer.Err = errors.New("api down")

	g, err := s.service.Record(s.ctx, RecordInput{WinnerID: "pA", PotAmount: 100})
	s.Require().NoError(err)
	s.Empty(g.AIAnalysis)
}

func (s *ServiceSuite) TestGetUnknown() {
	_, err := s.service.Get(s.ctx, "nope")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestDelete() {
	g, err := s.service.Record(s.ctx, RecordInput{WinnerID: "pA", PotAmount: 100})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, g.ID))

	_, err = s.service.Get(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestDeleteUnknown() {
	err := s.service.Delete(s.ctx, "nope")
	s.ErrorIs(err, model.ErrGameNotFound)
}
