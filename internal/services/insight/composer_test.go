package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kihyunnn/Texas-holdem/internal/dependencies/mocks"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/testutil"
)

func newComposer(summarizer Summarizer) *Composer {
	return NewComposer(summarizer, time.Second, testutil.NopLogger())
}

func TestComposerDisabledWithoutSummarizer(t *testing.T) {
	c := newComposer(nil)
	assert.False(t, c.Enabled())

	text := c.GameAnalysis(context.Background(), &model.Game{PotAmount: 100}, &model.Player{Name: "Alice"})
	assert.Empty(t, text)
}

func TestComposerGameAnalysis(t *testing.T) {
	mock := mocks.NewMockSummarizer("Alice cleaned up.")
	c := newComposer(mock)

	game := &model.Game{
		PotAmount:   500,
		WinningHand: "Flush",
		Notes:       "river bluff",
		Participants: []model.Participant{
			{PlayerID: "pA", BetAmount: 200},
			{PlayerID: "pB", BetAmount: 300},
		},
	}
	text := c.GameAnalysis(context.Background(), game, &model.Player{Name: "Alice"})

	assert.Equal(t, "Alice cleaned up.", text)
	assert.Len(t, mock.Prompts, 1)
	assert.Contains(t, mock.Prompts[0], "Alice")
	assert.Contains(t, mock.Prompts[0], "500")
	assert.Contains(t, mock.Prompts[0], "Flush")
	assert.Contains(t, mock.Prompts[0], "river bluff")
	assert.Contains(t, mock.Prompts[0], "2 players")
}

func TestComposerTruncatesLongNotes(t *testing.T) {
	mock := mocks.NewMockSummarizer("ok")
	c := newComposer(mock)

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	game := &model.Game{PotAmount: 1, Notes: string(long)}
	c.GameAnalysis(context.Background(), game, &model.Player{Name: "Alice"})

	assert.Less(t, len(mock.Prompts[0]), 400, "notes bounded before reaching the prompt")
}

func TestComposerErrorDegradesToEmpty(t *testing.T) {
	mock := mocks.NewMockSummarizer("")
	mock.Err = errors.New("timeout")
	c := newComposer(mock)

	text := c.PlayerNarrative(context.Background(), model.PlayerStat{Name: "Alice"})
	assert.Empty(t, text)
}

func TestComposerPlayerNarrative(t *testing.T) {
	mock := mocks.NewMockSummarizer("On a heater.")
	c := newComposer(mock)

	stat := model.PlayerStat{
		Name: "Alice", TotalGames: 10, TotalWins: 7,
		WinRate: 70, TotalWon: 900, Profit: 400, TopHand: "Flush",
	}
	text := c.PlayerNarrative(context.Background(), stat)

	assert.Equal(t, "On a heater.", text)
	assert.Contains(t, mock.Prompts[0], "70%")
	assert.Contains(t, mock.Prompts[0], "Flush")
}

func TestComposerRivalryNarrative(t *testing.T) {
	mock := mocks.NewMockSummarizer("Neck and neck.")
	c := newComposer(mock)

	text := c.RivalryNarrative(context.Background(),
		model.RivalSide{Name: "Alice", TotalWins: 3, TotalWon: 300},
		model.RivalSide{Name: "Bob", TotalWins: 2, TotalWon: 350})

	assert.Equal(t, "Neck and neck.", text)
	assert.Contains(t, mock.Prompts[0], "Alice")
	assert.Contains(t, mock.Prompts[0], "Bob")
}

func TestComposerTrimsWhitespace(t *testing.T) {
	mock := mocks.NewMockSummarizer("  padded response \n")
	c := newComposer(mock)

	text := c.PlayerNarrative(context.Background(), model.PlayerStat{Name: "Alice"})
	assert.Equal(t, "padded response", text)
}
