package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kihyunnn/Texas-holdem/internal/model"
)

// Summarizer turns a textual context into free-text commentary. It is an
// injected capability so tests can script it and deployments can disable it.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// DefaultTimeout bounds a single summarizer call
const DefaultTimeout = 10 * time.Second

// maxNotesLen bounds how much free text from game notes reaches the prompt
const maxNotesLen = 200

// Composer builds bounded textual contexts from aggregation results and
// delegates to the summarizer. Every failure degrades to an empty
// narrative: insight generation never blocks or invalidates game
// recording, aggregation, or deletion.
type Composer struct {
	summarizer Summarizer
	timeout    time.Duration
	logger     *slog.Logger
}

// NewComposer creates a Composer. A nil summarizer disables insight
// generation entirely; every call then returns an empty narrative.
func NewComposer(summarizer Summarizer, timeout time.Duration, logger *slog.Logger) *Composer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Composer{
		summarizer: summarizer,
		timeout:    timeout,
		logger:     logger,
	}
}

// Enabled reports whether a summarizer is configured
func (c *Composer) Enabled() bool {
	return c.summarizer != nil
}

func (c *Composer) summarize(ctx context.Context, kind, prompt string) string {
	if c.summarizer == nil {
		return ""
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.summarizer.Summarize(callCtx, prompt)
	if err != nil {
		c.logger.Warn("summarizer unavailable, omitting narrative",
			slog.String("kind", kind),
			slog.String("error", err.Error()))
		return ""
	}
	return strings.TrimSpace(text)
}

// GameAnalysis composes commentary for a freshly recorded game
func (c *Composer) GameAnalysis(ctx context.Context, game *model.Game, winner *model.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A poker game just finished. Winner: %s. Pot: %d.", winner.Name, game.PotAmount)
	if game.WinningHand != "" {
		fmt.Fprintf(&b, " Winning hand: %s.", game.WinningHand)
	}
	if game.HasParticipants() {
		fmt.Fprintf(&b, " %d players took part.", len(game.Participants))
	}
	if game.Notes != "" {
		notes := game.Notes
		if len(notes) > maxNotesLen {
			notes = notes[:maxNotesLen]
		}
		fmt.Fprintf(&b, " Table notes: %s.", notes)
	}
	b.WriteString(" Write one short, playful sentence of commentary about this result.")

	return c.summarize(ctx, "game", b.String())
}

// PlayerNarrative composes commentary for a player's aggregate stats
func (c *Composer) PlayerNarrative(ctx context.Context, stat model.PlayerStat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Poker stats for %s: %d games, %d wins (%d%% win rate), total won %d, profit %d.",
		stat.Name, stat.TotalGames, stat.TotalWins, stat.WinRate, stat.TotalWon, stat.Profit)
	if stat.TopHand != "" {
		fmt.Fprintf(&b, " Favourite winning hand: %s.", stat.TopHand)
	}
	b.WriteString(" Write two short sentences describing this player's form.")

	return c.summarize(ctx, "player", b.String())
}

// RivalryNarrative composes commentary comparing two players' aggregates
func (c *Composer) RivalryNarrative(ctx context.Context, p1, p2 model.RivalSide) string {
	prompt := fmt.Sprintf(
		"Poker rivalry: %s has %d wins for %d total, %s has %d wins for %d total. "+
			"Write one short sentence sizing up the rivalry.",
		p1.Name, p1.TotalWins, p1.TotalWon,
		p2.Name, p2.TotalWins, p2.TotalWon)

	return c.summarize(ctx, "rivalry", prompt)
}
