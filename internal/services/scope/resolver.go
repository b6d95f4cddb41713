package scope

import (
	"time"

	"github.com/kihyunnn/Texas-holdem/internal/model"
)

// Scope selects the time window applied to the game set before aggregation
type Scope string

const (
	// ScopeAll applies no time restriction
	ScopeAll Scope = "all"
	// ScopeToday restricts to the current local calendar day
	ScopeToday Scope = "today"
	// ScopeCustom restricts to an inclusive [From, To] date range
	ScopeCustom Scope = "custom"
)

// Filter describes a requested game selection. All set fields compose
// with logical AND.
type Filter struct {
	Scope Scope
	// PlayerID, when set, keeps games where the player is the winner or is
	// listed among participants
	PlayerID model.PlayerID
	// Hand, when set, keeps games whose winning hand matches exactly
	// (byte-wise, case-sensitive)
	Hand string
	// From and To bound a custom scope at local day granularity; both are
	// inclusive. Required when Scope is ScopeCustom, ignored otherwise.
	From time.Time
	To   time.Time
}

// Predicate decides whether a game belongs to a resolved selection
type Predicate func(*model.Game) bool

// Resolve turns a filter into a concrete predicate. The caller supplies
// "now" so that a single reading of the clock scopes the whole request.
// Returns model.ErrInvalidScope for unknown scopes and model.ErrInvalidRange
// for a custom scope with missing or inverted bounds.
func Resolve(f Filter, now time.Time) (Predicate, error) {
	timePred, err := resolveWindow(f, now)
	if err != nil {
		return nil, err
	}

	return func(g *model.Game) bool {
		if !timePred(g) {
			return false
		}
		if f.PlayerID != "" && !g.Involves(f.PlayerID) {
			return false
		}
		if f.Hand != "" && g.WinningHand != f.Hand {
			return false
		}
		return true
	}, nil
}

func resolveWindow(f Filter, now time.Time) (Predicate, error) {
	switch f.Scope {
	case ScopeAll, "":
		return func(*model.Game) bool { return true }, nil

	case ScopeToday:
		// Local midnight to midnight, anchored to the single "now" reading
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 0, 1)
		return func(g *model.Game) bool {
			return !g.PlayedAt.Before(start) && g.PlayedAt.Before(end)
		}, nil

	case ScopeCustom:
		if f.From.IsZero() || f.To.IsZero() {
			return nil, model.ErrInvalidRange
		}
		if f.From.After(f.To) {
			return nil, model.ErrInvalidRange
		}
		// Inclusive at day granularity: [From 00:00, To 24:00)
		start := time.Date(f.From.Year(), f.From.Month(), f.From.Day(), 0, 0, 0, 0, f.From.Location())
		end := time.Date(f.To.Year(), f.To.Month(), f.To.Day(), 0, 0, 0, 0, f.To.Location()).AddDate(0, 0, 1)
		return func(g *model.Game) bool {
			return !g.PlayedAt.Before(start) && g.PlayedAt.Before(end)
		}, nil

	default:
		return nil, model.ErrInvalidScope
	}
}

// Apply filters games through the predicate, preserving order.
// An empty result is valid, never an error.
func Apply(games []*model.Game, pred Predicate) []*model.Game {
	filtered := make([]*model.Game, 0, len(games))
	for _, g := range games {
		if pred(g) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
