package achievement

import (
	"github.com/kihyunnn/Texas-holdem/internal/model"
)

// Thresholds for the catalog rules
const (
	grinderWins       = 10
	heaterStreak      = 3
	unstoppableStreak = 5
	bigPotAmount      = 10_000
	bankrollAmount    = 100_000
)

// history is one player's view of the full game log, prepared once per
// evaluation: games the player took part in, chronological order.
type history struct {
	playerID model.PlayerID
	// played are the player's participated games (for games without
	// participant data, participation means winning)
	played []*model.Game
	// wins is the subset of played won by the player
	wins []*model.Game
	// allHands is every distinct hand category recorded anywhere in the log
	allHands map[string]bool
}

type rule struct {
	def    model.Achievement
	earned func(h history) bool
}

// catalog is the fixed, ordered achievement rule set. Evaluation walks it
// in order, so the returned achievements always come out in catalog order.
var catalog = []rule{
	{
		def: model.Achievement{
			ID:          "first_blood",
			Name:        "First Blood",
			Description: "Win your first game",
		},
		earned: func(h history) bool { return len(h.wins) >= 1 },
	},
	{
		def: model.Achievement{
			ID:          "grinder",
			Name:        "Grinder",
			Description: "Win ten games",
		},
		earned: func(h history) bool { return len(h.wins) >= grinderWins },
	},
	{
		def: model.Achievement{
			ID:          "heater",
			Name:        "Heater",
			Description: "Win three games in a row",
		},
		earned: func(h history) bool { return h.longestStreak() >= heaterStreak },
	},
	{
		def: model.Achievement{
			ID:          "unstoppable",
			Name:        "Unstoppable",
			Description: "Win five games in a row",
		},
		earned: func(h history) bool { return h.longestStreak() >= unstoppableStreak },
	},
	{
		def: model.Achievement{
			ID:          "big_pot",
			Name:        "Big Pot",
			Description: "Win a single pot of 10,000 or more",
		},
		earned: func(h history) bool {
			for _, g := range h.wins {
				if g.PotAmount >= bigPotAmount {
					return true
				}
			}
			return false
		},
	},
	{
		def: model.Achievement{
			ID:          "bankroll",
			Name:        "Bankroll",
			Description: "Win 100,000 in total",
		},
		earned: func(h history) bool {
			var total int64
			for _, g := range h.wins {
				total += g.PotAmount
			}
			return total >= bankrollAmount
		},
	},
	{
		def: model.Achievement{
			ID:          "collector",
			Name:        "Collector",
			Description: "Win with every hand recorded at the table",
		},
		earned: func(h history) bool {
			if len(h.allHands) == 0 {
				return false
			}
			won := make(map[string]bool)
			for _, g := range h.wins {
				if g.WinningHand != "" {
					won[g.WinningHand] = true
				}
			}
			for hand := range h.allHands {
				if !won[hand] {
					return false
				}
			}
			return true
		},
	},
}

// longestStreak is the longest run of consecutive wins over the player's
// participated games in chronological order.
func (h history) longestStreak() int {
	longest, current := 0, 0
	for _, g := range h.played {
		if g.WinnerID == h.playerID {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// Catalog returns the full achievement definitions in catalog order
func Catalog() []model.Achievement {
	defs := make([]model.Achievement, len(catalog))
	for i, r := range catalog {
		defs[i] = r.def
	}
	return defs
}
