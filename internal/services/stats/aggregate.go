package stats

import (
	"math"
	"sort"

	"github.com/kihyunnn/Texas-holdem/internal/model"
)

// accumulator collects one player's running totals
type accumulator struct {
	playerID   model.PlayerID
	totalGames int
	totalWins  int
	totalWon   int64
	totalBet   int64
}

// accumulate folds the game set into per-player totals.
//
// The participation rule is decided per game: a game carrying participant
// data counts toward totalGames (and totalBet) for each listed participant;
// a game without it counts as one game for its winner only. The winner
// always receives the win and the pot regardless of the participant list.
func accumulate(games []*model.Game, players map[model.PlayerID]*model.Player) map[model.PlayerID]*accumulator {
	accs := make(map[model.PlayerID]*accumulator)

	get := func(id model.PlayerID) *accumulator {
		if a, ok := accs[id]; ok {
			return a
		}
		a := &accumulator{playerID: id}
		accs[id] = a
		return a
	}

	for _, g := range games {
		if g.HasParticipants() {
			for _, p := range g.Participants {
				if _, ok := players[p.PlayerID]; !ok {
					continue
				}
				a := get(p.PlayerID)
				a.totalGames++
				a.totalBet += p.BetAmount
			}
		} else {
			get(g.WinnerID).totalGames++
		}

		w := get(g.WinnerID)
		w.totalWins++
		w.totalWon += g.PotAmount
	}

	return accs
}

func (a *accumulator) toStat(players map[model.PlayerID]*model.Player) model.PlayerStat {
	stat := model.PlayerStat{
		PlayerID:   a.playerID,
		TotalGames: a.totalGames,
		TotalWins:  a.totalWins,
		TotalWon:   a.totalWon,
		TotalBet:   a.totalBet,
		Profit:     a.totalWon - a.totalBet,
	}
	if p, ok := players[a.playerID]; ok {
		stat.Name = p.Name
	}
	if a.totalGames > 0 {
		stat.WinRate = int(math.Round(float64(a.totalWins) / float64(a.totalGames) * 100))
	}
	return stat
}

func toStats(accs map[model.PlayerID]*accumulator, players map[model.PlayerID]*model.Player) []model.PlayerStat {
	stats := make([]model.PlayerStat, 0, len(accs))
	for _, a := range accs {
		stats = append(stats, a.toStat(players))
	}
	return stats
}

// rank assigns 1-based ranks after sorting. The id tiebreak makes the
// order a strict total order, so ranks are never shared.
func rank(stats []model.PlayerStat) []model.PlayerStat {
	for i := range stats {
		stats[i].Rank = i + 1
	}
	return stats
}

// ComputeLeaderboard ranks every player appearing in the game set by
// profit descending, ties broken by wins descending, then id ascending.
func ComputeLeaderboard(games []*model.Game, players map[model.PlayerID]*model.Player) []model.PlayerStat {
	stats := toStats(accumulate(games, players), players)
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Profit != stats[j].Profit {
			return stats[i].Profit > stats[j].Profit
		}
		if stats[i].TotalWins != stats[j].TotalWins {
			return stats[i].TotalWins > stats[j].TotalWins
		}
		return stats[i].PlayerID < stats[j].PlayerID
	})
	return rank(stats)
}

// ComputeSessionStats ranks like ComputeLeaderboard but orders by gross
// winnings instead of profit: the session view emphasizes amounts won.
func ComputeSessionStats(games []*model.Game, players map[model.PlayerID]*model.Player) []model.PlayerStat {
	stats := toStats(accumulate(games, players), players)
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalWon != stats[j].TotalWon {
			return stats[i].TotalWon > stats[j].TotalWon
		}
		if stats[i].TotalWins != stats[j].TotalWins {
			return stats[i].TotalWins > stats[j].TotalWins
		}
		return stats[i].PlayerID < stats[j].PlayerID
	})
	return rank(stats)
}

// SortChronological orders games by PlayedAt ascending, Seq breaking ties.
// The input is not mutated.
func SortChronological(games []*model.Game) []*model.Game {
	sorted := make([]*model.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].PlayedAt.Equal(sorted[j].PlayedAt) {
			return sorted[i].PlayedAt.Before(sorted[j].PlayedAt)
		}
		return sorted[i].Seq < sorted[j].Seq
	})
	return sorted
}

// ComputeTrend produces one point per game in chronological order: the raw
// pot amount with a 1-based sequence index. No smoothing.
func ComputeTrend(games []*model.Game, players map[model.PlayerID]*model.Player) []model.TrendPoint {
	sorted := SortChronological(games)
	points := make([]model.TrendPoint, 0, len(sorted))
	for i, g := range sorted {
		point := model.TrendPoint{
			Index:     i + 1,
			PotAmount: g.PotAmount,
		}
		if p, ok := players[g.WinnerID]; ok {
			point.WinnerName = p.Name
		}
		points = append(points, point)
	}
	return points
}

// ComputeHandStats counts non-empty winning hands, ordered by count
// descending with first-seen order breaking ties. Games with no recorded
// hand are excluded entirely rather than bucketed as unknown.
func ComputeHandStats(games []*model.Game) []model.HandCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, g := range SortChronological(games) {
		if g.WinningHand == "" {
			continue
		}
		if _, ok := counts[g.WinningHand]; !ok {
			firstSeen[g.WinningHand] = len(firstSeen)
		}
		counts[g.WinningHand]++
	}

	hands := make([]model.HandCount, 0, len(counts))
	for hand, count := range counts {
		hands = append(hands, model.HandCount{Hand: hand, Count: count})
	}
	sort.Slice(hands, func(i, j int) bool {
		if hands[i].Count != hands[j].Count {
			return hands[i].Count > hands[j].Count
		}
		return firstSeen[hands[i].Hand] < firstSeen[hands[j].Hand]
	})
	return hands
}

// ComputePlayerStat builds a single player's aggregate row plus TopHand,
// the most frequent hand among that player's wins (first-seen tiebreak).
// A player absent from the game set yields a zeroed row, not an error.
func ComputePlayerStat(playerID model.PlayerID, games []*model.Game, players map[model.PlayerID]*model.Player) model.PlayerStat {
	accs := accumulate(games, players)

	var stat model.PlayerStat
	if a, ok := accs[playerID]; ok {
		stat = a.toStat(players)
	} else {
		stat = model.PlayerStat{PlayerID: playerID}
		if p, ok := players[playerID]; ok {
			stat.Name = p.Name
		}
	}

	stat.TopHand = topHand(playerID, games)
	return stat
}

func topHand(playerID model.PlayerID, games []*model.Game) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, g := range SortChronological(games) {
		if g.WinnerID != playerID || g.WinningHand == "" {
			continue
		}
		if _, ok := counts[g.WinningHand]; !ok {
			firstSeen[g.WinningHand] = len(firstSeen)
		}
		counts[g.WinningHand]++
	}

	best := ""
	for hand, count := range counts {
		if best == "" ||
			count > counts[best] ||
			(count == counts[best] && firstSeen[hand] < firstSeen[best]) {
			best = hand
		}
	}
	return best
}
