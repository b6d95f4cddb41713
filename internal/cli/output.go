package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case []PlayerStat:
		o.printStatRows(v)
	case PlayerStat:
		o.printStatRow(v)
	case []TrendPoint:
		o.printTrend(v)
	case []HandCount:
		o.printHands(v)
	case RivalryResult:
		o.printRivalry(v)
	case []Achievement:
		o.printAchievements(v)
	case Insight:
		o.printInsight(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Participant response type
type Participant struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name,omitempty"`
	BetAmount int64  `json:"bet_amount"`
}

// Game response type
type Game struct {
	ID           string        `json:"id"`
	WinnerID     string        `json:"winner_id"`
	WinnerName   string        `json:"winner_name,omitempty"`
	PotAmount    int64         `json:"pot_amount"`
	WinningHand  string        `json:"winning_hand,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	AIAnalysis   string        `json:"ai_analysis,omitempty"`
	PlayedAt     time.Time     `json:"played_at"`
	Participants []Participant `json:"participants"`
}

// PlayerStat response type
type PlayerStat struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	TotalGames int    `json:"total_games"`
	TotalWins  int    `json:"total_wins"`
	TotalWon   int64  `json:"total_won"`
	TotalBet   int64  `json:"total_bet"`
	Profit     int64  `json:"profit"`
	WinRate    int    `json:"win_rate"`
	TopHand    string `json:"top_hand,omitempty"`
}

// TrendPoint response type
type TrendPoint struct {
	Index      int    `json:"index"`
	PotAmount  int64  `json:"pot_amount"`
	WinnerName string `json:"winner_name,omitempty"`
}

// HandCount response type
type HandCount struct {
	WinningHand string `json:"winning_hand"`
	Count       int    `json:"count"`
}

// RivalSide response type
type RivalSide struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	TotalWins int    `json:"total_wins"`
	TotalWon  int64  `json:"total_won"`
}

// RivalryResult response type
type RivalryResult struct {
	Player1   RivalSide `json:"player1"`
	Player2   RivalSide `json:"player2"`
	Narrative string    `json:"narrative,omitempty"`
}

// Achievement response type
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Insight response type
type Insight struct {
	Narrative string `json:"narrative"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Created: %s\n", p.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
}

func (o *Output) printGame(g Game) {
	winner := g.WinnerName
	if winner == "" {
		winner = g.WinnerID
	}
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Winner: %s\n", winner)
	fmt.Printf("Pot: %d\n", g.PotAmount)
	if g.WinningHand != "" {
		fmt.Printf("Hand: %s\n", g.WinningHand)
	}
	fmt.Printf("Played: %s\n", g.PlayedAt.Format(time.RFC3339))
	if len(g.Participants) > 0 {
		fmt.Printf("Participants (%d):\n", len(g.Participants))
		for _, p := range g.Participants {
			name := p.Name
			if name == "" {
				name = p.PlayerID
			}
			fmt.Printf("  - %s bet %d\n", name, p.BetAmount)
		}
	}
	if g.Notes != "" {
		fmt.Printf("Notes: %s\n", g.Notes)
	}
	if g.AIAnalysis != "" {
		fmt.Printf("Analysis: %s\n", g.AIAnalysis)
	}
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		winner := g.WinnerName
		if winner == "" {
			winner = g.WinnerID
		}
		hand := g.WinningHand
		if hand == "" {
			hand = "-"
		}
		fmt.Printf("  %s  %s won %d (%s)  %s\n",
			g.ID, winner, g.PotAmount, hand, g.PlayedAt.Format("2006-01-02 15:04"))
	}
}

func (o *Output) printStatRow(s PlayerStat) {
	fmt.Printf("Player: %s (%s)\n", s.Name, s.PlayerID)
	fmt.Printf("Games: %d  Wins: %d  Win Rate: %d%%\n", s.TotalGames, s.TotalWins, s.WinRate)
	fmt.Printf("Won: %d  Bet: %d  Profit: %+d\n", s.TotalWon, s.TotalBet, s.Profit)
	if s.TopHand != "" {
		fmt.Printf("Top Hand: %s\n", s.TopHand)
	}
}

func (o *Output) printStatRows(rows []PlayerStat) {
	if len(rows) == 0 {
		fmt.Println("No games recorded.")
		return
	}
	for _, s := range rows {
		fmt.Printf("%2d. %s  wins=%d games=%d won=%d profit=%+d rate=%d%%\n",
			s.Rank, s.Name, s.TotalWins, s.TotalGames, s.TotalWon, s.Profit, s.WinRate)
	}
}

func (o *Output) printTrend(points []TrendPoint) {
	if len(points) == 0 {
		fmt.Println("No games recorded.")
		return
	}
	for _, p := range points {
		winner := p.WinnerName
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("%3d. pot=%d winner=%s\n", p.Index, p.PotAmount, winner)
	}
}

func (o *Output) printHands(hands []HandCount) {
	if len(hands) == 0 {
		fmt.Println("No winning hands recorded.")
		return
	}
	for _, h := range hands {
		fmt.Printf("%-20s %d\n", h.WinningHand, h.Count)
	}
}

func (o *Output) printRivalry(r RivalryResult) {
	side := func(s RivalSide) string {
		return fmt.Sprintf("%s: %d wins, %d won", s.Name, s.TotalWins, s.TotalWon)
	}
	fmt.Println(side(r.Player1))
	fmt.Println(side(r.Player2))
	if r.Narrative != "" {
		fmt.Printf("\n%s\n", strings.TrimSpace(r.Narrative))
	}
}

func (o *Output) printAchievements(achievements []Achievement) {
	if len(achievements) == 0 {
		fmt.Println("No achievements earned yet.")
		return
	}
	fmt.Printf("Achievements (%d):\n", len(achievements))
	for _, a := range achievements {
		fmt.Printf("  - %s: %s\n", a.Name, a.Description)
	}
}

func (o *Output) printInsight(i Insight) {
	if i.Narrative == "" {
		fmt.Println("No insight available.")
		return
	}
	fmt.Println(strings.TrimSpace(i.Narrative))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
