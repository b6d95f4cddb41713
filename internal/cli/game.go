package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game recording commands",
	}

	cmd.AddCommand(newGameRecordCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameRmCmd())

	return cmd
}

func newGameRecordCmd() *cobra.Command {
	var (
		winner       string
		pot          int64
		hand         string
		notes        string
		participants []string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a finished game",
		Long: `Record a finished game.

Participants are optional and given as repeated --participant flags in the
form playerID=betAmount, for example:

  pokerctl game record --winner p_abc --pot 500 --hand Flush \
    --participant p_abc=200 --participant p_def=300`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if winner == "" {
				return fmt.Errorf("--winner is required")
			}

			req := map[string]any{
				"winner_id":  winner,
				"pot_amount": pot,
			}
			if hand != "" {
				req["winning_hand"] = hand
			}
			if notes != "" {
				req["notes"] = notes
			}
			if len(participants) > 0 {
				parsed, err := parseParticipants(participants)
				if err != nil {
					return err
				}
				req["participants"] = parsed
			}

			var result Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winner player ID (required)")
	cmd.Flags().Int64Var(&pot, "pot", 0, "Pot amount (required)")
	cmd.Flags().StringVar(&hand, "hand", "", "Winning hand, e.g. Flush")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringArrayVar(&participants, "participant", nil, "Participant as playerID=betAmount (repeatable)")
	_ = cmd.MarkFlagRequired("winner")
	_ = cmd.MarkFlagRequired("pot")

	return cmd
}

func parseParticipants(raw []string) ([]map[string]any, error) {
	parsed := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		id, amount, found := strings.Cut(entry, "=")
		if !found || id == "" {
			return nil, fmt.Errorf("invalid participant %q, expected playerID=betAmount", entry)
		}
		bet, err := strconv.ParseInt(amount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bet amount in %q: %w", entry, err)
		}
		parsed = append(parsed, map[string]any{
			"player_id":  id,
			"bet_amount": bet,
		})
	}
	return parsed, nil
}

func newGameListCmd() *cobra.Command {
	var (
		filter filterFlags
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent games, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			path := "/api/v1/games" + filter.query()
			if limit > 0 {
				sep := "?"
				if strings.Contains(path, "?") {
					sep = "&"
				}
				path += sep + "limit=" + strconv.Itoa(limit)
			}
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	addFilterFlags(cmd, &filter)
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum games to show")
	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get("/api/v1/games/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <game-id>",
		Short: "Delete a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
