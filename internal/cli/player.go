package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerRmCmd())
	cmd.AddCommand(newPlayerStatsCmd())
	cmd.AddCommand(newPlayerAchievementsCmd())
	cmd.AddCommand(newPlayerInsightCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <player-id>",
		Short: "Remove a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player removed")
			return nil
		},
	}
}

func newPlayerStatsCmd() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "stats <player-id>",
		Short: "Show a player's aggregate stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerStat

			path := "/api/v1/players/" + args[0] + "/stats" + filter.query()
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	addFilterFlags(cmd, &filter)
	return cmd
}

func newPlayerAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements <player-id>",
		Short: "Show a player's earned achievements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Achievement

			if err := client.Get("/api/v1/players/"+args[0]+"/achievements", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerInsightCmd() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "insight <player-id>",
		Short: "Show an AI narrative of a player's performance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Insight

			path := "/api/v1/players/" + args[0] + "/insight" + filter.query()
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	addFilterFlags(cmd, &filter)
	return cmd
}

// addFilterFlags registers the shared stats filter flags on a command
func addFilterFlags(cmd *cobra.Command, filter *filterFlags) {
	cmd.Flags().StringVar(&filter.Scope, "scope", "", "Time scope: all, today, custom")
	cmd.Flags().StringVar(&filter.PlayerID, "player", "", "Restrict to games involving a player ID")
	cmd.Flags().StringVar(&filter.Hand, "hand", "", "Restrict to games won with a hand")
	cmd.Flags().StringVar(&filter.DateFrom, "from", "", "Range start, YYYY-MM-DD (scope=custom)")
	cmd.Flags().StringVar(&filter.DateTo, "to", "", "Range end, YYYY-MM-DD (scope=custom)")
}
