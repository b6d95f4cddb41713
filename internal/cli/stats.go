package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate statistics commands",
	}

	cmd.AddCommand(newStatsLeaderboardCmd())
	cmd.AddCommand(newStatsSessionCmd())
	cmd.AddCommand(newStatsTrendCmd())
	cmd.AddCommand(newStatsHandsCmd())

	return cmd
}

func newStatsLeaderboardCmd() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the ranked leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []PlayerStat

			if err := client.Get("/api/v1/leaderboard"+filter.query(), &result); err != nil {
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

func newStatsSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show today's session stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []PlayerStat

			if err := client.Get("/api/v1/stats/session", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsTrendCmd() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the chronological pot-size series",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []TrendPoint

			if err := client.Get("/api/v1/stats/trend"+filter.query(), &result); err != nil {
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

func newStatsHandsCmd() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "hands",
		Short: "Show winning-hand frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []HandCount

			if err := client.Get("/api/v1/stats/hands"+filter.query(), &result); err != nil {
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
