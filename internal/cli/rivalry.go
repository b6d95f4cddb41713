package cli

import (
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newRivalryCmd() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "rivalry <player1-id> <player2-id>",
		Short: "Compare two players head to head",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("player1", args[0])
			q.Set("player2", args[1])
			path := "/api/v1/rivalry?" + q.Encode()
			if extra := filter.query(); extra != "" {
				path += "&" + strings.TrimPrefix(extra, "?")
			}

			var result RivalryResult
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
