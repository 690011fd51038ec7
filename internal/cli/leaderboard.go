package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Leaderboard commands",
	}

	cmd.AddCommand(newLeaderboardGetCmd())
	cmd.AddCommand(newLeaderboardSubmitCmd())

	return cmd
}

func newLeaderboardGetCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the global leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/leaderboard"
			if mode != "" {
				path += "?mode=" + url.QueryEscape(mode)
			}

			var result []LeaderboardEntry
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Filter by game mode (walls, pass-through)")

	return cmd
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var score int
	var mode string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score to the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"score": score,
				"mode":  mode,
			}

			// The API returns null when the score does not make the board,
			// so decode into raw JSON first.
			var raw json.RawMessage
			if err := client.Post("/api/leaderboard", req, &raw); err != nil {
				return err
			}

			var entry *LeaderboardEntry
			if len(raw) > 0 && string(raw) != "null" {
				entry = &LeaderboardEntry{}
				if err := json.Unmarshal(raw, entry); err != nil {
					return fmt.Errorf("failed to parse response: %w", err)
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(entry)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Score to submit (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: walls or pass-through (required)")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}
