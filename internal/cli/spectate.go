package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newSpectateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectate",
		Short: "Spectate live games",
	}

	cmd.AddCommand(newSpectateListCmd())
	cmd.AddCommand(newSpectateGetCmd())

	return cmd
}

func newSpectateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players with live games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []ActivePlayer

			if err := client.Get("/api/spectate/active", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSpectateGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a live game snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID := args[0]
			if playerID == "" {
				return fmt.Errorf("player id is required")
			}

			var result ActivePlayer
			path := "/api/spectate/player/" + url.PathEscape(playerID)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
