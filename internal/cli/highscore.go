package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newHighscoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "highscore",
		Aliases: []string{"hs"},
		Short:   "Personal high score commands",
	}

	cmd.AddCommand(newHighscoreGetCmd())
	cmd.AddCommand(newHighscoreSaveCmd())

	return cmd
}

func newHighscoreGetCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show your high score for a mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HighScoreResult

			path := "/api/game/highscore?mode=" + url.QueryEscape(mode)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: walls or pass-through (required)")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}

func newHighscoreSaveCmd() *cobra.Command {
	var score int
	var mode string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a high score for a mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"score": score,
				"mode":  mode,
			}

			if err := client.Post("/api/game/highscore", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Score saved")
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Score to save (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: walls or pass-through (required)")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}
