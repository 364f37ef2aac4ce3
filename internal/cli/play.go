package cli

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

func newPlayCmd(opts *globalOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Explore the dungeon in the terminal",
		Long: `Play starts a run at the configured stage. Walk through numbered doors,
pick up the key (k), fight the boss (f) and take the portal (p) to the
next stage. The terminal is owned by the game, so logs go to --log-file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := telemetry.WithLogger(cmd.Context(), telemetry.NewLogger(w, level))

			cfg, catalog, err := opts.load(ctx)
			if err != nil {
				return err
			}
			g, err := game.New(cfg, catalog)
			if err != nil {
				return fmt.Errorf("initialize game: %w", err)
			}
			if err := g.Run(ctx); err != nil {
				return err
			}

			s := g.Session()
			if s.State() == game.StateWon {
				printSuccess(cmd.OutOrStdout(), "Cleared all %d stages", s.Party().StagesCleared)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while playing")
	return cmd
}
