// Package cli implements the roomcrawl command-line interface.
//
// # Commands
//
//   - play: explore the dungeon in the terminal
//   - generate: build one stage and print a summary
//   - map: export a stage's room graph as DOT or SVG
//
// All commands accept --config (TOML file), --seed and --verbose. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

var (
	version = "dev" // semantic version, set via SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose    bool
	configPath string
	seed       int64
}

// Execute runs the roomcrawl CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "roomcrawl",
		Short:        "roomcrawl is a branching room-by-room dungeon crawler",
		Long:         `roomcrawl generates stages of rooms connected by doors, hides a key for each stage's boss door, and lets you fight your way through them in the terminal.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := telemetry.WithLogger(cmd.Context(), telemetry.NewLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("roomcrawl %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed (overrides config; 0 keeps the configured seed)")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newMapCmd(opts))

	return root
}

// load reads the config, applies the --seed flag and loads the catalog.
func (o *globalOptions) load(ctx context.Context) (game.Config, *gamedata.Catalog, error) {
	cfg, err := game.LoadConfig(o.configPath)
	if err != nil {
		return game.Config{}, nil, err
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}

	var catalog *gamedata.Catalog
	if cfg.DataDir != "" {
		catalog, err = gamedata.LoadCatalogDir(cfg.DataDir)
	} else {
		catalog, err = gamedata.LoadCatalog()
	}
	if err != nil {
		return game.Config{}, nil, fmt.Errorf("load catalog: %w", err)
	}

	telemetry.Logger(ctx).Debug("config loaded",
		"seed", cfg.Seed, "max_depth", cfg.MaxDepth, "odds_power", cfg.OddsPower,
		"stages", catalog.StageCount(), "data_dir", cfg.DataDir)
	return cfg, catalog, nil
}
