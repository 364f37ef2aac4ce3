package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/world"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var stage int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one stage and print its layout",
		Long: `Generate builds a single stage with the configured seed and prints
its room tree, boss placement and key location.`,
		Example: `  roomcrawl generate --seed 42
  roomcrawl generate --stage 2 --config roomcrawl.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			d, err := generateStage(cmd.Context(), cfg, catalog, stage)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), d, stageName(catalog, stage))
			return nil
		},
	}

	cmd.Flags().IntVar(&stage, "stage", 0, "stage index to generate")
	return cmd
}

// generateStage builds one stage outside of a play session.
func generateStage(ctx context.Context, cfg game.Config, catalog *gamedata.Catalog, stage int) (*world.Dungeon, error) {
	gen := world.NewGenerator(cfg.GenConfig(catalog.Fixtures()), catalog, cfg.NewRand(), nil)
	d, err := gen.Generate(ctx, stage)
	if errors.Is(err, world.ErrStagesExhausted) {
		return nil, fmt.Errorf("stage %d: only %d stages defined: %w", stage, catalog.StageCount(), err)
	}
	if err != nil {
		return nil, err
	}
	telemetry.Logger(ctx).Debug("stage generated", "stage", stage, "rooms", d.Graph.Len())
	return d, nil
}

func stageName(catalog *gamedata.Catalog, stage int) string {
	if def := catalog.Stage(stage); def != nil && def.Name != "" {
		return def.Name
	}
	return fmt.Sprintf("stage %d", stage+1)
}

// printSummary prints the stage's vital statistics followed by its room tree.
func printSummary(w io.Writer, d *world.Dungeon, name string) {
	g := d.Graph
	p := d.Placement

	printTitle(w, name)
	printKeyValue(w, "run", d.RunID.String())
	printKeyValue(w, "rooms", fmt.Sprint(g.Len()))
	printKeyValue(w, "depth", fmt.Sprint(g.MaxDepth()))
	printKeyValue(w, "boss door", fmt.Sprintf("room %d", p.BossDoorRoom))
	printKeyValue(w, "boss room", fmt.Sprintf("room %d", p.BossRoom))
	printKeyValue(w, "key", fmt.Sprintf("room %d", p.KeyRoom))
	fmt.Fprintln(w)

	var walk func(id world.RoomID, prefix string)
	walk = func(id world.RoomID, prefix string) {
		fmt.Fprintln(w, prefix+roomLine(d, id))
		for _, child := range g.Room(id).Children {
			walk(child, prefix+"  ")
		}
	}
	walk(d.Root(), "")
}

// roomLine describes one room: its number, markers and content.
func roomLine(d *world.Dungeon, id world.RoomID) string {
	g := d.Graph
	room := g.Room(id)

	label := fmt.Sprintf("room %d", id)
	switch {
	case room.IsBossRoom:
		label = styleBoss.Render(fmt.Sprintf("boss %d", id))
	case id == d.Placement.KeyRoom:
		label = styleKeyRoom.Render(label + " [key]")
	}

	var names []string
	for _, e := range g.EntitiesIn(id) {
		if e.Kind == world.KindContent {
			names = append(names, e.Def.Name)
		}
	}
	if len(names) == 0 {
		return label
	}
	return label + " " + styleDim.Render(strings.Join(names, ", "))
}
