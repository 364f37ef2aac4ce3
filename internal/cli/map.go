package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/mapviz"
	"github.com/samdwyer/roomcrawl/internal/world"
)

func newMapCmd(opts *globalOptions) *cobra.Command {
	var (
		stage    int
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Export a stage's room graph as DOT or SVG",
		Example: `  roomcrawl map --seed 42 > dungeon.dot
  roomcrawl map --seed 42 --format svg -o dungeon.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}

			ctx := cmd.Context()
			cfg, catalog, err := opts.load(ctx)
			if err != nil {
				return err
			}
			d, err := generateStage(ctx, cfg, catalog, stage)
			if err != nil {
				return err
			}

			data := []byte(mapviz.ToDOT(d, mapviz.Options{Current: world.NoRoom, Detailed: detailed}))
			if format == "svg" {
				if data, err = mapviz.RenderSVG(ctx, string(data)); err != nil {
					return err
				}
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.ErrOrStderr(), "Rendered %s", stageName(catalog, stage))
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().IntVar(&stage, "stage", 0, "stage index to export")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include depth and room content in labels")
	return cmd
}
