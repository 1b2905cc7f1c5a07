package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavegrid/learn"
	"github.com/katalvlaran/wavegrid/render"
	"github.com/katalvlaran/wavegrid/wfc"
)

// rootOptions holds the flags of the wavegen command. Flag values of 0
// defer to the spec file, which in turn defers to defaults.
type rootOptions struct {
	Input   string
	Width   int
	Height  int
	Seed    int64
	NoColor bool
}

// newRootCommand wires flags, spec loading, learning, solving, and
// rendering into the single wavegen command.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wavegen",
		Short: "Generate a tile map from a small example grid (Wave Function Collapse)",
		Long: "wavegen learns which tiles may sit next to which from a small example\n" +
			"grid, then generates a larger map where every adjacent pair of tiles is\n" +
			"legal, using the Wave Function Collapse algorithm. Without --input it\n" +
			"uses a built-in shoreline sample.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "YAML sample spec file (default: built-in shoreline sample)")
	cmd.Flags().IntVarP(&opts.Width, "width", "W", 0, "output grid width (overrides spec)")
	cmd.Flags().IntVarP(&opts.Height, "height", "H", 0, "output grid height (overrides spec)")
	cmd.Flags().Int64VarP(&opts.Seed, "seed", "s", 0, "random seed (0 = fixed default seed)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "disable ANSI colors")

	return cmd
}

// runGenerate executes one full pipeline: spec → ruleset → model → render.
func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	spec := defaultSpec()
	if opts.Input != "" {
		loaded, err := loadSpec(opts.Input)
		if err != nil {
			return err
		}
		spec = loaded
	}

	// Flags override the spec file.
	if opts.Width > 0 {
		spec.Width = opts.Width
	}
	if opts.Height > 0 {
		spec.Height = opts.Height
	}
	if opts.Seed != 0 {
		spec.Seed = opts.Seed
	}
	if opts.NoColor {
		color.NoColor = true
	}

	rs, err := learn.FromLines(spec.Sample)
	if err != nil {
		return err
	}

	model, err := wfc.NewModel(spec.Width, spec.Height, rs.Weights, rs.Oracle(), wfc.Options{Seed: spec.Seed})
	if err != nil {
		return err
	}

	out, err := model.Run()
	if err != nil {
		return err
	}

	palette, err := buildPalette(spec, rs.Weights)
	if err != nil {
		return err
	}

	return render.Matrix(cmd.OutOrStdout(), out, palette)
}
