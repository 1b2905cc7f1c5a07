package render

import (
	"errors"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/wavegrid/wfc"
)

// Sentinel errors for render operations.
var (
	// ErrUnmappedTile indicates a grid tile with no palette entry.
	ErrUnmappedTile = errors.New("render: tile has no palette entry")
	// ErrUnknownColor indicates a color name outside the supported set.
	ErrUnknownColor = errors.New("render: unknown color name")
)

// Palette maps each tile to the color it is printed with.
type Palette map[wfc.Tile]*color.Color

// namedColors are the color names accepted by ColorByName. The set mirrors
// the standard ANSI foreground palette.
var namedColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ColorByName resolves an ANSI foreground color from its lowercase name.
// Returns ErrUnknownColor for anything outside the eight standard names.
func ColorByName(name string) (*color.Color, error) {
	attr, ok := namedColors[name]
	if !ok {
		return nil, ErrUnknownColor
	}

	return color.New(attr), nil
}

// PlainColor returns a color that prints its text without any ANSI
// attributes, for tiles that should stay uncolored.
func PlainColor() *color.Color {
	c := color.New()
	c.DisableColor()

	return c
}

// DefaultPalette colors the tiles of the built-in shoreline sample:
// L and A for land shades, C for coast, S and B for sea shades.
func DefaultPalette() Palette {
	return Palette{
		"L": color.New(color.FgGreen),
		"S": color.New(color.FgBlue),
		"C": color.New(color.FgYellow),
		"A": color.New(color.FgCyan),
		"B": color.New(color.FgMagenta),
	}
}

// Matrix writes the collapsed grid to w, one line per row, each tile
// printed through its palette color. Color codes are suppressed
// automatically when w is not a terminal (fatih/color's NoColor policy).
//
// Returns ErrUnmappedTile on the first tile missing from the palette,
// or any write error from w.
// Complexity: O(W×H).
func Matrix(w io.Writer, matrix [][]wfc.Tile, palette Palette) error {
	for _, row := range matrix {
		for _, t := range row {
			c, ok := palette[t]
			if !ok {
				return ErrUnmappedTile
			}
			if _, err := c.Fprint(w, string(t)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
