// Package render prints a collapsed tile grid as colored text.
//
// What:
//
//   - Matrix writes one line per grid row to an io.Writer, each tile
//     through its Palette color (fatih/color; ANSI codes are dropped
//     automatically on non-terminal writers).
//   - ColorByName resolves the eight standard ANSI foreground colors,
//     for palettes loaded from configuration files.
//   - DefaultPalette covers the built-in shoreline sample tiles.
//
// Errors:
//
//   - ErrUnmappedTile: a grid tile has no palette entry.
//   - ErrUnknownColor: a color name outside the supported set.
package render
