// Package learn extracts Wave Function Collapse inputs from a small
// example grid: which tile pairs may be adjacent in which directions,
// and how common each tile is.
//
// What:
//
//   - FromMatrix walks a rectangular [][]wfc.Tile and emits one weight
//     increment per tile occurrence plus one adjacency triple per
//     (cell, valid-neighbor-direction) pair observed.
//   - FromLines does the same for a text sample, one rune per tile.
//   - Ruleset.Oracle wraps the learned rules in a wfc.CompatibilityOracle.
//
// The relation is recorded exactly as observed: one triple per direction
// seen, never symmetrized. Whatever the example never shows stays illegal.
//
// Complexity: O(W×H×d) time over the example grid.
//
// Errors:
//
//   - ErrEmptySample: example grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package learn
