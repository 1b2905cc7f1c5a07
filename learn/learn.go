package learn

import (
	"errors"

	"github.com/katalvlaran/wavegrid/wfc"
)

// Sentinel errors for learn operations.
var (
	// ErrEmptySample indicates the example grid has no rows or no columns.
	ErrEmptySample = errors.New("learn: example grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("learn: all rows must have the same length")
)

// Ruleset is everything the solver needs that can be learned from one
// example grid: the adjacency rules and the tile frequencies.
type Ruleset struct {
	// Rules holds one adjacency triple per (cell, valid-direction) pair
	// observed in the example, de-duplicated.
	Rules []wfc.Adjacency
	// Weights counts one increment per tile occurrence in the example.
	Weights wfc.Weights
}

// Oracle builds a compatibility oracle from the learned rules.
// Complexity: O(len(Rules)).
func (r Ruleset) Oracle() *wfc.CompatibilityOracle {
	return wfc.NewCompatibilityOracle(r.Rules)
}

// FromMatrix extracts a Ruleset from a fully populated rectangular example
// grid. For every cell it increments the tile's weight, and for every
// valid neighbor direction it records the triple
// (cell tile, neighbor tile, direction).
//
// Returns ErrEmptySample or ErrNonRectangular for malformed input.
// Complexity: O(W×H×d) time, O(rules + tiles) memory.
func FromMatrix(matrix [][]wfc.Tile) (Ruleset, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Ruleset{}, ErrEmptySample
	}
	height, width := len(matrix), len(matrix[0])
	for _, row := range matrix {
		if len(row) != width {
			return Ruleset{}, ErrNonRectangular
		}
	}

	seen := make(map[wfc.Adjacency]struct{})
	rules := make([]wfc.Adjacency, 0, width*height)
	weights := make(wfc.Weights)

	for y, row := range matrix {
		for x, cur := range row {
			weights[cur]++

			for _, d := range wfc.ValidDirections(wfc.Coord{X: x, Y: y}, width, height) {
				other := matrix[y+d.DY][x+d.DX]
				adj := wfc.Adjacency{A: cur, B: other, Dir: d}
				if _, dup := seen[adj]; dup {
					continue
				}
				seen[adj] = struct{}{}
				rules = append(rules, adj)
			}
		}
	}

	return Ruleset{Rules: rules, Weights: weights}, nil
}

// FromLines is a convenience wrapper over FromMatrix for text samples:
// each line is one grid row and each rune one tile.
// Complexity: O(W×H×d).
func FromLines(lines []string) (Ruleset, error) {
	matrix := make([][]wfc.Tile, len(lines))
	for y, line := range lines {
		runes := []rune(line)
		row := make([]wfc.Tile, len(runes))
		for x, r := range runes {
			row[x] = wfc.Tile(r)
		}
		matrix[y] = row
	}

	return FromMatrix(matrix)
}
