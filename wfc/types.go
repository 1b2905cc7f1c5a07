// Package wfc defines core types, options, and sentinel errors
// for the Wave Function Collapse solver of github.com/katalvlaran/wavegrid.
package wfc

import "errors"

// Sentinel errors for wfc operations.
var (
	// ErrBadDimensions indicates a non-positive output width or height.
	ErrBadDimensions = errors.New("wfc: output dimensions must be positive")
	// ErrNoWeights indicates an empty weights mapping.
	ErrNoWeights = errors.New("wfc: weights must contain at least one tile")
	// ErrBadWeight indicates a tile with a non-positive weight.
	ErrBadWeight = errors.New("wfc: tile weights must be positive")
	// ErrNilOracle indicates a Model constructed without a compatibility oracle.
	ErrNilOracle = errors.New("wfc: compatibility oracle must not be nil")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("wfc: coordinate out of bounds")
	// ErrNotCollapsed indicates a singleton read on a cell that still holds
	// more than one possible tile.
	ErrNotCollapsed = errors.New("wfc: cell is not collapsed to a single tile")
	// ErrTileAbsent indicates an attempt to remove a tile that is not
	// currently possible at the cell.
	ErrTileAbsent = errors.New("wfc: tile not present in possibility set")
	// ErrContradiction indicates a cell whose possibility set became empty:
	// no tile can legally occupy it. Terminal for the run; no backtracking.
	ErrContradiction = errors.New("wfc: contradiction - cell has no possible tile")
)

// Tile is an opaque symbol representing one discrete unit placed in the
// output grid. The solver assumes nothing about its internal structure
// beyond comparability.
type Tile string

// Coord addresses a single cell of the output grid. X grows rightward,
// Y grows downward; (0,0) is the top-left cell.
type Coord struct {
	X, Y int
}

// Direction is one of exactly four unit offsets over the 2-D grid.
// It serves both as a spatial step and as the adjacency key in
// compatibility rules ("tile B may sit in direction D from tile A").
type Direction struct {
	DX, DY int
}

// The four grid directions. Each is the additive inverse of its opposite.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists all four directions in a fixed order.
// Treat as read-only.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the additive inverse of d.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String returns a human-readable direction name, e.g. for error messages
// and test output.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// ValidDirections returns the directions from c that stay inside a
// width×height grid. Edge cells simply have fewer valid directions;
// there is no wraparound.
// Complexity: O(1) (at most four appends).
func ValidDirections(c Coord, width, height int) []Direction {
	dirs := make([]Direction, 0, 4)
	if c.Y > 0 {
		dirs = append(dirs, Up)
	}
	if c.Y < height-1 {
		dirs = append(dirs, Down)
	}
	if c.X > 0 {
		dirs = append(dirs, Left)
	}
	if c.X < width-1 {
		dirs = append(dirs, Right)
	}

	return dirs
}

// Adjacency is one compatibility rule: tile B may appear in direction Dir
// from a cell holding tile A. The relation is not required to be symmetric
// in representation; a learned ruleset carries one triple per observed
// (cell, valid-direction) pair.
type Adjacency struct {
	A   Tile
	B   Tile
	Dir Direction
}

// Weights maps each tile of the universe to a positive frequency.
// Weights bias the random collapse and feed the Shannon entropy measure.
// They are fixed for the whole run: every tile ever present in any
// possibility set must have an entry here.
type Weights map[Tile]int

// Options holds configurable parameters shared by Wavefunction and Model.
type Options struct {
	// Seed drives every random decision of the run (tile choice and
	// entropy tie-breaking). Seed==0 selects a fixed default seed, so
	// the zero value is still fully reproducible.
	Seed int64
}

// DefaultOptions returns Options with the fixed default seed policy
// (Seed=0 ⇒ deterministic default stream).
func DefaultOptions() Options {
	return Options{Seed: 0}
}
