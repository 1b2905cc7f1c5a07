package wfc

import (
	"math"
	"math/rand"
	"slices"
)

// Wavefunction stores, for every cell of a width×height output grid, the
// set of tiles still possible there, plus the global tile weights.
//
// Possibility sets start equal to the full tile universe and only ever
// shrink (monotonic constraint tightening); a cell is collapsed when its
// set holds exactly one tile. Internally each set is a fixed-capacity
// bitset over a tile-to-index mapping frozen at construction, so presence
// checks and weight lookups are O(1) array accesses.
//
// A Wavefunction is exclusively owned and mutated by the Model driving
// one run; it is not safe for concurrent use.
type Wavefunction struct {
	width, height int

	// tiles fixes the enumeration order of the universe; index maps back.
	tiles   []Tile
	index   map[Tile]int
	weights []int // weights[i] is the weight of tiles[i]

	// cells is row-major: cells[y*width+x].
	cells []tileSet

	rng *rand.Rand
}

// NewWavefunction constructs a Wavefunction for a width×height grid where
// every cell initially permits every tile of the weights mapping.
// The rng drives weighted collapse sampling; nil selects the deterministic
// default stream (seed==0 policy).
//
// Returns ErrBadDimensions for non-positive dimensions, ErrNoWeights for
// an empty mapping, ErrBadWeight for a non-positive weight.
// Complexity: O(W×H×T/64 + T) time and memory.
func NewWavefunction(width, height int, weights Weights, rng *rand.Rand) (*Wavefunction, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}

	// Freeze the tile enumeration order. Sorting makes the order depend
	// only on the tile set, never on map iteration, so the same seed
	// replays the same weighted-collapse walk across constructions.
	tiles := make([]Tile, 0, len(weights))
	for t, w := range weights {
		if w < 1 {
			return nil, ErrBadWeight
		}
		tiles = append(tiles, t)
	}
	slices.Sort(tiles)

	index := make(map[Tile]int, len(tiles))
	wByIdx := make([]int, len(tiles))
	for i, t := range tiles {
		index[t] = i
		wByIdx[i] = weights[t]
	}

	cells := make([]tileSet, width*height)
	for i := range cells {
		cells[i] = newFullTileSet(len(tiles))
	}

	if rng == nil {
		rng = rngFromSeed(0)
	}

	return &Wavefunction{
		width:   width,
		height:  height,
		tiles:   tiles,
		index:   index,
		weights: wByIdx,
		cells:   cells,
		rng:     rng,
	}, nil
}

// Width returns the grid width.
func (wf *Wavefunction) Width() int { return wf.width }

// Height returns the grid height.
func (wf *Wavefunction) Height() int { return wf.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (wf *Wavefunction) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < wf.width && c.Y >= 0 && c.Y < wf.height
}

// cell returns the possibility bitset at c. Callers guarantee bounds.
func (wf *Wavefunction) cell(c Coord) tileSet {
	return wf.cells[c.Y*wf.width+c.X]
}

// Possible returns the tiles currently possible at c, in the fixed
// enumeration order. The slice is a copy; mutating it does not affect
// the Wavefunction. Returns ErrOutOfBounds for coordinates off the grid.
// Complexity: O(T).
func (wf *Wavefunction) Possible(c Coord) ([]Tile, error) {
	if !wf.InBounds(c) {
		return nil, ErrOutOfBounds
	}

	set := wf.cell(c)
	out := make([]Tile, 0, set.count())
	for i, t := range wf.tiles {
		if set.has(i) {
			out = append(out, t)
		}
	}

	return out, nil
}

// Remaining returns the size of the possibility set at c.
// Callers guarantee bounds. Complexity: O(T/64).
func (wf *Wavefunction) Remaining(c Coord) int {
	return wf.cell(c).count()
}

// Collapsed returns the only remaining possible tile at c.
// Returns ErrNotCollapsed when the cell still holds zero or more than one
// possibility — an invariant violation in correct use after Run completes.
// Complexity: O(T/64).
func (wf *Wavefunction) Collapsed(c Coord) (Tile, error) {
	if !wf.InBounds(c) {
		return "", ErrOutOfBounds
	}

	i := wf.cell(c).single()
	if i < 0 {
		return "", ErrNotCollapsed
	}

	return wf.tiles[i], nil
}

// AllCollapsed returns the full grid of collapsed tiles, row by row.
// The first cell that is not a singleton aborts with ErrNotCollapsed.
// Reading is pure: calling AllCollapsed twice yields identical results.
// Complexity: O(W×H×T/64).
func (wf *Wavefunction) AllCollapsed() ([][]Tile, error) {
	out := make([][]Tile, wf.height)
	for y := 0; y < wf.height; y++ {
		row := make([]Tile, wf.width)
		for x := 0; x < wf.width; x++ {
			t, err := wf.Collapsed(Coord{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			row[x] = t
		}
		out[y] = row
	}

	return out, nil
}

// Entropy computes the Shannon entropy of the possibility set at c:
//
//	ln(ΣW) − (Σ W·lnW) / ΣW
//
// over the weights W of the tiles currently possible there. Lower value
// means lower uncertainty. Callers guarantee bounds and a non-empty set;
// the run loop only evaluates uncollapsed cells.
// Complexity: O(T).
func (wf *Wavefunction) Entropy(c Coord) float64 {
	set := wf.cell(c)

	var sumW, sumWLogW float64
	for i := range wf.tiles {
		if !set.has(i) {
			continue
		}
		w := float64(wf.weights[i])
		sumW += w
		sumWLogW += w * math.Log(w)
	}

	return math.Log(sumW) - sumWLogW/sumW
}

// IsFullyCollapsed reports whether every cell's possibility set holds
// exactly one tile.
// Complexity: O(W×H×T/64).
func (wf *Wavefunction) IsFullyCollapsed() bool {
	for _, set := range wf.cells {
		if set.count() != 1 {
			return false
		}
	}

	return true
}

// Collapse fixes the cell at c to a single tile, chosen by weighted random
// sampling over the cell's current possibility set: draw a uniform value
// in [0, ΣW), walk the (tile, weight) pairs in the fixed enumeration
// order, and select the first tile at which the running remainder goes
// negative. Selection probability is proportional to weight regardless of
// the walk order.
//
// Returns ErrContradiction when the possibility set is already empty.
// Complexity: O(T).
func (wf *Wavefunction) Collapse(c Coord) error {
	if !wf.InBounds(c) {
		return ErrOutOfBounds
	}

	set := wf.cell(c)
	total := 0
	for i := range wf.tiles {
		if set.has(i) {
			total += wf.weights[i]
		}
	}
	if total == 0 {
		return ErrContradiction
	}

	remainder := wf.rng.Float64() * float64(total)
	chosen := -1
	for i := range wf.tiles {
		if !set.has(i) {
			continue
		}
		chosen = i
		remainder -= float64(wf.weights[i])
		if remainder < 0 {
			break
		}
	}
	set.keepOnly(chosen)

	return nil
}

// Constrain removes tile from the possibility set at c. The tile must be
// currently present; removing an absent tile (including one outside the
// universe) returns ErrTileAbsent. Constrain may leave the set empty —
// detecting that contradiction is the caller's concern.
// Complexity: O(1).
func (wf *Wavefunction) Constrain(c Coord, tile Tile) error {
	if !wf.InBounds(c) {
		return ErrOutOfBounds
	}

	i, ok := wf.index[tile]
	if !ok {
		return ErrTileAbsent
	}
	set := wf.cell(c)
	if !set.has(i) {
		return ErrTileAbsent
	}
	set.remove(i)

	return nil
}
