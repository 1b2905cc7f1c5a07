package wfc

import "math/rand"

// Model orchestrates the Wave Function Collapse algorithm: it repeatedly
// selects the lowest-entropy undetermined cell, collapses it to one
// weighted-random tile, and propagates the resulting constraints outward
// until the grid is locally consistent again, stopping once every cell
// holds exactly one tile.
//
// A Model is single-threaded and exclusively owns its Wavefunction for
// the run's lifetime; the CompatibilityOracle is read-only and may be
// shared across Models running in parallel.
type Model struct {
	width, height int
	oracle        *CompatibilityOracle
	wf            *Wavefunction
	rng           *rand.Rand
}

// NewModel constructs a Model for a width×height output grid from the
// global tile weights and a compatibility oracle. The seed in opts drives
// every random decision of the run (tile choice and entropy tie-breaks);
// opts.Seed==0 selects the fixed default seed.
//
// Returns ErrNilOracle, or any Wavefunction construction error
// (ErrBadDimensions, ErrNoWeights, ErrBadWeight).
// Complexity: O(W×H×T/64 + T).
func NewModel(width, height int, weights Weights, oracle *CompatibilityOracle, opts Options) (*Model, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}

	rng := rngFromSeed(opts.Seed)
	wf, err := NewWavefunction(width, height, weights, rng)
	if err != nil {
		return nil, err
	}

	return &Model{
		width:  width,
		height: height,
		oracle: oracle,
		wf:     wf,
		rng:    rng,
	}, nil
}

// Wavefunction exposes the Model's wavefunction for inspection. The
// caller must not mutate it while Run is in progress.
func (m *Model) Wavefunction() *Wavefunction {
	return m.wf
}

// Run collapses the Wavefunction until it is fully collapsed, then
// returns the final grid of tiles, row by row.
//
// Absent contradiction, Run performs at most W×H collapse steps: each
// iteration turns at least one multi-tile cell into a singleton and
// possibility sets never grow. A cell emptied during propagation aborts
// the run with ErrContradiction — there is no backtracking or retry.
func (m *Model) Run() ([][]Tile, error) {
	for !m.wf.IsFullyCollapsed() {
		if err := m.iterate(); err != nil {
			return nil, err
		}
	}

	return m.wf.AllCollapsed()
}

// iterate performs a single collapse step: pick the minimum-entropy
// undetermined cell, collapse it, and propagate the consequences.
func (m *Model) iterate() error {
	c := m.minEntropyCoord()
	if err := m.wf.Collapse(c); err != nil {
		return err
	}

	return m.propagate(c)
}

// minEntropyCoord scans every cell, skips the already-collapsed ones, and
// returns the coordinate with the lowest Shannon entropy. Each entropy
// value is perturbed by a small uniform jitter (−U[0,1)/1000) before
// comparison so that ties break pseudo-randomly rather than by scan
// order. Multiple equally-minimal cells are therefore chosen roughly
// uniformly across runs; do not replace the jitter with a stable sort.
//
// If no uncollapsed cell exists the origin is returned; Run never reaches
// that branch because it only iterates while not fully collapsed.
// Complexity: O(W×H×T).
func (m *Model) minEntropyCoord() Coord {
	var (
		best    Coord
		bestVal float64
		found   bool
	)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := Coord{X: x, Y: y}
			if m.wf.Remaining(c) == 1 {
				continue
			}

			entropy := m.wf.Entropy(c) - m.rng.Float64()/1000
			if !found || entropy < bestVal {
				found = true
				bestVal = entropy
				best = c
			}
		}
	}

	return best
}

// propagate runs worklist-driven constraint propagation seeded at origin,
// to a fixed point. Popping a coordinate C, it examines every valid
// grid-neighbor N in direction D: any tile t still possible at N that has
// no compatible partner among the tiles still possible at C is removed
// from N, and N re-enters the worklist. LIFO versus FIFO only changes the
// propagation path, never the fixed point.
//
// Termination is guaranteed because possibility sets are finite and only
// shrink. Emptying a neighbor's set aborts with ErrContradiction.
// Complexity: O(W×H×T²×d) worst case across one call.
func (m *Model) propagate(origin Coord) error {
	stack := []Coord{origin}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		curSet := m.wf.cell(cur)

		for _, d := range ValidDirections(cur, m.width, m.height) {
			other := Coord{X: cur.X + d.DX, Y: cur.Y + d.DY}
			otherSet := m.wf.cell(other)

			changed := false
			// Removing index i never affects indices > i, so scanning
			// ascending needs no snapshot of otherSet.
			for i := range m.wf.tiles {
				if !otherSet.has(i) {
					continue
				}

				possible := false
				for j := range m.wf.tiles {
					if curSet.has(j) && m.oracle.Check(m.wf.tiles[j], m.wf.tiles[i], d) {
						possible = true
						break
					}
				}
				if possible {
					continue
				}

				otherSet.remove(i)
				changed = true
				if otherSet.count() == 0 {
					return ErrContradiction
				}
			}
			if changed {
				stack = append(stack, other)
			}
		}
	}

	return nil
}
