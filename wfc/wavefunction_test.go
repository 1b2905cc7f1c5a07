package wfc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavegrid/wfc"
)

//----------------------------------------------------------------------------//
// Construction and accessors
//----------------------------------------------------------------------------//

// TestNewWavefunction_Errors verifies constructor validation.
func TestNewWavefunction_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		weights       wfc.Weights
		err           error
	}{
		{"ZeroWidth", 0, 3, wfc.Weights{"A": 1}, wfc.ErrBadDimensions},
		{"NegativeHeight", 3, -1, wfc.Weights{"A": 1}, wfc.ErrBadDimensions},
		{"NoWeights", 2, 2, wfc.Weights{}, wfc.ErrNoWeights},
		{"ZeroWeight", 2, 2, wfc.Weights{"A": 0}, wfc.ErrBadWeight},
		{"NegativeWeight", 2, 2, wfc.Weights{"A": 1, "B": -2}, wfc.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wfc.NewWavefunction(tc.width, tc.height, tc.weights, nil)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestWavefunction_InitialUniverse checks that every cell starts with the
// full tile universe and reads respect grid bounds.
func TestWavefunction_InitialUniverse(t *testing.T) {
	weights := wfc.Weights{"A": 1, "B": 2, "C": 3}
	wf, err := wfc.NewWavefunction(3, 2, weights, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, wf.Width())
	assert.Equal(t, 2, wf.Height())

	for y := 0; y < wf.Height(); y++ {
		for x := 0; x < wf.Width(); x++ {
			possible, pErr := wf.Possible(wfc.Coord{X: x, Y: y})
			require.NoError(t, pErr)
			assert.ElementsMatch(t, []wfc.Tile{"A", "B", "C"}, possible,
				"cell (%d,%d) must start with the full universe", x, y)
		}
	}

	_, err = wf.Possible(wfc.Coord{X: 3, Y: 0})
	assert.ErrorIs(t, err, wfc.ErrOutOfBounds)
	_, err = wf.Collapsed(wfc.Coord{X: 0, Y: -1})
	assert.ErrorIs(t, err, wfc.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Constrain and collapsed reads
//----------------------------------------------------------------------------//

// TestWavefunction_Constrain verifies removal semantics: sets shrink
// monotonically, an absent tile errors, and a cell constrained to one tile
// becomes readable as collapsed.
func TestWavefunction_Constrain(t *testing.T) {
	wf, err := wfc.NewWavefunction(2, 1, wfc.Weights{"A": 1, "B": 1, "C": 1}, nil)
	require.NoError(t, err)
	c := wfc.Coord{X: 0, Y: 0}

	_, err = wf.Collapsed(c)
	assert.ErrorIs(t, err, wfc.ErrNotCollapsed, "three possibilities must not read as collapsed")

	require.NoError(t, wf.Constrain(c, "B"))
	assert.Equal(t, 2, wf.Remaining(c))

	// Removing the same tile twice is an invariant violation.
	assert.ErrorIs(t, wf.Constrain(c, "B"), wfc.ErrTileAbsent)
	// So is removing a tile outside the universe.
	assert.ErrorIs(t, wf.Constrain(c, "Z"), wfc.ErrTileAbsent)
	assert.Equal(t, 2, wf.Remaining(c), "failed removals must not shrink the set")

	require.NoError(t, wf.Constrain(c, "C"))
	got, err := wf.Collapsed(c)
	require.NoError(t, err)
	assert.Equal(t, wfc.Tile("A"), got)

	// The sibling cell is untouched.
	assert.Equal(t, 3, wf.Remaining(wfc.Coord{X: 1, Y: 0}))
}

// TestWavefunction_AllCollapsed verifies the grid read-out: it fails while
// any cell is undetermined and is idempotent once every cell is singleton.
func TestWavefunction_AllCollapsed(t *testing.T) {
	wf, err := wfc.NewWavefunction(2, 2, wfc.Weights{"A": 1, "B": 1}, nil)
	require.NoError(t, err)

	_, err = wf.AllCollapsed()
	assert.ErrorIs(t, err, wfc.ErrNotCollapsed)
	assert.False(t, wf.IsFullyCollapsed())

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			require.NoError(t, wf.Constrain(wfc.Coord{X: x, Y: y}, "B"))
		}
	}
	assert.True(t, wf.IsFullyCollapsed())

	first, err := wf.AllCollapsed()
	require.NoError(t, err)
	second, err := wf.AllCollapsed()
	require.NoError(t, err)
	assert.Equal(t, first, second, "reading must not mutate the wavefunction")
	assert.Equal(t, [][]wfc.Tile{{"A", "A"}, {"A", "A"}}, first)
}

//----------------------------------------------------------------------------//
// Entropy
//----------------------------------------------------------------------------//

// TestWavefunction_Entropy checks the Shannon entropy formula
// ln(ΣW) − (Σ W·lnW)/ΣW on hand-computed cases.
func TestWavefunction_Entropy(t *testing.T) {
	c := wfc.Coord{X: 0, Y: 0}

	// Two equally likely tiles: ln(2) − 0 = ln 2.
	wf, err := wfc.NewWavefunction(1, 1, wfc.Weights{"A": 1, "B": 1}, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), wf.Entropy(c), 1e-12)

	// Weights {A:3, B:1}: ln(4) − (3·ln3)/4.
	wf, err = wfc.NewWavefunction(1, 1, wfc.Weights{"A": 3, "B": 1}, nil)
	require.NoError(t, err)
	want := math.Log(4) - 3*math.Log(3)/4
	assert.InDelta(t, want, wf.Entropy(c), 1e-12)

	// Uncertainty drops as the set shrinks.
	wf, err = wfc.NewWavefunction(1, 1, wfc.Weights{"A": 1, "B": 1, "C": 1}, nil)
	require.NoError(t, err)
	before := wf.Entropy(c)
	require.NoError(t, wf.Constrain(c, "C"))
	assert.Less(t, wf.Entropy(c), before, "removing a tile must lower entropy")
}

//----------------------------------------------------------------------------//
// Collapse
//----------------------------------------------------------------------------//

// TestWavefunction_Collapse verifies that collapse picks from the current
// possibility set and leaves exactly one tile.
func TestWavefunction_Collapse(t *testing.T) {
	wf, err := wfc.NewWavefunction(1, 1, wfc.Weights{"A": 1, "B": 1, "C": 1}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	c := wfc.Coord{X: 0, Y: 0}

	require.NoError(t, wf.Constrain(c, "A"))
	require.NoError(t, wf.Collapse(c))

	assert.Equal(t, 1, wf.Remaining(c))
	got, err := wf.Collapsed(c)
	require.NoError(t, err)
	assert.Contains(t, []wfc.Tile{"B", "C"}, got, "collapse must never resurrect a removed tile")
}

// TestWavefunction_Collapse_Contradiction verifies that collapsing an
// emptied cell surfaces ErrContradiction instead of corrupting state.
func TestWavefunction_Collapse_Contradiction(t *testing.T) {
	wf, err := wfc.NewWavefunction(1, 1, wfc.Weights{"A": 1}, nil)
	require.NoError(t, err)
	c := wfc.Coord{X: 0, Y: 0}

	require.NoError(t, wf.Constrain(c, "A"))
	assert.ErrorIs(t, wf.Collapse(c), wfc.ErrContradiction)
}

// TestWavefunction_StableEnumeration verifies that the frozen tile order
// depends only on the tile set, not on map iteration: two Wavefunctions
// built from the same weights enumerate identically and replay the same
// weighted-collapse walk for the same RNG stream.
func TestWavefunction_StableEnumeration(t *testing.T) {
	weights := wfc.Weights{"S": 2, "L": 5, "C": 1, "A": 3, "B": 4}
	c := wfc.Coord{X: 0, Y: 0}

	first, err := wfc.NewWavefunction(1, 1, weights, nil)
	require.NoError(t, err)
	second, err := wfc.NewWavefunction(1, 1, weights, nil)
	require.NoError(t, err)

	p1, err := first.Possible(c)
	require.NoError(t, err)
	p2, err := second.Possible(c)
	require.NoError(t, err)
	assert.Equal(t, p1, p2, "enumeration order must match across constructions")
	assert.Equal(t, []wfc.Tile{"A", "B", "C", "L", "S"}, p1, "enumeration order must be sorted")

	// Same seed, same pick — for every seed.
	for seed := int64(1); seed <= 50; seed++ {
		wfA, err := wfc.NewWavefunction(1, 1, weights, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		wfB, err := wfc.NewWavefunction(1, 1, weights, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		require.NoError(t, wfA.Collapse(c))
		require.NoError(t, wfB.Collapse(c))

		gotA, err := wfA.Collapsed(c)
		require.NoError(t, err)
		gotB, err := wfB.Collapsed(c)
		require.NoError(t, err)
		assert.Equal(t, gotA, gotB, "same seed must pick the same tile (seed %d)", seed)
	}
}

// TestWavefunction_Collapse_WeightBias runs many independent collapses of
// a {A:3, B:1} cell and checks the empirical pick ratio approaches 3:1.
// Statistical test: 2000 trials, ±0.05 tolerance on the 0.75 expectation
// (beyond five standard errors).
func TestWavefunction_Collapse_WeightBias(t *testing.T) {
	const trials = 2000
	weights := wfc.Weights{"A": 3, "B": 1}

	countA := 0
	for i := 0; i < trials; i++ {
		wf, err := wfc.NewWavefunction(1, 1, weights, rand.New(rand.NewSource(int64(i+1))))
		require.NoError(t, err)
		c := wfc.Coord{X: 0, Y: 0}
		require.NoError(t, wf.Collapse(c))
		got, err := wf.Collapsed(c)
		require.NoError(t, err)
		if got == "A" {
			countA++
		}
	}

	freq := float64(countA) / trials
	assert.InDelta(t, 0.75, freq, 0.05, "empirical frequency of A must approach weight share 3/4")
}
