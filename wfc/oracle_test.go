package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wavegrid/wfc"
)

// TestCompatibilityOracle_Check verifies plain membership semantics:
// present triples are compatible, everything else (wrong direction,
// swapped tiles, unseen tiles) is not.
func TestCompatibilityOracle_Check(t *testing.T) {
	oracle := wfc.NewCompatibilityOracle([]wfc.Adjacency{
		{A: "X", B: "Y", Dir: wfc.Right},
		{A: "Y", B: "X", Dir: wfc.Left},
	})

	assert.True(t, oracle.Check("X", "Y", wfc.Right), "recorded triple must be compatible")
	assert.True(t, oracle.Check("Y", "X", wfc.Left), "recorded triple must be compatible")

	assert.False(t, oracle.Check("X", "Y", wfc.Left), "same pair, other direction must be incompatible")
	assert.False(t, oracle.Check("Y", "X", wfc.Right), "swapped pair must be incompatible")
	assert.False(t, oracle.Check("X", "X", wfc.Right), "unrecorded pair must be incompatible")
	assert.False(t, oracle.Check("Z", "Y", wfc.Right), "tiles never seen in training must be incompatible")
}

// TestCompatibilityOracle_Duplicates checks that duplicate rules collapse
// into a single entry.
func TestCompatibilityOracle_Duplicates(t *testing.T) {
	oracle := wfc.NewCompatibilityOracle([]wfc.Adjacency{
		{A: "A", B: "B", Dir: wfc.Down},
		{A: "A", B: "B", Dir: wfc.Down},
		{A: "A", B: "B", Dir: wfc.Down},
	})

	assert.Equal(t, 1, oracle.Len(), "duplicate rules must deduplicate")
	assert.True(t, oracle.Check("A", "B", wfc.Down))
}

// TestDirection_Opposite verifies each direction is the additive inverse
// of its opposite.
func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, wfc.Down, wfc.Up.Opposite())
	assert.Equal(t, wfc.Up, wfc.Down.Opposite())
	assert.Equal(t, wfc.Right, wfc.Left.Opposite())
	assert.Equal(t, wfc.Left, wfc.Right.Opposite())

	for _, d := range wfc.Directions {
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite must be an involution")
		assert.Zero(t, d.DX+d.Opposite().DX)
		assert.Zero(t, d.DY+d.Opposite().DY)
	}
}

// TestValidDirections checks edge handling: corner cells have two valid
// directions, edge cells three, interior cells four, and a 1×1 grid none.
func TestValidDirections(t *testing.T) {
	cases := []struct {
		name          string
		c             wfc.Coord
		width, height int
		want          []wfc.Direction
	}{
		{"TopLeftCorner", wfc.Coord{X: 0, Y: 0}, 3, 3, []wfc.Direction{wfc.Down, wfc.Right}},
		{"BottomRightCorner", wfc.Coord{X: 2, Y: 2}, 3, 3, []wfc.Direction{wfc.Up, wfc.Left}},
		{"TopEdge", wfc.Coord{X: 1, Y: 0}, 3, 3, []wfc.Direction{wfc.Down, wfc.Left, wfc.Right}},
		{"Interior", wfc.Coord{X: 1, Y: 1}, 3, 3, []wfc.Direction{wfc.Up, wfc.Down, wfc.Left, wfc.Right}},
		{"SingleCell", wfc.Coord{X: 0, Y: 0}, 1, 1, []wfc.Direction{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wfc.ValidDirections(tc.c, tc.width, tc.height)
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}
