package wfc

import "math/bits"

// wordBits is the width of one bitset word.
const wordBits = 64

// tileSet is a fixed-capacity bitset over the tile universe. Bit i stands
// for the tile at index i of the Wavefunction's fixed enumeration order.
// Possibility sets only ever shrink, so tileSet offers no bulk re-add.
type tileSet []uint64

// newFullTileSet returns a set with bits 0..n-1 all set.
// Complexity: O(n/64).
func newFullTileSet(n int) tileSet {
	s := make(tileSet, (n+wordBits-1)/wordBits)
	for i := 0; i < n; i++ {
		s[i/wordBits] |= 1 << uint(i%wordBits)
	}

	return s
}

// has reports whether tile index i is in the set.
// Complexity: O(1).
func (s tileSet) has(i int) bool {
	return s[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// remove clears tile index i. Removing an absent index is a no-op;
// callers check has first when absence is an error.
// Complexity: O(1).
func (s tileSet) remove(i int) {
	s[i/wordBits] &^= 1 << uint(i%wordBits)
}

// keepOnly reduces the set to the single tile index i.
// Complexity: O(len(s)).
func (s tileSet) keepOnly(i int) {
	for w := range s {
		s[w] = 0
	}
	s[i/wordBits] = 1 << uint(i%wordBits)
}

// count returns the number of tiles in the set.
// Complexity: O(len(s)).
func (s tileSet) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}

	return n
}

// single returns the sole tile index when the set is a singleton,
// or -1 otherwise.
// Complexity: O(len(s)).
func (s tileSet) single() int {
	idx, seen := -1, 0
	for w, word := range s {
		c := bits.OnesCount64(word)
		if c == 0 {
			continue
		}
		seen += c
		if seen > 1 {
			return -1
		}
		idx = w*wordBits + bits.TrailingZeros64(word)
	}
	if seen != 1 {
		return -1
	}

	return idx
}
