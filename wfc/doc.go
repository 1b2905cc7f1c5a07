// Package wfc implements the Wave Function Collapse algorithm over a 2-D
// grid of discrete tiles: every cell starts in a superposition of all
// tiles and is driven, by weighted-random collapse and constraint
// propagation, to a single tile that is locally consistent with all of
// its neighbors.
//
// What:
//
//   - CompatibilityOracle answers "may tile B sit in direction D from
//     tile A?" — pure lookup over (tileA, tileB, direction) triples.
//   - Wavefunction owns the per-cell possibility sets (fixed-capacity
//     bitsets over a frozen tile universe) plus the global tile weights,
//     and supports entropy measurement, weighted collapse, and tile
//     elimination.
//   - Model drives the loop: lowest-entropy cell → collapse → propagate
//     to a fixed point, until every cell is a singleton.
//
// Why:
//
//   - Terrain/map generation: output resembling a small example patch.
//   - Texture synthesis over symbolic tiles.
//   - Any placement problem with pairwise directional adjacency rules.
//
// Guarantees and non-guarantees:
//
//   - Local consistency: on success, every adjacent pair of output tiles
//     satisfies the oracle's relation.
//   - Monotonicity: possibility sets only ever shrink during a run.
//   - No global consistency or completeness: the algorithm may paint
//     itself into a corner; that surfaces as ErrContradiction, with no
//     backtracking or restart.
//   - Reproducibility: all randomness flows from Options.Seed.
//
// Complexity:
//
//   - Run: at most W×H collapse steps; each propagate call is
//     O(W×H×T²×d) worst case (T = tile count, d = 4 directions).
//   - Oracle.Check: O(1). Entropy: O(T). Collapse: O(T).
//
// Errors:
//
//   - ErrNotCollapsed: singleton read of an undetermined cell.
//   - ErrTileAbsent: constraining with a tile not currently possible.
//   - ErrContradiction: a cell's possibility set became empty.
//   - ErrBadDimensions, ErrNoWeights, ErrBadWeight, ErrNilOracle,
//     ErrOutOfBounds: construction and accessor validation.
package wfc
