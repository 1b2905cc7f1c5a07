package wfc

// CompatibilityOracle answers whether two tiles may be adjacent in a given
// direction. It is a pure lookup over the rule set supplied at
// construction and carries no mutable state, so a single instance may be
// shared read-only across any number of concurrent Models.
type CompatibilityOracle struct {
	allowed map[Adjacency]struct{}
}

// NewCompatibilityOracle builds an oracle from a list of adjacency rules.
// Duplicate rules collapse into one entry.
// Complexity: O(len(rules)) time and memory.
func NewCompatibilityOracle(rules []Adjacency) *CompatibilityOracle {
	allowed := make(map[Adjacency]struct{}, len(rules))
	for _, r := range rules {
		allowed[r] = struct{}{}
	}

	return &CompatibilityOracle{allowed: allowed}
}

// Check reports whether tile b may appear in direction d from a cell
// holding tile a. Absence of a rule simply means incompatible, including
// tiles the oracle has never seen.
// Complexity: O(1).
func (o *CompatibilityOracle) Check(a, b Tile, d Direction) bool {
	_, ok := o.allowed[Adjacency{A: a, B: b, Dir: d}]

	return ok
}

// Len returns the number of distinct adjacency rules the oracle holds.
func (o *CompatibilityOracle) Len() int {
	return len(o.allowed)
}
