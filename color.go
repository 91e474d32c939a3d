package parsimony

// Color is a single (nt, i, l) triple assigned to a span by the colorizer.
type Color struct {
	NT, I, L int
}

// ColorSet is a deduplicated, insertion-ordered list of colors. Two
// ColorSets may share the same underlying colors; there is no ownership
// coupling between them.
type ColorSet struct {
	colors []Color
	seen   map[Color]bool
}

// NewColorSet creates an empty ColorSet.
func NewColorSet() *ColorSet {
	return &ColorSet{seen: map[Color]bool{}}
}

// Add inserts (nt, i, l) if not already present, preserving insertion
// order.
func (cs *ColorSet) Add(nt, i, l int) {
	c := Color{NT: nt, I: i, L: l}
	if cs.seen[c] {
		return
	}
	cs.seen[c] = true
	cs.colors = append(cs.colors, c)
}

// Merge inserts every color of other into cs, deduplicated.
func (cs *ColorSet) Merge(other *ColorSet) {
	if other == nil {
		return
	}
	for _, c := range other.colors {
		cs.Add(c.NT, c.I, c.L)
	}
}

// Size returns the number of distinct colors in the set.
func (cs *ColorSet) Size() int { return len(cs.colors) }

// Colors returns the colors in insertion order. The caller must not mutate
// the returned slice.
func (cs *ColorSet) Colors() []Color { return cs.colors }

// Score is a (coverage, largest, num) triple, totally ordered
// lexicographically descending on those three fields.
type Score struct {
	Coverage int
	Largest  int
	Num      int
}

// Compare returns a negative number if s is worse than other, zero if
// equal, and a positive number if s is better than other, comparing
// (Coverage, Largest, Num) in that order. This single total-order method
// replaces the original's separate better_than/equals pair, which is the
// classic place a non-strict order gets defined wrong at ties.
func (s Score) Compare(other Score) int {
	if d := s.Coverage - other.Coverage; d != 0 {
		return d
	}
	if d := s.Largest - other.Largest; d != 0 {
		return d
	}
	return s.Num - other.Num
}

// Better reports whether s strictly outranks other.
func (s Score) Better(other Score) bool { return s.Compare(other) > 0 }

// Equal reports whether s and other rank identically.
func (s Score) Equal(other Score) bool { return s.Compare(other) == 0 }
