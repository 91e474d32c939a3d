package parsimony

import (
	"github.com/pkg/errors"

	"github.com/parsimony-ide/parsimony-frontend/internal/telemetry"
)

// ChunkSize is the number of span-length values a chunked/partial call
// advances per invocation. It is part of the public contract: callers
// drive ParsePartial/ColorizePartial in a loop expecting exactly this much
// progress per call, so it is not configurable.
const ChunkSize = 10

// CYK owns the 3-D recognition table R[nt][i][l] for a grammar and a
// fixed-length token string, and fills it by the CYK dynamic program.
//
// R[nt][i][l] means "non-terminal nt derives the l-symbol substring
// starting at position i". The caller pre-seeds R[nt][i][1] for
// unit/singleton derivations before calling Parse or ParsePartial; Parse
// only ever fills in l >= 2.
type CYK struct {
	grammar *Grammar
	n       int // number of non-terminal slots
	m       int // length of the token string
	lmax    int // m + 1

	table [][][]bool // [nt][i][l], l in [0, lmax)
}

// NewCYK creates a CYK recognizer of the given shape over grammar. The CYK
// instance does not copy grammar; grammar must not be mutated for the
// lifetime of the CYK, and the caller must not hand the same *Grammar to a
// second CYK that will run concurrently with this one (see package docs on
// single-threaded cooperative execution).
func NewCYK(n, m int, grammar *Grammar) *CYK {
	lmax := m + 1
	table := make([][][]bool, n)
	for nt := range table {
		rows := make([][]bool, m)
		for i := range rows {
			rows[i] = make([]bool, lmax)
		}
		table[nt] = rows
	}
	return &CYK{grammar: grammar, n: n, m: m, lmax: lmax, table: table}
}

// GetLmax returns m+1, the exclusive upper bound on span lengths.
func (c *CYK) GetLmax() int { return c.lmax }

func (c *CYK) inRange(nt, i, l int) bool {
	return nt >= 0 && nt < c.n && i >= 0 && i < c.m && l >= 0 && l < c.lmax
}

// SetCYK sets R[nt][i][l] to true. Used by callers to pre-seed unit
// productions before Parse, and as the pinning mechanism described on
// CYK.match.
func (c *CYK) SetCYK(nt, i, l int) error {
	if !c.inRange(nt, i, l) {
		return errors.Wrapf(ErrOutOfRange, "cyk: set (%d,%d,%d) out of range", nt, i, l)
	}
	c.table[nt][i][l] = true
	return nil
}

// UnsetCYK clears R[nt][i][l].
func (c *CYK) UnsetCYK(nt, i, l int) error {
	if !c.inRange(nt, i, l) {
		return errors.Wrapf(ErrOutOfRange, "cyk: unset (%d,%d,%d) out of range", nt, i, l)
	}
	c.table[nt][i][l] = false
	return nil
}

// GetCYK returns R[nt][i][l].
func (c *CYK) GetCYK(nt, i, l int) (bool, error) {
	if !c.inRange(nt, i, l) {
		return false, errors.Wrapf(ErrOutOfRange, "cyk: get (%d,%d,%d) out of range", nt, i, l)
	}
	return c.table[nt][i][l], nil
}

// match computes whether non-terminal nt derives the l-symbol substring
// starting at i, by trying every production nt -> a b and every split
// point.
//
// Pinning: if R[nt][i][l] is already true on entry, match returns false
// without re-deriving. The same boolean is overloaded to mean both
// "recognized true by an earlier match/pre-seed" and "pinned, do not
// derive" -- this is the original design's ambiguous-intent aliasing
// (flagged, not resolved) carried over unchanged so pre-seeding a cell
// true before Parse excludes it from re-derivation.
func (c *CYK) match(nt, i, l int) bool {
	if c.table[nt][i][l] {
		return false
	}
	for _, p := range c.grammar.ProductionsWithLHS(nt) {
		for k := 1; k < l; k++ {
			if c.table[p.R1][i][k] && c.table[p.R2][i+k][l-k] {
				return true
			}
		}
	}
	return false
}

// Parse fills R[nt][i][l] for every l in [2, lmax), nt in [1, n), and i in
// [0, m-l], in lexicographic (l, nt, i) order.
func (c *CYK) Parse() {
	for l := 2; l < c.lmax; l++ {
		c.parseSpanLength(l)
	}
}

// ParsePartial advances the fill by exactly ChunkSize values of l starting
// at l0, and returns l0+ChunkSize if more remain, else 0. Repeatedly
// calling ParsePartial starting at 2 until it returns 0 produces the same
// table as a single call to Parse.
func (c *CYK) ParsePartial(l0 int) int {
	end := l0 + ChunkSize
	if end > c.lmax {
		end = c.lmax
	}
	for l := l0; l < end; l++ {
		c.parseSpanLength(l)
	}
	if end >= c.lmax {
		return 0
	}
	return end
}

func (c *CYK) parseSpanLength(l int) {
	for nt := 1; nt < c.n; nt++ {
		for i := 0; i+l <= c.m; i++ {
			if c.match(nt, i, l) {
				c.table[nt][i][l] = true
			}
		}
	}
}

// Print writes every set cell of R[nt][i][l] through the ambient
// telemetry logger, gated on debug level.
func (c *CYK) Print() {
	log := telemetry.Default()
	if !log.DebugEnabled() {
		return
	}
	for nt := 0; nt < c.n; nt++ {
		for i := 0; i < c.m; i++ {
			for l := 0; l < c.lmax; l++ {
				if c.table[nt][i][l] {
					log.Debug("cyk-cell", "nt", nt, "i", i, "l", l)
				}
			}
		}
	}
}
