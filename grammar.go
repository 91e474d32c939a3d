package parsimony

import (
	"github.com/pkg/errors"

	"github.com/parsimony-ide/parsimony-frontend/internal/telemetry"
)

// Production is a single binary CNF rule l -> r1 r2, as stored in one slot
// of Grammar's dense table.
type Production struct {
	L, R1, R2 int
}

// Grammar is a compact dense store of binary CNF productions, indexed by
// left-hand non-terminal.
//
// Rules are stored in an N x M x 3 table: row l lists up to M productions
// (l, r1, r2) for left-hand side l, and unused slots are zero-filled. The
// first zero entry in a row terminates the list -- rows never contain a
// gap followed by a further production.
type Grammar struct {
	n, m  int
	table [][][3]int
}

// NewGrammar creates a Grammar able to hold non-terminals in [0, n) with up
// to m productions per left-hand side.
func NewGrammar(n, m int) *Grammar {
	table := make([][][3]int, n)
	for l := range table {
		table[l] = make([][3]int, m)
	}
	return &Grammar{n: n, m: m, table: table}
}

// N returns the number of symbol slots the grammar was sized for.
func (g *Grammar) N() int { return g.n }

// M returns the maximum number of productions per left-hand side.
func (g *Grammar) M() int { return g.m }

// Add appends production l -> r1 r2 at the first zero slot of row l. It
// fails with ErrCapacity if row l is already full.
func (g *Grammar) Add(l, r1, r2 int) error {
	if l < 0 || l >= g.n {
		return errors.Wrapf(ErrOutOfRange, "grammar: lhs %d out of [0, %d)", l, g.n)
	}
	row := g.table[l]
	for i := range row {
		if row[i][0] == 0 && row[i][1] == 0 && row[i][2] == 0 {
			row[i] = [3]int{l, r1, r2}
			return nil
		}
	}
	return errors.Wrapf(ErrCapacity, "grammar: lhs %d row is full (m=%d)", l, g.m)
}

// ProductionsWithLHS returns the dense list of productions for a given
// left-hand non-terminal, in slot order, stopping at the first all-zero
// slot of the row. The returned slice holds only stored productions.
func (g *Grammar) ProductionsWithLHS(l int) []Production {
	if l < 0 || l >= g.n {
		return nil
	}
	row := g.table[l]
	out := make([]Production, 0, len(row))
	for _, slot := range row {
		if slot[0] == 0 && slot[1] == 0 && slot[2] == 0 {
			break
		}
		out = append(out, Production{L: slot[0], R1: slot[1], R2: slot[2]})
	}
	return out
}

// Print writes every non-empty row's productions through the ambient
// telemetry logger, gated on debug level.
func (g *Grammar) Print() {
	log := telemetry.Default()
	if !log.DebugEnabled() {
		return
	}
	for l := 0; l < g.n; l++ {
		for _, p := range g.ProductionsWithLHS(l) {
			log.Debug("production", "l", p.L, "r1", p.R1, "r2", p.R2)
		}
	}
}
