package parsimony

import (
	"fmt"

	"github.com/parsimony-ide/parsimony-frontend/internal/telemetry"
)

// ConstraintState is the graph-and-provenance bundle representing all
// derivations of a single example, or of a joint constraint produced by
// intersecting several of them.
//
// It owns a Provenance, a directed multigraph whose vertices are position
// tuples (VertexInfo) and whose edges are labelled with symbol sets
// (EdgeInfo), and a set of symbols designated as terminals.
type ConstraintState struct {
	provenance Provenance
	g          *graph
	terminals  map[int]bool
}

// NewConstraintState creates an empty ConstraintState.
func NewConstraintState() *ConstraintState {
	return &ConstraintState{g: newGraph(), terminals: map[int]bool{}}
}

// AddProvenance appends a provenance element. It has no effect on the
// graph.
func (c *ConstraintState) AddProvenance(sampleID, nt, i, l int) {
	c.provenance = append(c.provenance, ProvenanceElement{SampleID: sampleID, NT: nt, I: i, L: l})
}

// AddEdge creates both endpoints if absent and adds a new unlabelled
// directed edge from -> to. The graph is a multigraph: calling AddEdge
// again for the same pair adds a second parallel edge.
func (c *ConstraintState) AddEdge(from, to VertexInfo) {
	fromIdx := c.g.ensureVertex(from)
	toIdx := c.g.ensureVertex(to)
	c.g.addEdge(fromIdx, toIdx, nil)
}

// AddEdgeSym requires both from and to to already be vertices of the
// graph; if either is absent, AddEdgeSym silently does nothing. This is a
// documented precondition, not an error: intersection and pruning both
// rely on not being able to re-introduce a vertex that pruning has
// disconnected by this route.
//
// When both vertices exist, AddEdgeSym adds a new edge (parallel to any
// existing from->to edges) whose symbol list is the single-element,
// sorted list [sym].
func (c *ConstraintState) AddEdgeSym(from, to VertexInfo, sym int) {
	fromIdx, ok := c.g.vertexIndex(from)
	if !ok {
		return
	}
	toIdx, ok := c.g.vertexIndex(to)
	if !ok {
		return
	}
	c.g.addEdge(fromIdx, toIdx, NewEdgeInfo(sym))
}

// MarkAsTerminal inserts sym into the state's terminal set.
func (c *ConstraintState) MarkAsTerminal(sym int) {
	c.terminals[sym] = true
}

// IsTerminal reports whether sym has been marked as a terminal.
func (c *ConstraintState) IsTerminal(sym int) bool { return c.terminals[sym] }

// StartNode returns the VertexInfo formed by concatenating each
// provenance element's i, in provenance order. It may or may not already
// be a vertex of the graph.
func (c *ConstraintState) StartNode() VertexInfo { return c.provenance.startPositions() }

// EndNode returns the VertexInfo formed by concatenating each provenance
// element's i+l, in provenance order.
func (c *ConstraintState) EndNode() VertexInfo { return c.provenance.endPositions() }

// Empty reports whether the graph currently has no live edges -- the
// observable signal that two intersected states were jointly
// unsatisfiable, once dead-node pruning has cleared everything.
func (c *ConstraintState) Empty() bool {
	for _, e := range c.g.edges {
		if !e.deleted {
			return false
		}
	}
	return true
}

// NumProvenanceElements returns the length of the state's Provenance.
func (c *ConstraintState) NumProvenanceElements() int { return len(c.provenance) }

// GetProvenanceSampleID returns the sample_id of provenance element n.
func (c *ConstraintState) GetProvenanceSampleID(n int) int { return c.provenance[n].SampleID }

// GetProvenanceNT returns the non-terminal of provenance element n.
func (c *ConstraintState) GetProvenanceNT(n int) int { return c.provenance[n].NT }

// GetProvenanceI returns the start position of provenance element n.
func (c *ConstraintState) GetProvenanceI(n int) int { return c.provenance[n].I }

// GetProvenanceL returns the span length of provenance element n.
func (c *ConstraintState) GetProvenanceL(n int) int { return c.provenance[n].L }

// GetEdges exports the graph as three parallel sequences suitable for a
// binding layer: source position-lists, target position-lists, and edge
// symbol-lists, one entry per live edge.
func (c *ConstraintState) GetEdges() (sources, targets [][]int, syms [][]int) {
	for _, e := range c.g.edges {
		if e.deleted {
			continue
		}
		sources = append(sources, append([]int(nil), c.g.vertices[e.from].info...))
		targets = append(targets, append([]int(nil), c.g.vertices[e.to].info...))
		syms = append(syms, append([]int(nil), e.symbols...))
	}
	return
}

// Print writes a diagnostic dump of the constraint state's provenance and
// live edges through the ambient telemetry logger, gated on debug level.
func (c *ConstraintState) Print() {
	log := telemetry.Default()
	if !log.DebugEnabled() {
		return
	}
	for n, e := range c.provenance {
		log.Debug("provenance", "n", n, "sample_id", e.SampleID, "nt", e.NT, "i", e.I, "l", e.L)
	}
	sources, targets, syms := c.GetEdges()
	for i := range sources {
		log.Debug("edge", "from", fmt.Sprint(sources[i]), "to", fmt.Sprint(targets[i]), "syms", fmt.Sprint(syms[i]))
	}
}
