package parsimony

import (
	"sort"
	"strconv"
	"strings"
)

// VertexInfo identifies a constraint-graph vertex: an ordered sequence of
// positions, one per interleaved example. Equality and ordering are
// lexicographic on the sequence.
type VertexInfo []int

// Key returns a canonical string encoding suitable for use as a map key.
func (v VertexInfo) Key() string {
	parts := make([]string, len(v))
	for i, p := range v {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// Equal reports whether v and other hold the same position sequence.
func (v VertexInfo) Equal(other VertexInfo) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// Less implements the lexicographic total order over VertexInfo.
func (v VertexInfo) Less(other VertexInfo) bool {
	for i := 0; i < len(v) && i < len(other); i++ {
		if v[i] != other[i] {
			return v[i] < other[i]
		}
	}
	return len(v) < len(other)
}

// Concat returns a new VertexInfo with other's positions appended after
// v's.
func (v VertexInfo) Concat(other VertexInfo) VertexInfo {
	out := make(VertexInfo, 0, len(v)+len(other))
	out = append(out, v...)
	out = append(out, other...)
	return out
}

// Clone returns a copy of v.
func (v VertexInfo) Clone() VertexInfo {
	out := make(VertexInfo, len(v))
	copy(out, v)
	return out
}

// EdgeInfo is a sorted, duplicate-free set of symbols carried by a
// constraint-graph edge.
type EdgeInfo []int

// NewEdgeInfo builds an EdgeInfo from the given symbols, sorting and
// deduplicating them.
func NewEdgeInfo(syms ...int) EdgeInfo {
	e := EdgeInfo(append([]int(nil), syms...))
	sort.Ints(e)
	return dedupSorted(e)
}

// insertSorted returns e with sym inserted in sorted position, without
// duplicating an existing entry.
func (e EdgeInfo) insertSorted(sym int) EdgeInfo {
	idx := sort.SearchInts(e, sym)
	if idx < len(e) && e[idx] == sym {
		return e
	}
	out := make(EdgeInfo, len(e)+1)
	copy(out, e[:idx])
	out[idx] = sym
	copy(out[idx+1:], e[idx:])
	return out
}

func dedupSorted(e EdgeInfo) EdgeInfo {
	if len(e) < 2 {
		return e
	}
	out := e[:1]
	for _, v := range e[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// intersectSorted returns the sorted-set intersection of two EdgeInfos.
func intersectSorted(a, b EdgeInfo) EdgeInfo {
	var out EdgeInfo
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// withoutSet returns e with every symbol present in the given set removed,
// preserving sort order.
func (e EdgeInfo) withoutSet(set map[int]bool) EdgeInfo {
	var out EdgeInfo
	for _, s := range e {
		if !set[s] {
			out = append(out, s)
		}
	}
	return out
}

// edgeRecord is an arena-allocated directed edge: source and target
// vertex indices plus its symbol label set.
type edgeRecord struct {
	from, to int
	symbols  EdgeInfo
	deleted  bool
}

// vertexRecord is an arena-allocated vertex: its identity plus the indices
// of its incident edges.
type vertexRecord struct {
	info VertexInfo
	out  []int // indices into graph.edges
	in   []int // indices into graph.edges
}

// graph is the index-addressed directed multigraph underlying a
// ConstraintState, per the arena + dense index design described in
// SPEC_FULL.md's design notes. Vertex identity is its slice index; a
// vertex "removed" by pruning keeps its slot (so stale indices never
// dangle) but is dropped from index and has its incidence cleared.
type graph struct {
	vertices []vertexRecord
	edges    []edgeRecord
	index    map[string]int // VertexInfo.Key() -> vertex index, active vertices only
}

func newGraph() *graph {
	return &graph{index: map[string]int{}}
}

// hasVertex reports whether v is currently an active (addressable)
// vertex.
func (g *graph) hasVertex(v VertexInfo) bool {
	_, ok := g.index[v.Key()]
	return ok
}

// vertexIndex returns the arena index of v if it is active.
func (g *graph) vertexIndex(v VertexInfo) (int, bool) {
	idx, ok := g.index[v.Key()]
	return idx, ok
}

// ensureVertex returns the index of v, creating it if absent.
func (g *graph) ensureVertex(v VertexInfo) int {
	if idx, ok := g.index[v.Key()]; ok {
		return idx
	}
	idx := len(g.vertices)
	g.vertices = append(g.vertices, vertexRecord{info: v.Clone()})
	g.index[v.Key()] = idx
	return idx
}

// addEdge creates a new edge from -> to carrying syms (possibly empty) and
// returns its arena index.
func (g *graph) addEdge(from, to int, syms EdgeInfo) int {
	idx := len(g.edges)
	g.edges = append(g.edges, edgeRecord{from: from, to: to, symbols: syms})
	g.vertices[from].out = append(g.vertices[from].out, idx)
	g.vertices[to].in = append(g.vertices[to].in, idx)
	return idx
}

// outEdges returns the indices of idx's live outgoing edges.
func (g *graph) outEdges(idx int) []int {
	var out []int
	for _, e := range g.vertices[idx].out {
		if !g.edges[e].deleted {
			out = append(out, e)
		}
	}
	return out
}

// inEdges returns the indices of idx's live incoming edges.
func (g *graph) inEdges(idx int) []int {
	var out []int
	for _, e := range g.vertices[idx].in {
		if !g.edges[e].deleted {
			out = append(out, e)
		}
	}
	return out
}

// inDegree returns the number of live incoming edges of idx.
func (g *graph) inDegree(idx int) int { return len(g.inEdges(idx)) }

// degree returns the total number of live incident edges (in + out) of
// idx.
func (g *graph) degree(idx int) int { return len(g.outEdges(idx)) + len(g.inEdges(idx)) }

// removeVertex disconnects idx: every incident edge is marked deleted and
// idx is dropped from the index map. idx's slot in g.vertices remains
// reserved (so no other index is invalidated), but it is no longer
// reachable through the VertexInfo map, matching the "clear rather than
// reclaim" semantics described in SPEC_FULL.md.
func (g *graph) removeVertex(idx int) {
	for _, e := range g.vertices[idx].out {
		g.edges[e].deleted = true
	}
	for _, e := range g.vertices[idx].in {
		g.edges[e].deleted = true
	}
	g.vertices[idx].out = nil
	g.vertices[idx].in = nil
	delete(g.index, g.vertices[idx].info.Key())
}

// activeVertices returns the indices of all currently addressable
// vertices, sorted by VertexInfo for deterministic iteration.
func (g *graph) activeVertices() []int {
	out := make([]int, 0, len(g.index))
	for _, idx := range g.index {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool {
		return g.vertices[out[i]].info.Less(g.vertices[out[j]].info)
	})
	return out
}

// roots returns the active vertices with zero live in-edges, sorted by
// VertexInfo.
func (g *graph) roots() []int {
	var out []int
	for _, idx := range g.activeVertices() {
		if g.inDegree(idx) == 0 {
			out = append(out, idx)
		}
	}
	return out
}
