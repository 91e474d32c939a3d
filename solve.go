package parsimony

import "github.com/parsimony-ide/parsimony-frontend/internal/telemetry"

// maxShortestPathIterations bounds the frontier-extension BFS used by
// SolveShortest/SolveShortestNonUnit. A graph with no start-to-end path
// returns before the search begins; the cap only ends a search whose
// shortest path is longer than this many edges, and the result then
// reports Solution.Truncated.
const maxShortestPathIterations = 100

// Solution holds every tied shortest path between a ConstraintState's
// StartNode and EndNode: Raws is the vertex sequence of each path, Paths
// the parallel sequence of edge symbol sets consumed between consecutive
// vertices.
type Solution struct {
	Raws      [][]VertexInfo
	Paths     [][]EdgeInfo
	Truncated bool
}

// GetRaws returns the vertex sequence of every solution path.
func (s *Solution) GetRaws() [][]VertexInfo { return s.Raws }

// GetPaths returns the edge-symbol-set sequence of every solution path.
func (s *Solution) GetPaths() [][]EdgeInfo { return s.Paths }

// NumPaths returns the number of tied shortest paths found.
func (s *Solution) NumPaths() int { return len(s.Raws) }

// Compress collapses all tied solution paths into one sequence, one
// EdgeInfo per position, the sorted-set union of that position's symbol
// across every path. Positions beyond the length of a shorter path are
// skipped for that path; in practice all solution paths share the same
// length since they are equally shortest.
func (s *Solution) Compress() []EdgeInfo {
	if len(s.Paths) == 0 {
		return nil
	}
	n := len(s.Paths[0])
	for _, p := range s.Paths {
		if len(p) > n {
			n = len(p)
		}
	}
	out := make([]EdgeInfo, n)
	for pos := 0; pos < n; pos++ {
		var merged EdgeInfo
		for _, p := range s.Paths {
			if pos >= len(p) {
				continue
			}
			for _, sym := range p[pos] {
				merged = merged.insertSorted(sym)
			}
		}
		out[pos] = merged
	}
	return out
}

// GetCompressedPath is an alias for Compress, named to match the
// accessor surface a binding layer expects alongside GetRaws/GetPaths.
func (s *Solution) GetCompressedPath() []EdgeInfo { return s.Compress() }

// Print writes every solution path, and the compressed path, through the
// ambient telemetry logger, gated on debug level.
func (s *Solution) Print() {
	log := telemetry.Default()
	if !log.DebugEnabled() {
		return
	}
	for n, vis := range s.Raws {
		log.Debug("solution-path", "n", n, "vertices", vis, "edges", s.Paths[n])
	}
	if s.Truncated {
		log.Debug("solution-truncated")
	}
	log.Debug("solution-compressed", "path", s.Compress())
}

// partialPath is a frontier entry in the shortest-path search: the
// vertex indices visited so far and the edge symbol sets consumed
// between them.
type partialPath struct {
	vertices []int
	edges    []EdgeInfo
}

// SolveShortest finds every tied shortest path from c's StartNode to its
// EndNode, considering every live edge. If either node is not a vertex
// of c's graph, or no path exists, the returned Solution has zero paths.
func SolveShortest(c *ConstraintState) *Solution {
	return shortestPaths(c)
}

// SolveShortestNonUnit strips the unit edge, if any, then invokes
// SolveShortest. The search then ignores any direct start-to-end edge
// that carries no symbol other than terminals.
//
// Stripping mutates c's graph: this is the same one-time mutation the
// original's remove_unit_paths performs, not a search-time filter, so a
// second SolveShortestNonUnit call (or a SolveShortest call) on the same
// c observes the edge already gone.
func SolveShortestNonUnit(c *ConstraintState) *Solution {
	removeUnitEdge(c)
	return SolveShortest(c)
}

// removeUnitEdge finds the direct edge (or edges) from c's start node to
// its end node whose symbols, after discarding every symbol marked as a
// terminal, leaves nothing -- i.e. every remaining label is a terminal,
// so the edge is a "unit path" contributing no non-terminal derivation
// step -- and deletes it. Any endpoint whose total degree drops to zero
// afterward is removed from the vertex map and cleared.
func removeUnitEdge(c *ConstraintState) {
	g := c.g
	srcIdx, ok := g.vertexIndex(c.StartNode())
	if !ok {
		return
	}
	snkIdx, ok := g.vertexIndex(c.EndNode())
	if !ok {
		return
	}

	for _, eidx := range g.outEdges(srcIdx) {
		e := g.edges[eidx]
		if e.to != snkIdx {
			continue
		}
		if len(e.symbols.withoutSet(c.terminals)) != 0 {
			continue
		}
		g.edges[eidx].deleted = true
	}

	if g.degree(srcIdx) == 0 {
		g.removeVertex(srcIdx)
	}
	if g.degree(snkIdx) == 0 {
		g.removeVertex(snkIdx)
	}
}

// shortestPaths implements §4.7: first restrict the search to the
// induced subgraph of vertices lying on some start-to-end walk (the same
// reachability computation RemoveNonSolutionNodes uses, applied here as
// a non-mutating filter rather than against c's own graph), then run the
// frontier-based path-extension BFS over that restriction. At each
// level every frontier path is extended by one live edge whose target
// survives the restriction; as soon as a level produces any path
// reaching the end node, the search stops, since every path extended at
// the same level is tied for shortest.
func shortestPaths(c *ConstraintState) *Solution {
	g := c.g
	startVI, endVI := c.StartNode(), c.EndNode()

	startIdx, ok := g.vertexIndex(startVI)
	if !ok {
		return &Solution{}
	}
	endIdx, ok := g.vertexIndex(endVI)
	if !ok {
		return &Solution{}
	}
	if startIdx == endIdx {
		return &Solution{Raws: [][]VertexInfo{{startVI}}, Paths: [][]EdgeInfo{{}}}
	}

	kept, ok := onPathVertices(g, startIdx, endIdx)
	if !ok {
		return &Solution{}
	}

	frontier := []partialPath{{vertices: []int{startIdx}}}
	var solutions []partialPath

	for iter := 0; iter < maxShortestPathIterations; iter++ {
		if len(frontier) == 0 {
			break
		}
		var next []partialPath
		foundThisLevel := false
		for _, p := range frontier {
			cur := p.vertices[len(p.vertices)-1]
			for _, eidx := range g.outEdges(cur) {
				e := g.edges[eidx]
				if !kept[e.to] {
					continue
				}
				np := partialPath{
					vertices: append(append([]int(nil), p.vertices...), e.to),
					edges:    append(append([]EdgeInfo(nil), p.edges...), e.symbols),
				}
				if e.to == endIdx {
					solutions = append(solutions, np)
					foundThisLevel = true
				} else {
					next = append(next, np)
				}
			}
		}
		frontier = next
		if foundThisLevel {
			break
		}
	}

	truncated := len(solutions) == 0 && len(frontier) > 0
	if truncated {
		telemetry.Default().Warn("shortest-path search hit iteration cap without finding a path",
			"cap", maxShortestPathIterations)
	}

	sol := &Solution{Truncated: truncated}
	for _, p := range solutions {
		vis := make([]VertexInfo, len(p.vertices))
		for i, idx := range p.vertices {
			vis[i] = g.vertices[idx].info
		}
		sol.Raws = append(sol.Raws, vis)
		sol.Paths = append(sol.Paths, p.edges)
	}
	return sol
}
