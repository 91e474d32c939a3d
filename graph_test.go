package parsimony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexInfoEqualAndLess(t *testing.T) {
	a := VertexInfo{0, 1}
	b := VertexInfo{0, 1}
	c := VertexInfo{0, 2}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
}

func TestVertexInfoConcat(t *testing.T) {
	a := VertexInfo{1, 2}
	b := VertexInfo{3}
	assert.Equal(t, VertexInfo{1, 2, 3}, a.Concat(b))
}

func TestNewEdgeInfoSortsAndDedups(t *testing.T) {
	e := NewEdgeInfo(3, 1, 2, 1)
	assert.Equal(t, EdgeInfo{1, 2, 3}, e)
}

func TestIntersectSorted(t *testing.T) {
	a := NewEdgeInfo(1, 2, 3)
	b := NewEdgeInfo(2, 3, 4)
	assert.Equal(t, EdgeInfo{2, 3}, intersectSorted(a, b))

	c := NewEdgeInfo(5, 6)
	assert.Empty(t, intersectSorted(a, c))
}

func TestEdgeInfoWithoutSet(t *testing.T) {
	e := NewEdgeInfo(1, 2, 3)
	out := e.withoutSet(map[int]bool{2: true})
	assert.Equal(t, EdgeInfo{1, 3}, out)
}

func TestGraphEnsureVertexIsIdempotent(t *testing.T) {
	g := newGraph()
	idx1 := g.ensureVertex(VertexInfo{0, 0})
	idx2 := g.ensureVertex(VertexInfo{0, 0})
	assert.Equal(t, idx1, idx2)
}

func TestGraphAddEdgeAndDegree(t *testing.T) {
	g := newGraph()
	a := g.ensureVertex(VertexInfo{0})
	b := g.ensureVertex(VertexInfo{1})
	g.addEdge(a, b, NewEdgeInfo(7))

	require.Len(t, g.outEdges(a), 1)
	require.Len(t, g.inEdges(b), 1)
	assert.Equal(t, 0, g.inDegree(a))
	assert.Equal(t, 1, g.inDegree(b))
}

func TestGraphRemoveVertexClearsIncidenceAndIndex(t *testing.T) {
	g := newGraph()
	a := g.ensureVertex(VertexInfo{0})
	b := g.ensureVertex(VertexInfo{1})
	g.addEdge(a, b, nil)

	g.removeVertex(b)

	assert.False(t, g.hasVertex(VertexInfo{1}))
	assert.Empty(t, g.outEdges(a))
}

func TestGraphRoots(t *testing.T) {
	g := newGraph()
	a := g.ensureVertex(VertexInfo{0})
	b := g.ensureVertex(VertexInfo{1})
	c := g.ensureVertex(VertexInfo{2})
	g.addEdge(a, b, nil)
	g.addEdge(b, c, nil)

	roots := g.roots()
	require.Len(t, roots, 1)
	assert.Equal(t, a, roots[0])
}
