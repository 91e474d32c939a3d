package parsimony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintStateStartEndNode(t *testing.T) {
	c := NewConstraintState()
	c.AddProvenance(0, 3, 0, 2)

	assert.Equal(t, VertexInfo{0}, c.StartNode())
	assert.Equal(t, VertexInfo{2}, c.EndNode())
}

func TestConstraintStateEmptyBeforeAndAfterEdges(t *testing.T) {
	c := NewConstraintState()
	assert.True(t, c.Empty())

	c.AddEdge(VertexInfo{0}, VertexInfo{2})
	assert.False(t, c.Empty())
}

func TestConstraintStateAddEdgeSymRequiresExistingVertices(t *testing.T) {
	c := NewConstraintState()
	// neither endpoint exists yet: silent no-op
	c.AddEdgeSym(VertexInfo{0}, VertexInfo{2}, 5)
	assert.True(t, c.Empty())

	c.AddEdge(VertexInfo{0}, VertexInfo{2})
	c.AddEdgeSym(VertexInfo{0}, VertexInfo{2}, 5)

	sources, targets, syms := c.GetEdges()
	require.Len(t, sources, 2)
	assert.Contains(t, syms, []int{5})
	assert.Contains(t, targets, []int{2})
}

func TestConstraintStateMarkAsTerminal(t *testing.T) {
	c := NewConstraintState()
	assert.False(t, c.IsTerminal(5))
	c.MarkAsTerminal(5)
	assert.True(t, c.IsTerminal(5))
}

func TestConstraintStateProvenanceAccessors(t *testing.T) {
	c := NewConstraintState()
	c.AddProvenance(7, 3, 1, 4)

	require.Equal(t, 1, c.NumProvenanceElements())
	assert.Equal(t, 7, c.GetProvenanceSampleID(0))
	assert.Equal(t, 3, c.GetProvenanceNT(0))
	assert.Equal(t, 1, c.GetProvenanceI(0))
	assert.Equal(t, 4, c.GetProvenanceL(0))
}
