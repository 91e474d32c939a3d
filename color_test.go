package parsimony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorSetAddDeduplicates(t *testing.T) {
	cs := NewColorSet()
	cs.Add(1, 0, 2)
	cs.Add(2, 0, 1)
	cs.Add(1, 0, 2) // duplicate

	require.Equal(t, 2, cs.Size())
	assert.Equal(t, []Color{{NT: 1, I: 0, L: 2}, {NT: 2, I: 0, L: 1}}, cs.Colors())
}

func TestColorSetMergePreservesInsertionOrder(t *testing.T) {
	a := NewColorSet()
	a.Add(1, 0, 1)
	b := NewColorSet()
	b.Add(2, 1, 1)
	b.Add(1, 0, 1) // already in a

	a.Merge(b)

	assert.Equal(t, []Color{{NT: 1, I: 0, L: 1}, {NT: 2, I: 1, L: 1}}, a.Colors())
}

func TestScoreCompareOrdersByCoverageThenLargestThenNum(t *testing.T) {
	base := Score{Coverage: 3, Largest: 2, Num: -2}

	assert.True(t, Score{Coverage: 4, Largest: 0, Num: -10}.Better(base))
	assert.True(t, Score{Coverage: 3, Largest: 3, Num: -10}.Better(base))
	assert.True(t, Score{Coverage: 3, Largest: 2, Num: -1}.Better(base))
	assert.True(t, base.Equal(Score{Coverage: 3, Largest: 2, Num: -2}))
	assert.False(t, base.Better(base))
}
