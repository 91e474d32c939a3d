package parsimony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorizeFullSpanWins(t *testing.T) {
	_, cyk := buildABGrammar(t)
	cyk.Parse()

	z := NewColorizer(cyk)
	z.Colorize()

	colors, err := z.GetColors(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []Color{{NT: 3, I: 0, L: 2}}, colors.Colors())

	score, err := z.GetScore(0, 2)
	require.NoError(t, err)
	assert.Equal(t, Score{Coverage: 2, Largest: 2, Num: -1}, score)
}

func TestColorizeIgnoredNonTerminalFallsBackToSplit(t *testing.T) {
	_, cyk := buildABGrammar(t)
	cyk.Parse()

	z := NewColorizer(cyk)
	z.Ignore(3)
	z.Colorize()

	colors, err := z.GetColors(0, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Color{{NT: 1, I: 0, L: 1}, {NT: 2, I: 1, L: 1}}, colors.Colors())

	score, err := z.GetScore(0, 2)
	require.NoError(t, err)
	assert.Equal(t, Score{Coverage: 2, Largest: 1, Num: -2}, score)
}

func TestColorizePartialMatchesColorize(t *testing.T) {
	_, cyk := buildABGrammar(t)
	cyk.Parse()

	full := NewColorizer(cyk)
	full.Colorize()

	partial := NewColorizer(cyk)
	partial.InitColorizePartial()
	l0 := 2
	for l0 != 0 {
		l0 = partial.ColorizePartial(l0)
	}

	for i := 0; i < 2; i++ {
		for l := 0; l < 3; l++ {
			wantScore, err := full.GetScore(i, l)
			require.NoError(t, err)
			gotScore, err := partial.GetScore(i, l)
			require.NoError(t, err)
			assert.Equal(t, wantScore, gotScore, "i=%d l=%d", i, l)
		}
	}
}

func TestColorizerGetOutOfRange(t *testing.T) {
	_, cyk := buildABGrammar(t)
	z := NewColorizer(cyk)

	_, err := z.GetColors(5, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = z.GetScore(5, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
