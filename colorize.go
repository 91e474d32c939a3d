package parsimony

import (
	"github.com/pkg/errors"

	"github.com/parsimony-ide/parsimony-frontend/internal/telemetry"
)

// Colorizer owns the 2-D tables C[i][l] (ColorSet) and S[i][l] (Score),
// populated from a completed or partially completed CYK table plus a set
// of ignored non-terminals.
//
// Colorizer reads its CYK's table but never mutates it; the CYK must not
// be mutated for the lifetime of the Colorizer either, per the same
// single-threaded cooperative contract CYK itself documents.
type Colorizer struct {
	cyk  *CYK
	m    int
	lmax int

	ignored map[int]bool

	colors [][]*ColorSet // [i][l]
	scores [][]Score     // [i][l]
}

// NewColorizer creates a Colorizer over the given CYK table.
func NewColorizer(cyk *CYK) *Colorizer {
	m, lmax := cyk.m, cyk.lmax
	colors := make([][]*ColorSet, m)
	scores := make([][]Score, m)
	for i := 0; i < m; i++ {
		colors[i] = make([]*ColorSet, lmax)
		scores[i] = make([]Score, lmax)
		for l := 0; l < lmax; l++ {
			colors[i][l] = NewColorSet()
		}
	}
	return &Colorizer{cyk: cyk, m: m, lmax: lmax, ignored: map[int]bool{}, colors: colors, scores: scores}
}

// Ignore marks nt as excluded from coloring. Must be called before
// Colorize/InitColorizePartial.
func (z *Colorizer) Ignore(nt int) {
	z.ignored[nt] = true
}

func (z *Colorizer) isIgnored(nt int) bool { return z.ignored[nt] }

func (z *Colorizer) inRange(i, l int) bool {
	return i >= 0 && i < z.m && l >= 0 && l < z.lmax
}

// GetColors returns C[i][l].
func (z *Colorizer) GetColors(i, l int) (*ColorSet, error) {
	if !z.inRange(i, l) {
		return nil, errors.Wrapf(ErrOutOfRange, "colorizer: get colors (%d,%d) out of range", i, l)
	}
	return z.colors[i][l], nil
}

// GetScore returns S[i][l].
func (z *Colorizer) GetScore(i, l int) (Score, error) {
	if !z.inRange(i, l) {
		return Score{}, errors.Wrapf(ErrOutOfRange, "colorizer: get score (%d,%d) out of range", i, l)
	}
	return z.scores[i][l], nil
}

// Colorize runs the full sweep, for all l in [2, lmax) in increasing order,
// after initializing l=1.
func (z *Colorizer) Colorize() {
	z.InitColorizePartial()
	for l := 2; l < z.lmax; l++ {
		z.colorizeSpanLength(l)
	}
}

// InitColorizePartial performs only the l=1 initialization, in preparation
// for a ColorizePartial loop.
func (z *Colorizer) InitColorizePartial() {
	for i := 0; i < z.m; i++ {
		for nt := 1; nt < z.cyk.n; nt++ {
			ok, err := z.cyk.GetCYK(nt, i, 1)
			if err != nil || !ok || z.isIgnored(nt) {
				continue
			}
			z.colors[i][1].Add(nt, i, 1)
			z.scores[i][1] = Score{Coverage: 1, Largest: 1, Num: -1}
		}
	}
}

// ColorizePartial runs the sweep for ChunkSize successive l values starting
// at l0, returning 0 when exhausted, else l0+ChunkSize.
func (z *Colorizer) ColorizePartial(l0 int) int {
	end := l0 + ChunkSize
	if end > z.lmax {
		end = z.lmax
	}
	for l := l0; l < end; l++ {
		z.colorizeSpanLength(l)
	}
	if end >= z.lmax {
		return 0
	}
	return end
}

func (z *Colorizer) colorizeSpanLength(l int) {
	for i := 0; i+l <= z.m; i++ {
		z.computeColor(i, l)
	}
}

// computeColor fills C[i][l]/S[i][l] per the "full"/"partial" rule: if some
// non-ignored non-terminal fully derives the span, that wins outright;
// otherwise the best-scoring split (ties included) is merged in.
func (z *Colorizer) computeColor(i, l int) {
	var full []int
	for nt := 1; nt < z.cyk.n; nt++ {
		ok, err := z.cyk.GetCYK(nt, i, l)
		if err != nil || !ok || z.isIgnored(nt) {
			continue
		}
		full = append(full, nt)
	}

	if len(full) > 0 {
		for _, nt := range full {
			z.colors[i][l].Add(nt, i, l)
		}
		z.scores[i][l] = Score{Coverage: l, Largest: l, Num: -1}
		return
	}

	bestScore := Score{Coverage: 0, Largest: 0, Num: -1_000_000}
	var best []*ColorSet
	for k := 1; k < l; k++ {
		left := z.scores[i][k]
		right := z.scores[i+k][l-k]
		combined := Score{
			Coverage: left.Coverage + right.Coverage,
			Largest:  maxInt(left.Largest, right.Largest),
			Num:      left.Num + right.Num,
		}

		switch {
		case combined.Better(bestScore):
			bestScore = combined
			best = nil
			if z.colors[i][k].Size() > 0 {
				best = append(best, z.colors[i][k])
			}
			if z.colors[i+k][l-k].Size() > 0 {
				best = append(best, z.colors[i+k][l-k])
			}
		case combined.Equal(bestScore):
			if z.colors[i][k].Size() > 0 {
				best = append(best, z.colors[i][k])
			}
			if z.colors[i+k][l-k].Size() > 0 {
				best = append(best, z.colors[i+k][l-k])
			}
		}
	}

	for _, cs := range best {
		z.colors[i][l].Merge(cs)
	}
	z.scores[i][l] = bestScore
}

// Print writes every non-empty C[i][l]/S[i][l] entry through the ambient
// telemetry logger, gated on debug level.
func (z *Colorizer) Print() {
	log := telemetry.Default()
	if !log.DebugEnabled() {
		return
	}
	for i := 0; i < z.m; i++ {
		for l := 0; l < z.lmax; l++ {
			if z.colors[i][l].Size() == 0 {
				continue
			}
			log.Debug("color-cell", "i", i, "l", l,
				"colors", z.colors[i][l].Colors(), "score", z.scores[i][l])
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
