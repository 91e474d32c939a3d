package parsimony

// ProvenanceElement records which original example parse a constraint
// state was derived from: the sample it came from, the non-terminal, and
// the span (i, l) of that derivation.
type ProvenanceElement struct {
	SampleID int
	NT       int
	I        int
	L        int
}

// Provenance is an ordered sequence of ProvenanceElement. Intersection
// concatenates two Provenances; there is no deduplication by design (see
// SPEC_FULL.md's Open Questions).
type Provenance []ProvenanceElement

// startPositions returns the i of each element, in order -- the building
// block of a ConstraintState's start node.
func (p Provenance) startPositions() VertexInfo {
	out := make(VertexInfo, len(p))
	for idx, e := range p {
		out[idx] = e.I
	}
	return out
}

// endPositions returns the i+l of each element, in order -- the building
// block of a ConstraintState's end node.
func (p Provenance) endPositions() VertexInfo {
	out := make(VertexInfo, len(p))
	for idx, e := range p {
		out[idx] = e.I + e.L
	}
	return out
}
