package parsimony

import "github.com/pkg/errors"

// Sentinel errors returned by the core's failable mutators and
// bounds-checked accessors. Callers may test for these with errors.Is.
var (
	// ErrCapacity is returned by Grammar.Add when the left-hand-side row
	// is already full.
	ErrCapacity = errors.New("grammar: lhs row is at capacity")

	// ErrOutOfRange is returned by Grammar.Add and by the bounds-checked
	// CYK and Colorizer table accessors when an index falls outside the
	// declared shape. Indexing out of range is a caller contract
	// violation; these report it deterministically rather than leaving it
	// undefined. The ConstraintState provenance accessors do not check
	// their index and panic when it is out of range.
	ErrOutOfRange = errors.New("parsimony: index out of range")
)
