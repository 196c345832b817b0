package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidConfig indicates a parameter or integration setting outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrNoTurningPoint indicates the block has no energy left to reach another
	// turning point. It is the natural end of an analytic cycle sequence.
	ErrNoTurningPoint = errors.New("dynamo: no real turning point")

	// ErrAmbiguousRoot indicates that neither or both roots of the energy
	// balance lie strictly between zero and the previous turning point.
	ErrAmbiguousRoot = errors.New("dynamo: ambiguous turning point root")
)
