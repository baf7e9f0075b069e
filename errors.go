package changeset

import "errors"

// Errors returned by change set accessors.
var (
	// ErrIndexSpaceOverflow indicates a category holds more affected
	// positions than fit in a single index list.
	ErrIndexSpaceOverflow = errors.New("too many indices in change set")

	// ErrMalformedRanges indicates a provider returned a flat range
	// sequence with an odd number of elements.
	ErrMalformedRanges = errors.New("malformed flat range sequence")
)
