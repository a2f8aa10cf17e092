package seqview

import "errors"

var (
	// ErrNilSequence indicates a view was constructed without a backing sequence.
	ErrNilSequence = errors.New("seqview: nil backing sequence")
	// ErrIndexOutOfRange indicates an integer index outside the backing's bounds.
	ErrIndexOutOfRange = errors.New("seqview: index out of range")
	// ErrValueNotFound indicates Index could not locate the requested value.
	ErrValueNotFound = errors.New("seqview: value not found in View")
	// ErrZeroStep indicates a Span or Range was constructed with step 0.
	ErrZeroStep = errors.New("seqview: step must not be zero")
	// ErrNotReversible indicates the backing sequence has no reverse-iteration capability.
	ErrNotReversible = errors.New("seqview: backing sequence does not support reverse iteration")
	// ErrTooManyBounds indicates more than two (start, stop) bounds were supplied.
	ErrTooManyBounds = errors.New("seqview: at most two bounds (start, stop) are accepted")
)
