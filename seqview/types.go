// Package seqview declares the Sequence capability trait, the optional
// capability interfaces probed on backings, and the view options.
package seqview

import "iter"

// Sequence is the capability set a backing collection must satisfy to be
// wrapped by a View: a length, indexed read access, and membership testing.
// Satisfaction is checked by the type system; the only residual runtime
// check is the nil guard performed by New.
type Sequence[T any] interface {
	// Len returns the number of elements currently in the sequence.
	Len() int

	// At returns the element at position i, or ErrIndexOutOfRange (or the
	// backing's own out-of-range failure) when i is invalid.
	At(i int) (T, error)

	// Contains reports whether v occurs in the sequence, using the
	// sequence's own notion of element equality.
	Contains(v T) bool
}

// Iterable is the optional forward-iteration capability. When a backing
// implements it, View.All delegates instead of synthesizing iteration
// from Len and At.
type Iterable[T any] interface {
	// All returns a restartable forward iterator over the elements.
	All() iter.Seq[T]
}

// Reversible is the optional reverse-iteration capability. A backing that
// does not implement it makes View.Backward fail with ErrNotReversible.
type Reversible[T any] interface {
	// Backward returns a restartable iterator from last element to first.
	Backward() iter.Seq[T]
}

// Searcher is the optional value-search capability. When present, View
// delegates Index and Count to it; otherwise the view scans with its own
// equality.
//
// Bounds are half-open [start, stop) positions, already normalized to the
// sequence length by the caller.
type Searcher[T any] interface {
	// Index returns the first position of v within [start, stop).
	Index(v T, start, stop int) (int, error)

	// Count returns the number of occurrences of v within [start, stop).
	Count(v T, start, stop int) int
}

// Equaler is the optional equality capability: the backing sequence's own
// equality semantics, used by View.EqualTo when available.
type Equaler[T any] interface {
	// EqualTo reports whether the sequence compares equal to other,
	// element by element.
	EqualTo(other Sequence[T]) bool
}

// Option configures a View at construction time.
type Option[T any] func(*View[T])

// WithEqual supplies the element equality used for scan-based Index and
// Count, snapshot views, and EqualTo whenever the backing exposes no
// Searcher or Equaler capability of its own. Without it the view falls
// back to deep structural comparison.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(v *View[T]) { v.eq = eq }
}
