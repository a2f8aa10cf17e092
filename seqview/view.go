package seqview

import (
	"fmt"
	"iter"
	"reflect"
)

// View is a read-only projection of a backing Sequence. It holds a
// reference, never a copy: integer access, membership and iteration are
// live and observe the backing's current state, while Slice materializes
// a frozen snapshot. The view itself is immutable and never mutates the
// backing, but it cannot prevent mutation through other references.
//
// View satisfies Sequence, Iterable and Equaler, so views nest:
// New(v) wraps an existing view like any other backing.
type View[T any] struct {
	seq Sequence[T]
	eq  func(a, b T) bool
}

// New wraps seq in a read-only view. The only runtime validation left to
// do is the nil guard; everything else the Sequence interface already
// guarantees. Returns ErrNilSequence when seq is nil.
//
// Complexity: O(1). The backing is referenced, not copied.
func New[T any](seq Sequence[T], opts ...Option[T]) (*View[T], error) {
	if seq == nil {
		return nil, ErrNilSequence
	}
	v := &View[T]{seq: seq}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Len returns the current length of the backing sequence.
func (v *View[T]) Len() int { return v.seq.Len() }

// At returns the element at position i, delegating bounds semantics to
// the backing sequence.
func (v *View[T]) At(i int) (T, error) { return v.seq.At(i) }

// Contains reports whether x occurs in the backing sequence.
func (v *View[T]) Contains(x T) bool { return v.seq.Contains(x) }

// Slice resolves sp against the current length and returns a new view over
// a freshly materialized copy of the selected elements. Unlike the view
// itself, the result is a snapshot: later mutation of the original backing
// does not change it. Returns ErrZeroStep for a zero-step span.
//
// Complexity: O(k) for k selected elements.
func (v *View[T]) Slice(sp Span) (*View[T], error) {
	start, stop, step, err := sp.Indices(v.seq.Len())
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, spanCount(start, stop, step))
	if step > 0 {
		for i := start; i < stop; i += step {
			x, err := v.seq.At(i)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
	} else {
		for i := start; i > stop; i += step {
			x, err := v.seq.At(i)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
	}

	frozen := &SliceSeq[T]{ref: &out, eq: v.elemEq()}
	return &View[T]{seq: frozen, eq: v.eq}, nil
}

// All returns a restartable iterator over the backing's elements. The
// iteration is live: it reads the backing at each step, so elements added
// or changed mid-iteration are observed. Delegates to the backing's own
// Iterable capability when present.
func (v *View[T]) All() iter.Seq[T] {
	if it, ok := v.seq.(Iterable[T]); ok {
		return it.All()
	}
	return func(yield func(T) bool) {
		for i := 0; i < v.seq.Len(); i++ {
			x, err := v.seq.At(i)
			if err != nil {
				return
			}
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator when the backing implements the
// Reversible capability, and ErrNotReversible otherwise. The capability is
// never synthesized from Len and At; absence is an explicit refusal.
func (v *View[T]) Backward() (iter.Seq[T], error) {
	r, ok := v.seq.(Reversible[T])
	if !ok {
		return nil, ErrNotReversible
	}
	return r.Backward(), nil
}

// Index returns the first position of x, searching the half-open range
// given by up to two optional bounds (start, stop; negative bounds count
// from the end). Delegates to the backing's Searcher capability when
// present, scanning otherwise. A missing value always surfaces as
// ErrValueNotFound naming the view, regardless of how the backing reports
// the failure.
func (v *View[T]) Index(x T, bounds ...int) (int, error) {
	start, stop, err := normBounds(v.seq.Len(), bounds)
	if err != nil {
		return 0, err
	}
	if s, ok := v.seq.(Searcher[T]); ok {
		i, err := s.Index(x, start, stop)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrValueNotFound, x)
		}
		return i, nil
	}

	eq := v.elemEq()
	for i := start; i < stop && i < v.seq.Len(); i++ {
		got, err := v.seq.At(i)
		if err != nil {
			return 0, err
		}
		if eq(got, x) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrValueNotFound, x)
}

// Count returns the number of occurrences of x within the optionally
// bounded half-open range, with the same bounds and delegation rules as
// Index.
func (v *View[T]) Count(x T, bounds ...int) (int, error) {
	start, stop, err := normBounds(v.seq.Len(), bounds)
	if err != nil {
		return 0, err
	}
	if s, ok := v.seq.(Searcher[T]); ok {
		return s.Count(x, start, stop), nil
	}

	eq := v.elemEq()
	n := 0
	for i := start; i < stop && i < v.seq.Len(); i++ {
		got, err := v.seq.At(i)
		if err != nil {
			return 0, err
		}
		if eq(got, x) {
			n++
		}
	}
	return n, nil
}

// EqualTo reports whether the wrapped sequence compares equal to other.
// It is the wrapped data being compared, not the wrapper: a view may equal
// a plain sequence directly. Delegates to the backing's Equaler capability
// when present, comparing element by element otherwise.
func (v *View[T]) EqualTo(other Sequence[T]) bool {
	if other == nil {
		return false
	}
	if eqr, ok := v.seq.(Equaler[T]); ok {
		return eqr.EqualTo(other)
	}
	return seqEqual[T](v.seq, other, v.elemEq())
}

// Equal reports whether two views wrap sequences that compare equal.
func (v *View[T]) Equal(other *View[T]) bool {
	if other == nil {
		return false
	}
	return v.EqualTo(other.seq)
}

// Copy returns the view itself. The view is immutable, so a shallow copy
// shares the same backing reference and there is nothing to duplicate.
func (v *View[T]) Copy() *View[T] { return v }

// DeepCopy also returns the view itself. The view never mutates its
// backing, so a deep copy is defined as identity; callers that need an
// independent copy of the data must Materialize one explicitly.
func (v *View[T]) DeepCopy() *View[T] { return v }

// Materialize copies the backing's current elements into a fresh slice,
// the explicit escape hatch for callers that want data independent of
// future mutation.
func (v *View[T]) Materialize() []T {
	out := make([]T, 0, v.seq.Len())
	for x := range v.All() {
		out = append(out, x)
	}
	return out
}

// String renders as View(<backing>), using the backing's own Stringer
// when it has one.
func (v *View[T]) String() string {
	if s, ok := v.seq.(fmt.Stringer); ok {
		return fmt.Sprintf("View(%v)", s)
	}
	return fmt.Sprintf("View(%v)", v.Materialize())
}

// elemEq resolves the element equality the view uses for scanning,
// snapshots and equality: the WithEqual option first, then the backing
// slice's own equality, then deep structural comparison.
func (v *View[T]) elemEq() func(a, b T) bool {
	if v.eq != nil {
		return v.eq
	}
	if ss, ok := v.seq.(*SliceSeq[T]); ok && ss.eq != nil {
		return ss.eq
	}
	return eqOrDeep[T](nil)
}

// normBounds validates and normalizes up to two optional (start, stop)
// search bounds against length n: negatives count from the end, and the
// result is clamped into [0, n].
func normBounds(n int, bounds []int) (start, stop int, err error) {
	if len(bounds) > 2 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrTooManyBounds, len(bounds))
	}
	start, stop = 0, n
	if len(bounds) >= 1 {
		start = bounds[0]
	}
	if len(bounds) == 2 {
		stop = bounds[1]
	}
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
		if stop < 0 {
			stop = 0
		}
	}
	if stop > n {
		stop = n
	}
	return start, stop, nil
}

// seqEqual compares two sequences element by element under eq.
func seqEqual[T any](a, b Sequence[T], eq func(a, b T) bool) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		x, errA := a.At(i)
		y, errB := b.At(i)
		if errA != nil || errB != nil {
			return false
		}
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// eqOrDeep returns eq when set, falling back to deep structural
// comparison, the stand-in for universal element equality.
func eqOrDeep[T any](eq func(a, b T) bool) func(a, b T) bool {
	if eq != nil {
		return eq
	}
	return func(a, b T) bool { return reflect.DeepEqual(a, b) }
}
