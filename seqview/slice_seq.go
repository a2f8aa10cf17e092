package seqview

import (
	"fmt"
	"iter"
)

// SliceSeq adapts a Go slice to the full Sequence capability set. The
// slice is addressed through a pointer so that growth performed by the
// owning code (s = append(s, ...)) stays visible to live views; element
// mutation is visible either way because the underlying array is shared.
//
// Integer indexing is strict Go style: 0 <= i < Len. Negative addressing
// belongs to Span, not At.
type SliceSeq[T any] struct {
	ref *[]T
	eq  func(a, b T) bool
}

// WrapSlice adapts *ref using == for element equality. Returns
// ErrNilSequence when ref is nil.
func WrapSlice[T comparable](ref *[]T) (*SliceSeq[T], error) {
	return WrapSliceFunc(ref, func(a, b T) bool { return a == b })
}

// WrapSliceFunc adapts *ref using the supplied element equality. A nil eq
// falls back to deep structural comparison. Returns ErrNilSequence when
// ref is nil.
func WrapSliceFunc[T any](ref *[]T, eq func(a, b T) bool) (*SliceSeq[T], error) {
	if ref == nil {
		return nil, ErrNilSequence
	}
	return &SliceSeq[T]{ref: ref, eq: eq}, nil
}

// Of wraps a slice in a read-only view in one call. The view shares the
// slice's array, so element mutation by the caller remains visible, but
// growth via append does not; use Bind for a growth-visible view.
func Of[T comparable](s []T) *View[T] {
	seq, _ := WrapSlice(&s)
	return &View[T]{seq: seq, eq: seq.eq}
}

// OfFunc is Of with a caller-supplied element equality, for element types
// that are not comparable.
func OfFunc[T any](s []T, eq func(a, b T) bool) *View[T] {
	seq, _ := WrapSliceFunc(&s, eq)
	return &View[T]{seq: seq, eq: eq}
}

// Bind wraps the slice behind ref in a read-only view that tracks growth:
// appends the owner performs through ref are observed by the view.
// Returns ErrNilSequence when ref is nil.
func Bind[T comparable](ref *[]T) (*View[T], error) {
	seq, err := WrapSlice(ref)
	if err != nil {
		return nil, err
	}
	return &View[T]{seq: seq, eq: seq.eq}, nil
}

// BindFunc is Bind with a caller-supplied element equality.
func BindFunc[T any](ref *[]T, eq func(a, b T) bool) (*View[T], error) {
	seq, err := WrapSliceFunc(ref, eq)
	if err != nil {
		return nil, err
	}
	return &View[T]{seq: seq, eq: eq}, nil
}

// Len returns the slice's current length.
func (s *SliceSeq[T]) Len() int { return len(*s.ref) }

// At returns the element at position i, or ErrIndexOutOfRange when i is
// outside [0, Len).
func (s *SliceSeq[T]) At(i int) (T, error) {
	cur := *s.ref
	if i < 0 || i >= len(cur) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(cur))
	}
	return cur[i], nil
}

// Contains reports whether v occurs in the slice.
func (s *SliceSeq[T]) Contains(v T) bool {
	eq := eqOrDeep(s.eq)
	for _, x := range *s.ref {
		if eq(x, v) {
			return true
		}
	}
	return false
}

// Index returns the first position of v within [start, stop), or
// ErrValueNotFound.
func (s *SliceSeq[T]) Index(v T, start, stop int) (int, error) {
	eq := eqOrDeep(s.eq)
	cur := *s.ref
	if stop > len(cur) {
		stop = len(cur)
	}
	for i := max(start, 0); i < stop; i++ {
		if eq(cur[i], v) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrValueNotFound, v)
}

// Count returns the number of occurrences of v within [start, stop).
func (s *SliceSeq[T]) Count(v T, start, stop int) int {
	eq := eqOrDeep(s.eq)
	cur := *s.ref
	if stop > len(cur) {
		stop = len(cur)
	}
	n := 0
	for i := max(start, 0); i < stop; i++ {
		if eq(cur[i], v) {
			n++
		}
	}
	return n
}

// All returns a restartable forward iterator. The slice header is re-read
// on every step, so growth mid-iteration is observed.
func (s *SliceSeq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(*s.ref); i++ {
			if !yield((*s.ref)[i]) {
				return
			}
		}
	}
}

// Backward returns a restartable iterator from last element to first.
func (s *SliceSeq[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := *s.ref
		for i := len(cur) - 1; i >= 0; i-- {
			if !yield(cur[i]) {
				return
			}
		}
	}
}

// EqualTo reports element-by-element equality against other.
func (s *SliceSeq[T]) EqualTo(other Sequence[T]) bool {
	if other == nil {
		return false
	}
	return seqEqual[T](s, other, eqOrDeep(s.eq))
}

// String renders the current slice contents.
func (s *SliceSeq[T]) String() string { return fmt.Sprint(*s.ref) }
