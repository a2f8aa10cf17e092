package seqview

import (
	"fmt"
	"iter"
)

// Empty returns the immutable empty sequence, handy as a default backing
// when there is nothing to expose yet. It satisfies every optional
// capability trivially.
func Empty[T any]() Sequence[T] { return emptySeq[T]{} }

type emptySeq[T any] struct{}

func (emptySeq[T]) Len() int { return 0 }

func (emptySeq[T]) At(i int) (T, error) {
	var zero T
	return zero, fmt.Errorf("%w: index %d, length 0", ErrIndexOutOfRange, i)
}

func (emptySeq[T]) Contains(T) bool { return false }

func (emptySeq[T]) All() iter.Seq[T] { return func(func(T) bool) {} }

func (emptySeq[T]) Backward() iter.Seq[T] { return func(func(T) bool) {} }

func (emptySeq[T]) Index(v T, _, _ int) (int, error) {
	return 0, fmt.Errorf("%w: %v", ErrValueNotFound, v)
}

func (emptySeq[T]) Count(T, int, int) int { return 0 }

func (emptySeq[T]) EqualTo(other Sequence[T]) bool {
	return other != nil && other.Len() == 0
}

func (emptySeq[T]) String() string { return "[]" }
