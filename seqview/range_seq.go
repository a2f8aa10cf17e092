package seqview

import (
	"fmt"
	"iter"
)

// Range is an arithmetic integer progression (start, start+step, ...)
// bounded by stop, exclusive. It satisfies the full Sequence capability
// set without storing a single element: Len, At, Contains and Index are
// all O(1) arithmetic.
type Range struct {
	start, stop, step int
}

// NewRange builds the progression from start towards stop (exclusive)
// with the given stride. A negative step counts downward. Returns
// ErrZeroStep when step is 0.
func NewRange(start, stop, step int) (*Range, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	return &Range{start: start, stop: stop, step: step}, nil
}

// Len returns the number of elements in the progression.
func (r *Range) Len() int { return spanCount(r.start, r.stop, r.step) }

// At returns the i-th element, or ErrIndexOutOfRange when i is outside
// [0, Len).
func (r *Range) At(i int) (int, error) {
	if i < 0 || i >= r.Len() {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, r.Len())
	}
	return r.start + i*r.step, nil
}

// Contains reports whether v is an element of the progression.
func (r *Range) Contains(v int) bool {
	_, ok := r.position(v)
	return ok
}

// Index returns the position of v within [start, stop) bounds, or
// ErrValueNotFound. A value occurs at most once in a progression.
func (r *Range) Index(v int, start, stop int) (int, error) {
	pos, ok := r.position(v)
	if !ok || pos < start || pos >= stop {
		return 0, fmt.Errorf("%w: %v", ErrValueNotFound, v)
	}
	return pos, nil
}

// Count returns 1 when v occurs within [start, stop) and 0 otherwise.
func (r *Range) Count(v int, start, stop int) int {
	if pos, ok := r.position(v); ok && pos >= start && pos < stop {
		return 1
	}
	return 0
}

// All returns a restartable forward iterator over the progression.
func (r *Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if r.step > 0 {
			for v := r.start; v < r.stop; v += r.step {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := r.start; v > r.stop; v += r.step {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a restartable iterator from last element to first.
func (r *Range) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := r.Len() - 1; i >= 0; i-- {
			if !yield(r.start + i*r.step) {
				return
			}
		}
	}
}

// EqualTo reports element-by-element equality against other.
func (r *Range) EqualTo(other Sequence[int]) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(*Range); ok {
		// Two progressions are equal iff they enumerate the same values;
		// compare endpoints without walking them.
		n := r.Len()
		if n != o.Len() {
			return false
		}
		if n == 0 {
			return true
		}
		if r.start != o.start {
			return false
		}
		return n == 1 || r.step == o.step
	}
	return seqEqual[int](r, other, func(a, b int) bool { return a == b })
}

// String renders as Range(start, stop, step).
func (r *Range) String() string {
	return fmt.Sprintf("Range(%d, %d, %d)", r.start, r.stop, r.step)
}

// position computes the index v would occupy, reporting false when v is
// not on the progression or outside its bounds.
func (r *Range) position(v int) (int, bool) {
	if r.step > 0 {
		if v < r.start || v >= r.stop {
			return 0, false
		}
	} else {
		if v > r.start || v <= r.stop {
			return 0, false
		}
	}
	d := v - r.start
	if d%r.step != 0 {
		return 0, false
	}
	return d / r.step, true
}
