// Package seqview provides View, a read-only, non-copying projection of an
// ordered, indexable collection.
//
// What:
//
//   - View[T] wraps any Sequence[T] (length, indexed access, membership)
//     and forwards every read operation to it; nothing is duplicated.
//   - Plain access is live: the view reflects mutations the owner performs
//     on the backing collection at the moment of each call.
//   - Slice produces a frozen snapshot: the selected elements are
//     materialized once and wrapped in a fresh view, insulated from later
//     mutation of the original backing.
//   - Optional capabilities (forward/reverse iteration, value search,
//     equality) are probed on the backing by type assertion; reverse
//     iteration is refused with ErrNotReversible when absent.
//   - Ready-made backings: SliceSeq (Go slices, growth-visible through a
//     pointer), Range (arithmetic integer progressions), Empty.
//
// Why:
//
//   - Expose an internal slice as a read-only attribute without copying it.
//   - Hand callers a stable API over data that keeps changing underneath.
//   - Views are immutable, so copying one is the view itself: Copy and
//     DeepCopy return the receiver.
//
// Live vs. snapshot, the primary behavioral contract:
//
//	s := []int{1, 2, 3}
//	v, _ := seqview.Bind(&s)           // live projection
//	w, _ := v.Slice(seqview.To(2))     // frozen snapshot of [1 2]
//	s = append(s, 4)
//	v.Len()                            // 4 — live
//	w.Len()                            // 2 — frozen
//
// Errors:
//
//   - ErrNilSequence: construction received no backing sequence.
//   - ErrIndexOutOfRange: integer index outside the backing's bounds.
//   - ErrValueNotFound: Index could not locate the requested value.
//   - ErrZeroStep: a Span or Range was given a zero step.
//   - ErrNotReversible: the backing has no reverse-iteration capability.
//   - ErrTooManyBounds: more than two search bounds were supplied.
//
// All operations are synchronous and add no locking of their own; a view
// is exactly as thread-safe as its backing collection.
package seqview
