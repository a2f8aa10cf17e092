package seqview_test

import (
	"errors"
	"testing"

	"github.com/nlesc-nano/Nano-Utils/seqview"
)

//----------------------------------------------------------------------------//
// Span.Indices resolution
//----------------------------------------------------------------------------//

// TestSpan_Indices pins down bound resolution: defaults, negative indices,
// clamping, and both stride directions.
func TestSpan_Indices(t *testing.T) {
	cases := []struct {
		name              string
		sp                seqview.Span
		n                 int
		start, stop, step int
	}{
		{"Full", seqview.Full(), 6, 0, 6, 1},
		{"From", seqview.From(2), 6, 2, 6, 1},
		{"To", seqview.To(4), 6, 0, 4, 1},
		{"Between", seqview.Between(1, 4), 6, 1, 4, 1},
		{"NegativeStart", seqview.From(-2), 6, 4, 6, 1},
		{"NegativeStop", seqview.To(-2), 6, 0, 4, 1},
		{"NegativeBoth", seqview.Between(-4, -1), 6, 2, 5, 1},
		{"StartPastEnd", seqview.From(10), 6, 6, 6, 1},
		{"StopPastStart", seqview.To(-100), 6, 0, 0, 1},
		{"Stride", seqview.Full().By(2), 6, 0, 6, 2},
		{"ReversedFull", seqview.Full().By(-1), 6, 5, -1, -1},
		{"ReversedBounds", seqview.Between(4, 1).By(-2), 6, 4, 1, -2},
		{"ReversedNegStart", seqview.From(-2).By(-1), 6, 4, -1, -1},
		{"EmptyFull", seqview.Full(), 0, 0, 0, 1},
		{"EmptyReversed", seqview.Full().By(-1), 0, -1, -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, stop, step, err := tc.sp.Indices(tc.n)
			if err != nil {
				t.Fatalf("Indices(%d) error: %v", tc.n, err)
			}
			if start != tc.start || stop != tc.stop || step != tc.step {
				t.Errorf("Indices(%d) = (%d,%d,%d); want (%d,%d,%d)",
					tc.n, start, stop, step, tc.start, tc.stop, tc.step)
			}
		})
	}
}

// TestSpan_ZeroStep verifies the explicit zero-step rejection.
func TestSpan_ZeroStep(t *testing.T) {
	_, _, _, err := seqview.Full().By(0).Indices(6)
	if !errors.Is(err, seqview.ErrZeroStep) {
		t.Errorf("Indices error = %v; want ErrZeroStep", err)
	}
}
