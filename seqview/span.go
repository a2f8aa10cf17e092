package seqview

// Span selects a sub-range of a sequence for View.Slice: an optional start,
// an optional stop, and a step. Negative start/stop count from the end of
// the sequence; out-of-range bounds are clamped rather than rejected; a
// negative step selects in reverse order.
//
// The zero Span selects nothing useful on its own; build one with Full,
// From, To or Between, and adjust the stride with By:
//
//	Full()              // every element
//	From(2)             // elements 2..end
//	To(-1)              // all but the last element
//	Between(1, 4)       // elements 1, 2, 3
//	Full().By(-1)       // every element, reversed
type Span struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

// Full selects the entire sequence.
func Full() Span { return Span{} }

// From selects elements from position start (inclusive) to the end.
func From(start int) Span { return Span{start: start, hasStart: true} }

// To selects elements from the beginning up to position stop (exclusive).
func To(stop int) Span { return Span{stop: stop, hasStop: true} }

// Between selects the half-open range [start, stop).
func Between(start, stop int) Span {
	return Span{start: start, stop: stop, hasStart: true, hasStop: true}
}

// By returns a copy of the span with the given stride. A negative step
// walks the selection in reverse; step 0 is rejected by Indices.
func (s Span) By(step int) Span {
	s.step = step
	s.hasStep = true
	return s
}

// Indices resolves the span against a sequence of length n, returning
// concrete (start, stop, step) such that the selected positions are
// start, start+step, ... while (step > 0 && i < stop) or
// (step < 0 && i > stop). Negative bounds are taken from the end and all
// bounds are clamped into range, so Indices never yields an out-of-range
// position. Returns ErrZeroStep when the span was built with By(0).
func (s Span) Indices(n int) (start, stop, step int, err error) {
	step = 1
	if s.hasStep {
		if s.step == 0 {
			return 0, 0, 0, ErrZeroStep
		}
		step = s.step
	}

	// Clamping limits differ by direction: a reverse walk must be able to
	// stop just before position 0, hence the -1 lower bound.
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	if !s.hasStart {
		start = lower
		if step < 0 {
			start = upper
		}
	} else {
		start = clampBound(s.start, n, lower, upper)
	}

	if !s.hasStop {
		stop = upper
		if step < 0 {
			stop = lower
		}
	} else {
		stop = clampBound(s.stop, n, lower, upper)
	}

	return start, stop, step, nil
}

// clampBound normalizes one negative-index bound against length n and
// clamps it into [lower, upper].
func clampBound(b, n, lower, upper int) int {
	if b < 0 {
		b += n
		if b < lower {
			return lower
		}
		return b
	}
	if b > upper {
		return upper
	}
	return b
}

// spanCount returns the number of positions the resolved
// (start, stop, step) triple selects.
func spanCount(start, stop, step int) int {
	if step > 0 {
		if start >= stop {
			return 0
		}
		return (stop-start-1)/step + 1
	}
	if start <= stop {
		return 0
	}
	return (start-stop-1)/(-step) + 1
}
