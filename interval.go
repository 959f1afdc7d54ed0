package kspace

import "fmt"

// Interval is a half-open integer range [A, B) with a stride.
//
// Interval is the leading coordinate of a mesh interval. Cells shift it
// consistently with a single index: refining by L levels maps A to A*2^L,
// keeps B-1 as the last covered index scaled by 2^L, and scales Step.
// A zero Step is read as 1.
type Interval struct {
	A, B int
	Step uint
}

// Iv is a convenience function to create an Interval with unit stride.
func Iv(a, b int) Interval {
	return Interval{A: a, B: b, Step: 1}
}

// Len returns the number of strided indices covered by the interval.
func (i Interval) Len() int {
	if i.IsEmpty() {
		return 0
	}
	step := int(i.stride())
	return (i.B - i.A + step - 1) / step
}

// IsEmpty reports whether the interval covers no index.
func (i Interval) IsEmpty() bool {
	return i.A >= i.B
}

// ShiftLevel moves the interval by levels refinement levels.
// Positive levels refine, negative levels coarsen with floor semantics.
// Coarsening then refining again does not restore the original bounds.
func (i Interval) ShiftLevel(levels int) Interval {
	step := i.stride()
	switch {
	case levels > 0:
		s := uint(levels)
		return Interval{
			A:    i.A << s,
			B:    ((i.B - 1) << s) + 1,
			Step: step << s,
		}
	case levels < 0:
		s := uint(-levels)
		step >>= s
		if step == 0 {
			step = 1
		}
		return Interval{
			A:    i.A >> s,
			B:    ((i.B - 1) >> s) + 1,
			Step: step,
		}
	default:
		return Interval{A: i.A, B: i.B, Step: step}
	}
}

// ShiftIndex translates the interval by delta indices.
func (i Interval) ShiftIndex(delta int) Interval {
	return Interval{A: i.A + delta, B: i.B + delta, Step: i.stride()}
}

// Apply changes the level first and translates afterwards.
// Apply(0, 0) is the identity. Two successive calls are not equivalent to
// one call with the summed shifts when truncation occurs in between.
func (i Interval) Apply(indexShift, levelShift int) Interval {
	return i.ShiftLevel(levelShift).ShiftIndex(indexShift)
}

// String returns the interval as [a,b[:step.
func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d[:%d", i.A, i.B, i.stride())
}

func (i Interval) stride() uint {
	if i.Step == 0 {
		return 1
	}
	return i.Step
}
