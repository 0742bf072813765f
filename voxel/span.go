package voxel

import "github.com/aurelien-rainone/assertgo"

// Span is a half-open integer y-interval [Min,Max) of solid space within
// one column, tagged with the area classification of whatever triangle
// fragment(s) produced it. Min < Max always holds for a Span stored in a
// Cell.
type Span struct {
	Min, Max uint16
	Area     AreaFlags
}

// overlapsOrTouches reports whether s and t describe overlapping or
// touching y-intervals, i.e. whether inserting one into a list containing
// the other requires merging them.
func (s Span) overlapsOrTouches(t Span) bool {
	return s.Min <= t.Max && t.Min <= s.Max
}

// merge combines s and t, which must overlap or touch, into the single
// span that is their union, with the area of whichever span contributes
// the top of the union; ties go to the higher-priority area, then to s.
func (s Span) merge(t Span) Span {
	assert.True(s.overlapsOrTouches(t), "merge called on non-overlapping, non-touching spans")
	out := Span{Min: minU16(s.Min, t.Min), Max: maxU16(s.Max, t.Max)}
	switch {
	case s.Max > t.Max:
		out.Area = s.Area
	case t.Max > s.Max:
		out.Area = t.Area
	case s.Area.Priority() >= t.Area.Priority():
		out.Area = s.Area
	default:
		out.Area = t.Area
	}
	return out
}

func minU16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}

func maxU16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
