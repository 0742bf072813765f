package voxel

// AreaFlags is the opaque area classification carried by a Span: an
// unwalkable/hole marker (NullArea), the default walkable surface
// (WalkableArea), or any user-defined tag in between. AreaFlags has a
// total order by its numeric value; when two merged spans reach the same
// top, the higher value wins.
type AreaFlags uint8

const (
	// NullArea marks a span as unwalkable, i.e. a hole in the solid field.
	// It is always the lowest-priority area.
	NullArea AreaFlags = 0

	// WalkableArea is the default area id assigned to a walkable surface.
	// It is also the maximum area id recognized by some downstream
	// consumers of this field; user-defined area ids above it are still
	// legal here, they simply opt out of that downstream convention.
	WalkableArea AreaFlags = 63
)

// Priority returns the merge priority of a, used by Cell.AddSpan to decide
// which area wins when two combined spans reach the same top: higher
// priority wins, and NullArea has the lowest priority. When the tops
// differ, the higher-reaching span's area wins whatever its priority.
func (a AreaFlags) Priority() int {
	return int(a)
}

// Walkable reports whether a is anything other than NullArea.
func (a AreaFlags) Walkable() bool {
	return a != NullArea
}
