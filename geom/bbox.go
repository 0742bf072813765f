package geom

import "github.com/aurelien-rainone/gogeo/f32/d3"

// BBox3 is an axis-aligned bounding box in world space.
type BBox3 struct {
	Min, Max Vec3
}

// Overlapping reports whether a and b overlap, using closed-interval
// comparison on every axis (touching boxes count as overlapping).
func Overlapping(a, b BBox3) bool {
	if a.Min[0] > b.Max[0] || a.Max[0] < b.Min[0] {
		return false
	}
	if a.Min[1] > b.Max[1] || a.Max[1] < b.Min[1] {
		return false
	}
	if a.Min[2] > b.Max[2] || a.Max[2] < b.Min[2] {
		return false
	}
	return true
}

// FromVerts returns the bounding box of the given points. Panics if verts
// is empty.
func FromVerts(verts []Vec3) BBox3 {
	bmin := d3.NewVec3From(verts[0])
	bmax := d3.NewVec3From(verts[0])
	for _, v := range verts[1:] {
		d3.Vec3Min(bmin, v)
		d3.Vec3Max(bmax, v)
	}
	return BBox3{Min: bmin, Max: bmax}
}
