package geom

// Triangle3 is a triangle in world space, given by its three vertices.
type Triangle3 struct {
	A, B, C Vec3
}

// BoundingBox returns the axis-aligned bounding box of t.
func (t Triangle3) BoundingBox() BBox3 {
	return FromVerts([]Vec3{t.A, t.B, t.C})
}
