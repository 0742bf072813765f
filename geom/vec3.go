package geom

import "github.com/aurelien-rainone/gogeo/f32/d3"

// Vec3 is a point or vector in 3D space, backed by a 3-element float32
// slice so it interoperates directly with gogeo/f32/d3.
type Vec3 = d3.Vec3

// NewVec3 returns Vec3{x, y, z}.
func NewVec3(x, y, z float32) Vec3 {
	return d3.NewVec3XYZ(x, y, z)
}
