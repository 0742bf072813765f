// Package geom provides the small set of 3D vector-math collaborator types
// the voxel package builds on: points, axis-aligned bounding boxes and
// triangles in world space, plus the handful of integer helpers
// (clamping, 4-connectivity direction offsets) the filters need.
//
// The vector arithmetic is built on github.com/aurelien-rainone/gogeo/f32/d3.
package geom
