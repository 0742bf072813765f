package voxel

import "fmt"

// ConfigError reports invalid Heightfield construction parameters: inverted
// bounds, or a non-positive cell size/height. It is fatal to the caller.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "voxel: invalid configuration: " + e.Reason }

// ArgumentError reports an invalid argument to a batch rasterization entry
// point: an index or vertex slice whose length is not a multiple of 3, a
// vertex index out of range, a negative offset or count, a stride below 3,
// a buffer too short for the requested triangles, or an areas slice shorter
// than the triangle count. A nil slice is not rejected as such: it is
// treated as empty. It is raised before any mutation of the Heightfield.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string { return "voxel: invalid argument: " + e.Reason }

// OutOfRangeError reports an attempt to index a cell outside [0,W) x [0,L).
type OutOfRangeError struct {
	X, Z int32
	W, L int32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("voxel: cell (%d,%d) out of range [0,%d)x[0,%d)", e.X, e.Z, e.W, e.L)
}
