package voxel

import "github.com/arl/voxelfield/geom"

// RasterizeIndexedTriangles rasterizes an indexed triangle mesh: tris holds
// vertex indices into verts, three per triangle, and areas holds one area
// id per triangle. Input is validated before any mutation of hf: an
// *ArgumentError is returned if tris is not a multiple of 3 long, if any
// index is out of range, or if areas is shorter than the triangle count.
func (hf *Heightfield) RasterizeIndexedTriangles(verts []geom.Vec3, tris []int32, areas []AreaFlags) error {
	if len(tris)%3 != 0 {
		return &ArgumentError{Reason: "len(tris) must be a multiple of 3"}
	}
	nt := len(tris) / 3
	if len(areas) < nt {
		return &ArgumentError{Reason: "areas shorter than triangle count"}
	}
	for _, idx := range tris {
		if idx < 0 || int(idx) >= len(verts) {
			return &ArgumentError{Reason: "triangle index out of range"}
		}
	}

	for i := 0; i < nt; i++ {
		a := verts[tris[i*3+0]]
		b := verts[tris[i*3+1]]
		c := verts[tris[i*3+2]]
		if err := hf.RasterizeTriangle(a, b, c, areas[i]); err != nil {
			return err
		}
	}
	return nil
}

// RasterizeTriangleSoup rasterizes a non-indexed triangle array: verts
// holds three vertices per triangle back to back, and areas holds one area
// id per triangle.
func (hf *Heightfield) RasterizeTriangleSoup(verts []geom.Vec3, areas []AreaFlags) error {
	if len(verts)%3 != 0 {
		return &ArgumentError{Reason: "len(verts) must be a multiple of 3"}
	}
	nt := len(verts) / 3
	if len(areas) < nt {
		return &ArgumentError{Reason: "areas shorter than triangle count"}
	}

	for i := 0; i < nt; i++ {
		a := verts[i*3+0]
		b := verts[i*3+1]
		c := verts[i*3+2]
		if err := hf.RasterizeTriangle(a, b, c, areas[i]); err != nil {
			return err
		}
	}
	return nil
}

// RasterizeTriangleBuffer rasterizes nt triangles read from an interleaved
// vertex buffer, without copying it: vertex i of the mesh starts at
// buf[offset+i*stride], and occupies 3 consecutive float32 components
// (stride must therefore be >= 3). This lets a caller voxelize triangles
// straight out of e.g. a packed position/normal/uv vertex buffer.
func (hf *Heightfield) RasterizeTriangleBuffer(buf []float32, offset, stride int, nt int, areas []AreaFlags) error {
	if offset < 0 || stride < 3 || nt < 0 {
		return &ArgumentError{Reason: "negative offset/count or stride < 3"}
	}
	if len(areas) < nt {
		return &ArgumentError{Reason: "areas shorter than triangle count"}
	}
	maxVert := nt * 3
	if maxVert > 0 {
		lastStart := offset + (maxVert-1)*stride
		if lastStart+3 > len(buf) {
			return &ArgumentError{Reason: "offset+stride*count exceeds buffer length"}
		}
	}

	vertAt := func(i int) geom.Vec3 {
		start := offset + i*stride
		return geom.NewVec3(buf[start], buf[start+1], buf[start+2])
	}

	for i := 0; i < nt; i++ {
		a := vertAt(i*3 + 0)
		b := vertAt(i*3 + 1)
		c := vertAt(i*3 + 2)
		if err := hf.RasterizeTriangle(a, b, c, areas[i]); err != nil {
			return err
		}
	}
	return nil
}
