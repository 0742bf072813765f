package voxel

import "github.com/aurelien-rainone/assertgo"

// maxClipVerts is the largest vertex count a clipped polygon can reach: a
// triangle clipped against the four planes bounding one grid cell (row
// min/max, column min/max) can grow to at most 7 vertices.
const maxClipVerts = 7

// clipPoly is a fixed-capacity polygon buffer of XYZ vertices, used as
// scratch storage during rasterization. It is always stack-allocated by
// its caller, keeping the rasterization hot path free of per-triangle
// heap allocation.
type clipPoly [maxClipVerts][3]float32

// clipHalfPlane clips the convex polygon in[0:n] against the half-plane
// ax*x + az*z + d >= 0 using Sutherland-Hodgman, writing the result to out
// and returning its vertex count. Only the X,Z components of each vertex
// participate in the plane test; Y is linearly interpolated on crossings.
//
// A vertex exactly on the plane (s == 0) counts as inside. A degenerate
// edge whose endpoints are both exactly on the plane emits only its first
// endpoint (its second endpoint is emitted, if at all, as the first
// endpoint of the following edge).
func clipHalfPlane(in *clipPoly, n int, out *clipPoly, ax, az, d float32) int {
	var s [maxClipVerts]float32
	for i := 0; i < n; i++ {
		s[i] = ax*in[i][0] + az*in[i][2] + d
	}

	m := 0
	for i := 0; i < n; i++ {
		ni := i + 1
		if ni == n {
			ni = 0
		}

		if s[i] >= 0 {
			out[m] = in[i]
			m++
		}

		// A vertex exactly on the plane counts as inside, not as a
		// crossing, so the interpolated vertex is only emitted when the
		// two signs are strictly different.
		if (s[i] > 0 && s[ni] < 0) || (s[i] < 0 && s[ni] > 0) {
			t := s[i] / (s[i] - s[ni])
			lerpVert(&out[m], in[i][:], in[ni][:], t)
			m++
		}
	}
	assert.True(m <= maxClipVerts, "clipped polygon exceeded its 7-vertex capacity")
	return m
}

func lerpVert(dst *[3]float32, a, b []float32, t float32) {
	dst[0] = a[0] + (b[0]-a[0])*t
	dst[1] = a[1] + (b[1]-a[1])*t
	dst[2] = a[2] + (b[2]-a[2])*t
}
