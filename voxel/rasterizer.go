package voxel

import (
	"github.com/aurelien-rainone/math32"

	"github.com/arl/voxelfield/geom"
)

// RasterizeTriangle conservatively voxelizes one triangle into hf, tagging
// every span it produces with area. It is a no-op (not an error) if the
// triangle's AABB does not overlap hf's bounds.
func (hf *Heightfield) RasterizeTriangle(a, b, c geom.Vec3, area AreaFlags) error {
	hf.ctx.StartTimer(TimerRasterizeTriangles)
	defer hf.ctx.StopTimer(TimerRasterizeTriangles)

	tri := geom.Triangle3{A: a, B: b, C: c}
	bbox := tri.BoundingBox()
	if !geom.Overlapping(bbox, hf.Bounds()) {
		return nil
	}

	cs, ch := hf.cs, hf.ch
	m := hf.min
	by := hf.max[1] - hf.min[1]

	x0 := geom.ClampInt(int32(math32.Floor((bbox.Min[0]-m[0])/cs)), 0, hf.w-1)
	x1 := geom.ClampInt(int32(math32.Floor((bbox.Max[0]-m[0])/cs)), 0, hf.w-1)
	z0 := geom.ClampInt(int32(math32.Floor((bbox.Min[2]-m[2])/cs)), 0, hf.l-1)
	z1 := geom.ClampInt(int32(math32.Floor((bbox.Max[2]-m[2])/cs)), 0, hf.l-1)

	var tri0, rowLo, rowHi, colLo, colHi clipPoly
	tri0[0] = [3]float32{a[0], a[1], a[2]}
	tri0[1] = [3]float32{b[0], b[1], b[2]}
	tri0[2] = [3]float32{c[0], c[1], c[2]}

	for z := z0; z <= z1; z++ {
		zLo := m[2] + float32(z)*cs
		zHi := zLo + cs

		// A fragment degenerated to an edge or a point by the clip still
		// occupies its cell: a triangle touching a row or column only on a
		// shared grid boundary must mark that cell solid, so only an empty
		// clip output skips.
		n := clipHalfPlane(&tri0, 3, &rowLo, 0, 1, -zLo)
		if n == 0 {
			continue
		}
		n = clipHalfPlane(&rowLo, n, &rowHi, 0, -1, zHi)
		if n == 0 {
			continue
		}

		for x := x0; x <= x1; x++ {
			xLo := m[0] + float32(x)*cs
			xHi := xLo + cs

			nc := clipHalfPlane(&rowHi, n, &colLo, 1, 0, -xLo)
			if nc == 0 {
				continue
			}
			nc = clipHalfPlane(&colLo, nc, &colHi, -1, 0, xHi)
			if nc == 0 {
				continue
			}

			yMin, yMax := colHi[0][1], colHi[0][1]
			for i := 1; i < nc; i++ {
				yMin = math32.Min(yMin, colHi[i][1])
				yMax = math32.Max(yMax, colHi[i][1])
			}
			yMin -= m[1]
			yMax -= m[1]

			if yMax < 0 || yMin > by {
				continue
			}
			if yMin < 0 {
				yMin = 0
			}
			if yMax > by {
				yMax = by
			}

			spanMin := uint16(geom.ClampInt(int32(math32.Floor(yMin/ch)), 0, int32(hf.h)))

			rawMax := int32(math32.Ceil(yMax / ch))
			if rawMax < int32(spanMin)+1 {
				rawMax = int32(spanMin) + 1
			}
			spanMax := uint16(geom.ClampInt(rawMax, 0, int32(hf.h)))

			if spanMin >= spanMax {
				hf.ctx.Warningf("RasterizeTriangle: dropping zero-thickness span at (%d,%d)", x, z)
				continue
			}

			hf.cellAt(x, z).AddSpan(Span{Min: spanMin, Max: spanMax, Area: area})
		}
	}

	return nil
}
