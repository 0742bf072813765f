// Package voxel conservatively voxelizes triangles into a sparse solid
// heightfield and filters the result down to walkable spans.
//
// A Heightfield is a grid of XZ columns (Cell), each holding a sorted,
// non-overlapping run of Y intervals (Span) tagged with an AreaFlags. Build
// one with NewHeightfield, fill it by calling RasterizeTriangle (or one of
// the batch Rasterize* helpers on Heightfield) once per input triangle, then
// narrow it down to walkable surface with FilterLowHangingWalkableObstacles,
// FilterWalkableLowHeightSpans and FilterLedgeSpans.
package voxel
