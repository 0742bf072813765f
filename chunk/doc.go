// Package chunk partitions a triangle mesh into an AABB tree of XZ chunks,
// so that callers rasterizing large meshes into a voxel.Heightfield can
// restrict work to the chunks overlapping the region they care about
// instead of walking every triangle.
package chunk
