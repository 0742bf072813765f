package chunk

import (
	"github.com/arl/voxelfield/geom"
	"github.com/arl/voxelfield/voxel"
)

// RasterizeNodes rasterizes every triangle referenced by nodes (as returned
// by QueryOverlappingChunks or QueryOverlappingSegment) into hf. verts is
// the same vertex slice passed to New; areas holds one area id per
// original (pre-reorder) triangle, indexed the same way as the tris slice
// passed to New.
func (cm *ChunkyTriMesh) RasterizeNodes(hf *voxel.Heightfield, verts []geom.Vec3, areas []voxel.AreaFlags, nodes []Node) error {
	for _, node := range nodes {
		for i := node.TriStart; i < node.TriStart+node.TriCount; i++ {
			ia, ib, ic, orig := cm.Triangle(i)
			if int(orig) >= len(areas) {
				return &voxel.ArgumentError{Reason: "areas shorter than triangle count"}
			}
			a, b, c := verts[ia], verts[ib], verts[ic]
			if err := hf.RasterizeTriangle(a, b, c, areas[orig]); err != nil {
				return err
			}
		}
	}
	return nil
}

// RasterizeOverlapping is a convenience wrapper that queries the chunks
// overlapping [bmin,bmax] and rasterizes them directly into hf.
func (cm *ChunkyTriMesh) RasterizeOverlapping(hf *voxel.Heightfield, verts []geom.Vec3, areas []voxel.AreaFlags, bmin, bmax [2]float32) error {
	return cm.RasterizeNodes(hf, verts, areas, cm.QueryOverlappingChunks(bmin, bmax))
}
