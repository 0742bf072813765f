package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/voxelfield/geom"
	"github.com/arl/voxelfield/voxel"
)

// an n x n grid of unit-quad (2-triangle) cells, 2*n*n triangles total
// (32 for n=4).
func gridMesh(n int32) ([]geom.Vec3, []int32) {
	var verts []geom.Vec3
	var tris []int32
	idx := func(x, z int32) int32 { return z*(n+1) + x }

	for z := int32(0); z <= n; z++ {
		for x := int32(0); x <= n; x++ {
			verts = append(verts, geom.NewVec3(float32(x), 0, float32(z)))
		}
	}
	for z := int32(0); z < n; z++ {
		for x := int32(0); x < n; x++ {
			a, b, c, d := idx(x, z), idx(x+1, z), idx(x+1, z+1), idx(x, z+1)
			tris = append(tris, a, b, c, a, c, d)
		}
	}
	return verts, tris
}

func TestNewRejectsBadTriangleSlice(t *testing.T) {
	verts, _ := gridMesh(2)
	_, err := New(verts, []int32{0, 1}, 4)
	assert.Error(t, err)

	_, err = New(verts, []int32{0, 1, 2}, 0)
	assert.Error(t, err)

	_, err = New(verts, []int32{0, 1, 999}, 4)
	assert.Error(t, err)
}

func TestNumTrianglesPreserved(t *testing.T) {
	verts, tris := gridMesh(4)
	cm, err := New(verts, tris, 3)
	require.NoError(t, err)
	assert.EqualValues(t, len(tris)/3, cm.NumTriangles())
}

func TestQueryOverlappingChunksFindsCorner(t *testing.T) {
	verts, tris := gridMesh(4)
	cm, err := New(verts, tris, 3)
	require.NoError(t, err)

	nodes := cm.QueryOverlappingChunks([2]float32{0, 0}, [2]float32{0.5, 0.5})
	require.NotEmpty(t, nodes)

	for _, n := range nodes {
		for i := n.TriStart; i < n.TriStart+n.TriCount; i++ {
			ia, ib, ic, _ := cm.Triangle(i)
			for _, vi := range []int32{ia, ib, ic} {
				assert.Less(t, int(vi), len(verts))
			}
		}
	}
}

func TestQueryOverlappingChunksEmptyFarAway(t *testing.T) {
	verts, tris := gridMesh(4)
	cm, err := New(verts, tris, 3)
	require.NoError(t, err)

	nodes := cm.QueryOverlappingChunks([2]float32{100, 100}, [2]float32{101, 101})
	assert.Empty(t, nodes)
}

func TestRasterizeOverlappingVoxelizesQueriedChunks(t *testing.T) {
	verts, tris := gridMesh(4)
	cm, err := New(verts, tris, 3)
	require.NoError(t, err)

	areas := make([]voxel.AreaFlags, len(tris)/3)
	for i := range areas {
		areas[i] = voxel.WalkableArea
	}

	hf, err := voxel.NewHeightfield(nil, geom.NewVec3(0, -1, 0), geom.NewVec3(4, 1, 4), 1, 1)
	require.NoError(t, err)

	err = cm.RasterizeOverlapping(hf, verts, areas, [2]float32{0, 0}, [2]float32{2, 2})
	require.NoError(t, err)
	assert.Greater(t, hf.SpanCount(), int32(0))
}
