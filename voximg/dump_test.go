package voximg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arl/voxelfield/geom"
	"github.com/arl/voxelfield/voxel"
)

func TestDumpOccupancyWritesPNG(t *testing.T) {
	hf, err := voxel.NewHeightfield(nil, geom.NewVec3(0, 0, 0), geom.NewVec3(4, 4, 4), 1, 1)
	require.NoError(t, err)
	require.NoError(t, hf.RasterizeTriangle(
		geom.NewVec3(0, 1, 0), geom.NewVec3(2, 1, 0), geom.NewVec3(0, 1, 2), voxel.WalkableArea))

	out := filepath.Join(t.TempDir(), "occupancy.png")
	require.NoError(t, DumpOccupancy(hf, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestDumpTopAreaWritesPNG(t *testing.T) {
	hf, err := voxel.NewHeightfield(nil, geom.NewVec3(0, 0, 0), geom.NewVec3(4, 4, 4), 1, 1)
	require.NoError(t, err)
	require.NoError(t, hf.RasterizeTriangle(
		geom.NewVec3(0, 1, 0), geom.NewVec3(2, 1, 0), geom.NewVec3(0, 1, 2), voxel.WalkableArea))

	out := filepath.Join(t.TempDir(), "toparea.png")
	require.NoError(t, DumpTopArea(hf, nil, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
