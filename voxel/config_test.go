package voxel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arl/voxelfield/geom"
)

func TestNewHeightfieldFromConfig(t *testing.T) {
	cfg := Config{CellSize: 0.5, CellHeight: 0.25, WalkableHeight: 8, WalkableClimb: 4}
	hf, err := NewHeightfieldFromConfig(nil, cfg, geom.NewVec3(0, 0, 0), geom.NewVec3(2, 2, 2))
	require.NoError(t, err)
	require.EqualValues(t, 4, hf.Width())
	require.EqualValues(t, 8, hf.Height())
}

func TestApplyFiltersRunsAllThree(t *testing.T) {
	cfg := Config{CellSize: 1, CellHeight: 1, WalkableHeight: 2, WalkableClimb: 1}
	hf, err := NewHeightfieldFromConfig(nil, cfg, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 10, 1))
	require.NoError(t, err)

	c, err := hf.Cell(0, 0)
	require.NoError(t, err)
	c.AddSpan(Span{Min: 0, Max: 2, Area: WalkableArea})
	c.AddSpan(Span{Min: 3, Max: 5, Area: WalkableArea})

	require.NotPanics(t, func() { ApplyFilters(nil, cfg, hf) })
}
