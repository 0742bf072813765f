package voxel

import "github.com/arl/voxelfield/geom"

// Config bundles the parameters that drive Heightfield construction and
// the three filters.
type Config struct {
	// CellSize is the XZ cell footprint. [Limit: > 0] [Units: world]
	CellSize float32

	// CellHeight is the Y cell thickness. [Limit: > 0] [Units: world]
	CellHeight float32

	// WalkableHeight is the minimum clearance, in voxels, a surface needs
	// above it to be considered walkable. Consumed by
	// FilterWalkableLowHeightSpans and FilterLedgeSpans.
	WalkableHeight int32

	// WalkableClimb is the maximum step, in voxels, an agent can climb
	// onto. Consumed by FilterLowHangingWalkableObstacles and
	// FilterLedgeSpans.
	WalkableClimb int32
}

// NewHeightfieldFromConfig is a convenience constructor that pulls the
// cell footprint/thickness out of cfg.
func NewHeightfieldFromConfig(ctx *BuildContext, cfg Config, min, max geom.Vec3) (*Heightfield, error) {
	return NewHeightfield(ctx, min, max, cfg.CellSize, cfg.CellHeight)
}

// ApplyFilters runs the three mutating filters against hf, in the order
// FilterLowHangingWalkableObstacles, FilterWalkableLowHeightSpans,
// FilterLedgeSpans: obstacles get fused onto walkable ground before ledges
// are evaluated against the final area classes. Callers with different
// requirements should call the filters directly instead.
func ApplyFilters(ctx *BuildContext, cfg Config, hf *Heightfield) {
	FilterLowHangingWalkableObstacles(ctx, cfg.WalkableClimb, hf)
	FilterWalkableLowHeightSpans(ctx, cfg.WalkableHeight, hf)
	FilterLedgeSpans(ctx, cfg.WalkableHeight, cfg.WalkableClimb, hf)
}
