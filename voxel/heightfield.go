package voxel

import (
	"github.com/aurelien-rainone/assertgo"
	"github.com/aurelien-rainone/math32"

	"github.com/arl/voxelfield/geom"
)

// Heightfield is an axis-aligned grid of solid-space columns. Dimensions
// are derived from a world-space AABB and a cell footprint/thickness.
// After construction the AABB's maximum corner is snapped outward so that
// Max = Min + (W,H,L)*(Cs,Ch,Cs) exactly.
type Heightfield struct {
	min, max geom.Vec3
	cs, ch   float32
	w, h, l  int32

	cells []Cell

	ctx *BuildContext
}

// NewHeightfield allocates a Heightfield spanning [min,max] in world space,
// with the given XZ cell footprint cs and Y cell thickness ch. ctx may be
// nil, in which case logging and timing are disabled.
//
// Returns a *ConfigError if bounds are inverted on any axis or if cs/ch are
// not strictly positive.
func NewHeightfield(ctx *BuildContext, min, max geom.Vec3, cs, ch float32) (*Heightfield, error) {
	if cs <= 0 {
		return nil, &ConfigError{Reason: "cell size must be > 0"}
	}
	if ch <= 0 {
		return nil, &ConfigError{Reason: "cell height must be > 0"}
	}
	if min[0] > max[0] || min[1] > max[1] || min[2] > max[2] {
		return nil, &ConfigError{Reason: "bounds min must be <= max componentwise"}
	}

	w := int32(math32.Ceil((max[0] - min[0]) / cs))
	h := int32(math32.Ceil((max[1] - min[1]) / ch))
	l := int32(math32.Ceil((max[2] - min[2]) / cs))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if l < 1 {
		l = 1
	}

	snapped := geom.NewVec3(
		min[0]+float32(w)*cs,
		min[1]+float32(h)*ch,
		min[2]+float32(l)*cs,
	)

	assert.True(w >= 1 && h >= 1 && l >= 1, "grid dimensions must be >= 1")
	assert.True(snapped[0] >= min[0] && snapped[1] >= min[1] && snapped[2] >= min[2], "snapped max must not move below min")

	return &Heightfield{
		min:   min,
		max:   snapped,
		cs:    cs,
		ch:    ch,
		w:     w,
		h:     h,
		l:     l,
		cells: make([]Cell, w*l),
		ctx:   ctx,
	}, nil
}

// Width returns the grid's extent along X, in cells.
func (hf *Heightfield) Width() int32 { return hf.w }

// Height returns the grid's extent along Y, in voxel slices.
func (hf *Heightfield) Height() int32 { return hf.h }

// Length returns the grid's extent along Z, in cells.
func (hf *Heightfield) Length() int32 { return hf.l }

// Bounds returns the (snapped) world-space AABB of the grid.
func (hf *Heightfield) Bounds() geom.BBox3 { return geom.BBox3{Min: hf.min, Max: hf.max} }

// CellSize returns the XZ cell footprint.
func (hf *Heightfield) CellSize() float32 { return hf.cs }

// CellHeight returns the Y cell thickness.
func (hf *Heightfield) CellHeight() float32 { return hf.ch }

// SpanCount returns the total number of non-null spans across every
// column in the grid.
func (hf *Heightfield) SpanCount() int32 {
	var n int32
	for i := range hf.cells {
		for _, s := range hf.cells[i].spans {
			if s.Area.Walkable() {
				n++
			}
		}
	}
	return n
}

// Cell returns the column at (x,z), or an *OutOfRangeError if it falls
// outside [0,Width()) x [0,Length()).
func (hf *Heightfield) Cell(x, z int32) (*Cell, error) {
	if x < 0 || x >= hf.w || z < 0 || z >= hf.l {
		return nil, &OutOfRangeError{X: x, Z: z, W: hf.w, L: hf.l}
	}
	return &hf.cells[z*hf.w+x], nil
}

// cellAt returns the column at (x,z) without bounds checking. Callers must
// have already validated x,z against hf.w,hf.l.
func (hf *Heightfield) cellAt(x, z int32) *Cell {
	return &hf.cells[z*hf.w+x]
}

// ForEachCell visits every column in row-major order, z outermost, calling
// fn with the column's grid coordinates and a pointer to it.
func (hf *Heightfield) ForEachCell(fn func(x, z int32, c *Cell)) {
	for z := int32(0); z < hf.l; z++ {
		for x := int32(0); x < hf.w; x++ {
			fn(x, z, hf.cellAt(x, z))
		}
	}
}
