package voximg

import (
	"github.com/gogpu/gg"

	"github.com/arl/voxelfield/voxel"
)

// pixelsPerCell is the size, in pixels, of one heightfield column in the
// rendered image.
const pixelsPerCell = 4

// Palette maps an area id to the color used to paint it. Areas absent from
// the map fall back to a mid-grey.
type Palette map[voxel.AreaFlags]gg.RGBA

// DefaultPalette colors NullArea background-grey and WalkableArea green,
// matching the convention used by the toolchain's own debug draw.
func DefaultPalette() Palette {
	return Palette{
		voxel.NullArea:     gg.RGB(0.15, 0.15, 0.15),
		voxel.WalkableArea: gg.RGB(0.2, 0.7, 0.25),
	}
}

func (p Palette) color(area voxel.AreaFlags) gg.RGBA {
	if c, ok := p[area]; ok {
		return c
	}
	return gg.RGB(0.5, 0.5, 0.5)
}

// DumpOccupancy renders one pixel block per column, colored by whether the
// column holds any span (NullArea spans included), and writes it to path as
// a PNG. Empty columns are left at the background color.
func DumpOccupancy(hf *voxel.Heightfield, path string) error {
	dc := gg.NewContext(int(hf.Width())*pixelsPerCell, int(hf.Length())*pixelsPerCell)
	dc.SetRGB(0.05, 0.05, 0.05)
	dc.Clear()

	occupied := gg.RGB(0.8, 0.8, 0.85)
	hf.ForEachCell(func(x, z int32, c *voxel.Cell) {
		if c.SpanCount() == 0 {
			return
		}
		dc.SetColor(occupied.Color())
		dc.DrawRectangle(float64(x)*pixelsPerCell, float64(z)*pixelsPerCell, pixelsPerCell, pixelsPerCell)
		if err := dc.Fill(); err != nil {
			// Fill only errors on a malformed path; none is built here.
			panic(err)
		}
	})

	return dc.SavePNG(path)
}

// DumpTopArea renders one pixel block per column, colored by the area id of
// the column's topmost span (the one an agent dropped from above would land
// on), using palette to resolve area ids to colors. A nil palette uses
// DefaultPalette.
func DumpTopArea(hf *voxel.Heightfield, palette Palette, path string) error {
	if palette == nil {
		palette = DefaultPalette()
	}

	dc := gg.NewContext(int(hf.Width())*pixelsPerCell, int(hf.Length())*pixelsPerCell)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	hf.ForEachCell(func(x, z int32, c *voxel.Cell) {
		spans := c.Spans()
		if len(spans) == 0 {
			return
		}
		top := spans[len(spans)-1]
		dc.SetColor(palette.color(top.Area).Color())
		dc.DrawRectangle(float64(x)*pixelsPerCell, float64(z)*pixelsPerCell, pixelsPerCell, pixelsPerCell)
		if err := dc.Fill(); err != nil {
			panic(err)
		}
	})

	return dc.SavePNG(path)
}
