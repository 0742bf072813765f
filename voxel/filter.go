package voxel

import "github.com/arl/voxelfield/geom"

// FilterLowHangingWalkableObstacles fuses small ledges onto walkable
// surfaces below them: walking each column bottom to top, a non-walkable
// span is relabeled walkable, copying the walkable span's area below it,
// when its top is within walkableClimb of that span's top.
//
// This can override decisions made by FilterLedgeSpans; if both filters
// are used, call FilterLedgeSpans after this one.
func FilterLowHangingWalkableObstacles(ctx *BuildContext, walkableClimb int32, hf *Heightfield) {
	ctx.StartTimer(TimerFilterLowObstacles)
	defer ctx.StopTimer(TimerFilterLowObstacles)

	hf.ForEachCell(func(x, z int32, c *Cell) {
		var prevArea AreaFlags = NullArea
		var prevMax uint16
		prevWalkable := false

		for i := range c.spans {
			s := &c.spans[i]
			walkable := s.Area.Walkable()
			if !walkable && prevWalkable {
				if absInt32(int32(s.Max)-int32(prevMax)) < walkableClimb {
					s.Area = prevArea
					walkable = true
				}
			}
			prevWalkable = walkable
			prevArea = s.Area
			prevMax = s.Max
		}
	})
}

// FilterWalkableLowHeightSpans culls spans with insufficient headroom: for
// every pair of vertically consecutive spans in a column, the lower span
// is marked unwalkable (NullArea) if the gap to the span above it is at
// most walkableHeight. The topmost span in a column is never modified,
// since infinite headroom is assumed above it.
func FilterWalkableLowHeightSpans(ctx *BuildContext, walkableHeight int32, hf *Heightfield) {
	ctx.StartTimer(TimerFilterWalkableHeight)
	defer ctx.StopTimer(TimerFilterWalkableHeight)

	hf.ForEachCell(func(x, z int32, c *Cell) {
		spans := c.spans
		for i := 0; i+1 < len(spans); i++ {
			gap := int32(spans[i+1].Min) - int32(spans[i].Max)
			if gap <= walkableHeight {
				spans[i].Area = NullArea
			}
		}
	})
}

// maxNeighbourHeight is the sentinel used for "no span above" (ceiling at
// infinity) and "no span at all" (ceiling of a neighbour's implicit floor):
// 0xffff stands in for +infinity in voxel units.
const maxNeighbourHeight = 0xffff

// FilterLedgeSpans marks a walkable span unwalkable when it sits on a
// ledge: either a drop to a neighbour exceeding walkableClimb, or a set of
// accessible neighbours spanning a vertical range exceeding walkableClimb
// (a steep slope).
func FilterLedgeSpans(ctx *BuildContext, walkableHeight, walkableClimb int32, hf *Heightfield) {
	ctx.StartTimer(TimerFilterLedgeSpans)
	defer ctx.StopTimer(TimerFilterLedgeSpans)

	hf.ForEachCell(func(x, z int32, c *Cell) {
		spans := c.spans
		for i := range spans {
			s := &spans[i]
			if !s.Area.Walkable() {
				continue
			}

			bottom := int32(s.Max)
			top := int32(maxNeighbourHeight)
			if i+1 < len(spans) {
				top = int32(spans[i+1].Min)
			}

			minHeight := int32(maxNeighbourHeight)
			accMin, accMax := bottom, bottom

			for dir := int32(0); dir < 4; dir++ {
				nx := x + geom.DirOffsetX(dir)
				nz := z + geom.DirOffsetZ(dir)
				if nx < 0 || nz < 0 || nx >= hf.w || nz >= hf.l {
					minHeight = minInt32(minHeight, -walkableClimb-bottom)
					continue
				}

				nspans := hf.cellAt(nx, nz).spans

				// Virtual floor at -walkableClimb below the first real
				// neighbour span (or below everything, if the neighbour
				// column is empty), handling the implicit ground at the
				// bottom of the field.
				nbot := -walkableClimb
				ntop := int32(maxNeighbourHeight)
				if len(nspans) > 0 {
					ntop = int32(nspans[0].Min)
				}
				if minInt32(top, ntop)-maxInt32(bottom, nbot) > walkableHeight {
					minHeight = minInt32(minHeight, nbot-bottom)

					if absInt32(nbot-bottom) <= walkableClimb {
						accMin = minInt32(accMin, nbot)
						accMax = maxInt32(accMax, nbot)
					}
				}

				for j := range nspans {
					nbot = int32(nspans[j].Max)
					if j+1 < len(nspans) {
						ntop = int32(nspans[j+1].Min)
					} else {
						ntop = int32(maxNeighbourHeight)
					}

					if minInt32(top, ntop)-maxInt32(bottom, nbot) > walkableHeight {
						minHeight = minInt32(minHeight, nbot-bottom)

						if absInt32(nbot-bottom) <= walkableClimb {
							accMin = minInt32(accMin, nbot)
							accMax = maxInt32(accMax, nbot)
						}
					}
				}
			}

			if minHeight < -walkableClimb {
				s.Area = NullArea
			} else if accMax-accMin > walkableClimb {
				s.Area = NullArea
			}
		}
	})
}

func absInt32(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
