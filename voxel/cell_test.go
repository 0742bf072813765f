package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAddSpanDisjoint(t *testing.T) {
	var c Cell
	c.AddSpan(Span{Min: 10, Max: 20, Area: 1})
	c.AddSpan(Span{Min: 0, Max: 5, Area: 2})
	c.AddSpan(Span{Min: 30, Max: 40, Area: 3})

	require.Len(t, c.Spans(), 3)
	assert.Equal(t, Span{Min: 0, Max: 5, Area: 2}, c.Spans()[0])
	assert.Equal(t, Span{Min: 10, Max: 20, Area: 1}, c.Spans()[1])
	assert.Equal(t, Span{Min: 30, Max: 40, Area: 3}, c.Spans()[2])
}

func TestCellAddSpanMergesOverlap(t *testing.T) {
	var c Cell
	c.AddSpan(Span{Min: 0, Max: 5, Area: WalkableArea})
	c.AddSpan(Span{Min: 3, Max: 8, Area: NullArea})

	require.Len(t, c.Spans(), 1)
	got := c.Spans()[0]
	assert.EqualValues(t, 0, got.Min)
	assert.EqualValues(t, 8, got.Max)
	assert.Equal(t, NullArea, got.Area) // inserted Max(8) > existing Max(5) wins
}

func TestCellAddSpanMergesTouchingRun(t *testing.T) {
	var c Cell
	c.AddSpan(Span{Min: 0, Max: 2, Area: 1})
	c.AddSpan(Span{Min: 4, Max: 6, Area: 2})
	c.AddSpan(Span{Min: 2, Max: 4, Area: 3}) // bridges the two, touching both

	require.Len(t, c.Spans(), 1)
	got := c.Spans()[0]
	assert.EqualValues(t, 0, got.Min)
	assert.EqualValues(t, 6, got.Max)
	assert.Equal(t, AreaFlags(2), got.Area) // highest Max among the merged run
}
