package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanMerge(t *testing.T) {
	tests := []struct {
		name     string
		s, t     Span
		wantMin  uint16
		wantMax  uint16
		wantArea AreaFlags
	}{
		{
			name:     "disjoint-touching extends down",
			s:        Span{Min: 5, Max: 10, Area: 3},
			t:        Span{Min: 2, Max: 5, Area: 7},
			wantMin:  2,
			wantMax:  10,
			wantArea: 3, // s reaches higher (10 > 5)
		},
		{
			name:     "tie on Max, higher priority wins",
			s:        Span{Min: 0, Max: 4, Area: 9},
			t:        Span{Min: 0, Max: 4, Area: 40},
			wantMin:  0,
			wantMax:  4,
			wantArea: 40,
		},
		{
			name:     "tie on Max and priority favors s",
			s:        Span{Min: 0, Max: 4, Area: 9},
			t:        Span{Min: 0, Max: 4, Area: 9},
			wantMin:  0,
			wantMax:  4,
			wantArea: 9,
		},
		{
			name:     "t reaches higher",
			s:        Span{Min: 0, Max: 2, Area: WalkableArea},
			t:        Span{Min: 1, Max: 8, Area: NullArea},
			wantMin:  0,
			wantMax:  8,
			wantArea: NullArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.merge(tt.t)
			assert.Equal(t, tt.wantMin, got.Min)
			assert.Equal(t, tt.wantMax, got.Max)
			assert.Equal(t, tt.wantArea, got.Area)
		})
	}
}

func TestSpanOverlapsOrTouches(t *testing.T) {
	a := Span{Min: 2, Max: 5}

	assert.True(t, a.overlapsOrTouches(Span{Min: 5, Max: 7}), "touching at boundary")
	assert.True(t, a.overlapsOrTouches(Span{Min: 0, Max: 2}), "touching at boundary, from below")
	assert.True(t, a.overlapsOrTouches(Span{Min: 3, Max: 4}), "fully contained")
	assert.False(t, a.overlapsOrTouches(Span{Min: 6, Max: 9}), "disjoint with a gap")
}
