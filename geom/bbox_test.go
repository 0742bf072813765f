package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlappingTouchingCountsAsOverlap(t *testing.T) {
	a := BBox3{Min: NewVec3(0, 0, 0), Max: NewVec3(1, 1, 1)}
	b := BBox3{Min: NewVec3(1, 0, 0), Max: NewVec3(2, 1, 1)}
	assert.True(t, Overlapping(a, b))
}

func TestOverlappingDisjoint(t *testing.T) {
	a := BBox3{Min: NewVec3(0, 0, 0), Max: NewVec3(1, 1, 1)}
	b := BBox3{Min: NewVec3(2, 0, 0), Max: NewVec3(3, 1, 1)}
	assert.False(t, Overlapping(a, b))
}

func TestFromVerts(t *testing.T) {
	verts := []Vec3{
		NewVec3(1, -2, 3),
		NewVec3(-1, 4, 0),
		NewVec3(2, 1, -5),
	}
	box := FromVerts(verts)
	assert.Equal(t, NewVec3(-1, -2, -5), box.Min)
	assert.Equal(t, NewVec3(2, 4, 3), box.Max)
}

func TestClampInt(t *testing.T) {
	assert.EqualValues(t, 0, ClampInt(-5, 0, 10))
	assert.EqualValues(t, 10, ClampInt(15, 0, 10))
	assert.EqualValues(t, 4, ClampInt(4, 0, 10))
}

func TestDirOffsets(t *testing.T) {
	assert.EqualValues(t, -1, DirOffsetX(0))
	assert.EqualValues(t, 0, DirOffsetZ(0))
	assert.EqualValues(t, 1, DirOffsetX(2))
	assert.EqualValues(t, -1, DirOffsetZ(3))
}
