package chunk

import (
	"sort"

	"github.com/aurelien-rainone/math32"

	"github.com/arl/voxelfield/geom"
	"github.com/arl/voxelfield/voxel"
)

// Node is one entry of a ChunkyTriMesh's flattened AABB tree. Leaf nodes
// have TriCount > 0 and describe a contiguous run of TriCount triangles
// starting at TriStart in the mesh's reordered triangle list. Internal
// nodes have TriCount == 0; a traversal that doesn't overlap BMin/BMax
// skips ahead by EscapeOffset entries instead of descending into children.
type Node struct {
	BMin, BMax   [2]float32
	TriStart     int32
	TriCount     int32
	EscapeOffset int32
}

func (n *Node) isLeaf() bool { return n.TriCount > 0 }

// ChunkyTriMesh is a triangle mesh reordered into spatially coherent
// chunks of at most MaxTrisPerChunk() triangles each, queryable by AABB or
// by segment, so a large input mesh can be batch-rasterized without
// visiting every triangle per query.
type ChunkyTriMesh struct {
	nodes    []Node
	tris     []int32 // reordered vertex-index triples, 3 per triangle
	origTri  []int32 // origTri[i] is the pre-reorder index of tris[i*3:i*3+3]
	maxChunk int32
}

type boundsItem struct {
	bmin, bmax [2]float32
	i          int32
}

// New partitions tris (vertex indices into verts, 3 per triangle) into an
// AABB tree where every leaf holds at most trisPerChunk triangles.
func New(verts []geom.Vec3, tris []int32, trisPerChunk int32) (*ChunkyTriMesh, error) {
	if len(tris)%3 != 0 {
		return nil, &voxel.ArgumentError{Reason: "len(tris) must be a multiple of 3"}
	}
	if trisPerChunk <= 0 {
		return nil, &voxel.ArgumentError{Reason: "trisPerChunk must be > 0"}
	}
	for _, idx := range tris {
		if idx < 0 || int(idx) >= len(verts) {
			return nil, &voxel.ArgumentError{Reason: "triangle index out of range"}
		}
	}

	ntris := int32(len(tris) / 3)
	if ntris == 0 {
		return &ChunkyTriMesh{}, nil
	}

	items := make([]boundsItem, ntris)
	for i := int32(0); i < ntris; i++ {
		t := tris[i*3 : i*3+3]
		it := &items[i]
		it.i = i
		v0 := verts[t[0]]
		it.bmin = [2]float32{v0[0], v0[2]}
		it.bmax = it.bmin
		for j := 1; j < 3; j++ {
			v := verts[t[j]]
			if v[0] < it.bmin[0] {
				it.bmin[0] = v[0]
			}
			if v[2] < it.bmin[1] {
				it.bmin[1] = v[2]
			}
			if v[0] > it.bmax[0] {
				it.bmax[0] = v[0]
			}
			if v[2] > it.bmax[1] {
				it.bmax[1] = v[2]
			}
		}
	}

	nchunks := (ntris + trisPerChunk - 1) / trisPerChunk
	cm := &ChunkyTriMesh{
		nodes:   make([]Node, nchunks*4),
		tris:    make([]int32, ntris*3),
		origTri: make([]int32, ntris),
	}

	var curTri, curNode int32
	subdivide(items, 0, ntris, trisPerChunk, &curNode, cm.nodes, &curTri, cm.tris, cm.origTri, tris)
	cm.nodes = cm.nodes[:curNode]

	for i := range cm.nodes {
		if n := &cm.nodes[i]; n.isLeaf() && n.TriCount > cm.maxChunk {
			cm.maxChunk = n.TriCount
		}
	}
	return cm, nil
}

func calcExtends(items []boundsItem, imin, imax int32) (bmin, bmax [2]float32) {
	bmin, bmax = items[imin].bmin, items[imin].bmax
	for i := imin + 1; i < imax; i++ {
		it := items[i]
		if it.bmin[0] < bmin[0] {
			bmin[0] = it.bmin[0]
		}
		if it.bmin[1] < bmin[1] {
			bmin[1] = it.bmin[1]
		}
		if it.bmax[0] > bmax[0] {
			bmax[0] = it.bmax[0]
		}
		if it.bmax[1] > bmax[1] {
			bmax[1] = it.bmax[1]
		}
	}
	return bmin, bmax
}

func longestAxis(x, y float32) int {
	if y > x {
		return 1
	}
	return 0
}

func subdivide(items []boundsItem, imin, imax, trisPerChunk int32, curNode *int32, nodes []Node,
	curTri *int32, outTris, origTri, inTris []int32) {

	inum := imax - imin
	icur := *curNode

	node := &nodes[*curNode]
	(*curNode)++

	node.BMin, node.BMax = calcExtends(items, imin, imax)

	if inum <= trisPerChunk {
		node.TriStart = *curTri
		node.TriCount = inum
		for i := imin; i < imax; i++ {
			src := inTris[items[i].i*3:]
			dst := outTris[(*curTri)*3:]
			copy(dst[:3], src[:3])
			origTri[*curTri] = items[i].i
			(*curTri)++
		}
		return
	}

	axis := longestAxis(node.BMax[0]-node.BMin[0], node.BMax[1]-node.BMin[1])
	run := items[imin:imax]
	if axis == 0 {
		sort.SliceStable(run, func(i, j int) bool { return run[i].bmin[0] < run[j].bmin[0] })
	} else {
		sort.SliceStable(run, func(i, j int) bool { return run[i].bmin[1] < run[j].bmin[1] })
	}

	isplit := imin + inum/2
	subdivide(items, imin, isplit, trisPerChunk, curNode, nodes, curTri, outTris, origTri, inTris)
	subdivide(items, isplit, imax, trisPerChunk, curNode, nodes, curTri, outTris, origTri, inTris)

	node.EscapeOffset = (*curNode) - icur
}

// NumTriangles returns the number of triangles in the mesh.
func (cm *ChunkyTriMesh) NumTriangles() int32 { return int32(len(cm.tris) / 3) }

// MaxTrisPerChunk returns the largest leaf triangle count actually produced,
// which may be less than the trisPerChunk passed to New.
func (cm *ChunkyTriMesh) MaxTrisPerChunk() int32 { return cm.maxChunk }

// Triangle returns the three vertex indices and the original (pre-reorder)
// triangle index for the i'th triangle in the reordered mesh, as produced
// inside a leaf Node's [TriStart, TriStart+TriCount) range.
func (cm *ChunkyTriMesh) Triangle(i int32) (a, b, c int32, origIndex int32) {
	t := cm.tris[i*3 : i*3+3]
	return t[0], t[1], t[2], cm.origTri[i]
}

func checkOverlapRect(amin, amax, bmin, bmax [2]float32) bool {
	if amin[0] > bmax[0] || amax[0] < bmin[0] {
		return false
	}
	if amin[1] > bmax[1] || amax[1] < bmin[1] {
		return false
	}
	return true
}

// QueryOverlappingChunks returns every leaf node whose bounds overlap the
// axis-aligned XZ rectangle [bmin,bmax].
func (cm *ChunkyTriMesh) QueryOverlappingChunks(bmin, bmax [2]float32) []Node {
	var out []Node
	cm.walk(func(n *Node) bool { return checkOverlapRect(bmin, bmax, n.BMin, n.BMax) }, &out)
	return out
}

func checkOverlapSegment(p, q, bmin, bmax [2]float32) bool {
	const epsilon = 1e-6
	tmin, tmax := float32(0), float32(1)
	d := [2]float32{q[0] - p[0], q[1] - p[1]}

	for i := 0; i < 2; i++ {
		if math32.Abs(d[i]) < epsilon {
			if p[i] < bmin[i] || p[i] > bmax[i] {
				return false
			}
			continue
		}
		ood := 1 / d[i]
		t1 := (bmin[i] - p[i]) * ood
		t2 := (bmax[i] - p[i]) * ood
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

// QueryOverlappingSegment returns every leaf node whose bounds the XZ
// segment [p,q] passes through.
func (cm *ChunkyTriMesh) QueryOverlappingSegment(p, q [2]float32) []Node {
	var out []Node
	cm.walk(func(n *Node) bool { return checkOverlapSegment(p, q, n.BMin, n.BMax) }, &out)
	return out
}

func (cm *ChunkyTriMesh) walk(overlaps func(*Node) bool, out *[]Node) {
	var i int32
	for i < int32(len(cm.nodes)) {
		node := &cm.nodes[i]
		ok := overlaps(node)
		if ok && node.isLeaf() {
			*out = append(*out, *node)
		}
		if ok || node.isLeaf() {
			i++
		} else {
			i += node.EscapeOffset
		}
	}
}
