package distance3d

import (
	"sort"

	"github.com/aries-robot/distance3d/geom"
)

// AABBTree is a balanced binary bounding-box tree over a fixed set of
// boxes, one leaf per tetrahedron. It is rebuilt fresh for every contact
// computation and never mutated afterwards.
type AABBTree struct {
	root *aabbNode
}

type aabbNode struct {
	box         geom.AABB
	left, right *aabbNode
	// index is the tetrahedron index for leaves, -1 for internal nodes
	index int
}

func (n *aabbNode) isLeaf() bool {
	return n.left == nil
}

// NewAABBTree builds a tree over the given boxes. Leaf i carries index i.
// The tree is balanced by recursive median splits along the longest axis
// of the enclosing box.
func NewAABBTree(aabbs []geom.AABB) *AABBTree {
	if len(aabbs) == 0 {
		return &AABBTree{}
	}

	leaves := make([]*aabbNode, len(aabbs))
	for i, box := range aabbs {
		leaves[i] = &aabbNode{box: box, index: i}
	}
	return &AABBTree{root: buildSubtree(leaves)}
}

func buildSubtree(leaves []*aabbNode) *aabbNode {
	if len(leaves) == 1 {
		return leaves[0]
	}

	enclosing := leaves[0].box
	for _, leaf := range leaves[1:] {
		enclosing = enclosing.Union(leaf.box)
	}

	axis := enclosing.LongestAxis()
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].box.Center()[axis] < leaves[j].box.Center()[axis]
	})

	mid := len(leaves) / 2
	return &aabbNode{
		box:   enclosing,
		left:  buildSubtree(leaves[:mid]),
		right: buildSubtree(leaves[mid:]),
		index: -1,
	}
}

// Overlapping returns the indices of all leaves whose box overlaps the
// query box. Touching boxes count as overlapping. Subtrees whose enclosing
// box misses the query are never descended.
func (t *AABBTree) Overlapping(box geom.AABB) []int {
	var indices []int
	if t.root != nil {
		indices = collectOverlapping(t.root, box, indices)
	}
	return indices
}

func collectOverlapping(n *aabbNode, box geom.AABB, indices []int) []int {
	if !n.box.Overlaps(box) {
		return indices
	}
	if n.isLeaf() {
		return append(indices, n.index)
	}
	indices = collectOverlapping(n.left, box, indices)
	return collectOverlapping(n.right, box, indices)
}

// OverlappingPairs enumerates all (i, j) leaf index pairs of two trees
// whose boxes overlap, by simultaneous descent: subtree pairs with
// disjoint enclosing boxes are pruned wholesale.
func OverlappingPairs(a, b *AABBTree) [][2]int {
	var pairs [][2]int
	if a.root != nil && b.root != nil {
		pairs = collectOverlappingPairs(a.root, b.root, pairs)
	}
	return pairs
}

func collectOverlappingPairs(a, b *aabbNode, pairs [][2]int) [][2]int {
	if !a.box.Overlaps(b.box) {
		return pairs
	}

	switch {
	case a.isLeaf() && b.isLeaf():
		return append(pairs, [2]int{a.index, b.index})
	case a.isLeaf():
		pairs = collectOverlappingPairs(a, b.left, pairs)
		return collectOverlappingPairs(a, b.right, pairs)
	case b.isLeaf():
		pairs = collectOverlappingPairs(a.left, b, pairs)
		return collectOverlappingPairs(a.right, b, pairs)
	default:
		pairs = collectOverlappingPairs(a.left, b.left, pairs)
		pairs = collectOverlappingPairs(a.left, b.right, pairs)
		pairs = collectOverlappingPairs(a.right, b.left, pairs)
		return collectOverlappingPairs(a.right, b.right, pairs)
	}
}
