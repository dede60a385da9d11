package geometry

import (
	"math/rand"
	"sort"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

// SplitStrategy selects how a BVH node picks its partition axis
type SplitStrategy int

const (
	// SplitRandomAxis picks a uniformly random axis per node, seeded for
	// reproducible builds. This mirrors the classic construction; tree
	// quality is arbitrary but correctness does not depend on the choice.
	SplitRandomAxis SplitStrategy = iota

	// SplitLongestAxis picks the axis with the largest bounding-box extent
	SplitLongestAxis
)

// defaultBVHSeed keeps repeated builds of the same scene identical
const defaultBVHSeed = 1

// BVHNode is a binary split over a set of primitives. Internal nodes hold
// child nodes; leaves hold one primitive per side, duplicating a lone
// primitive onto both sides.
type BVHNode struct {
	Left, Right Hittable

	bbox core.AABB
}

// NewBVH builds a BVH over the given primitives with the random-axis
// strategy. The input slice is not modified.
func NewBVH(assets []Hittable) *BVHNode {
	return NewBVHWithStrategy(assets, SplitRandomAxis, defaultBVHSeed)
}

// NewBVHWithStrategy builds a BVH with an explicit split strategy and seed.
// Building with the same inputs always produces the same tree.
func NewBVHWithStrategy(assets []Hittable, strategy SplitStrategy, seed int64) *BVHNode {
	if len(assets) == 0 {
		return nil
	}

	// Copy so sorting never mutates the caller's scene list
	assetsCopy := make([]Hittable, len(assets))
	copy(assetsCopy, assets)

	rng := rand.New(rand.NewSource(seed))
	return buildBVH(assetsCopy, strategy, rng)
}

func buildBVH(assets []Hittable, strategy SplitStrategy, rng *rand.Rand) *BVHNode {
	node := &BVHNode{}

	switch len(assets) {
	case 1:
		node.Left = assets[0]
		node.Right = assets[0]
	case 2:
		node.Left = assets[0]
		node.Right = assets[1]
	default:
		axis := splitAxis(assets, strategy, rng)
		sort.SliceStable(assets, func(i, j int) bool {
			return assets[i].BoundingBox().AxisInterval(axis).Min <
				assets[j].BoundingBox().AxisInterval(axis).Min
		})

		mid := len(assets) / 2
		node.Left = buildBVH(assets[:mid], strategy, rng)
		node.Right = buildBVH(assets[mid:], strategy, rng)
	}

	node.bbox = core.NewAABBFromBoxes(node.Left.BoundingBox(), node.Right.BoundingBox())
	return node
}

func splitAxis(assets []Hittable, strategy SplitStrategy, rng *rand.Rand) int {
	if strategy == SplitLongestAxis {
		bbox := assets[0].BoundingBox()
		for _, a := range assets[1:] {
			bbox = core.NewAABBFromBoxes(bbox, a.BoundingBox())
		}
		return bbox.LongestAxis()
	}
	return rng.Intn(3)
}

// Hit prunes the subtree when the ray misses this node's box, then tests the
// left child and the right child with the window tightened to the left hit.
// The closer of two overlapping hits always wins.
func (n *BVHNode) Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(r, rayT) {
		return nil, false
	}

	recLeft, hitLeft := n.Left.Hit(r, rayT)
	if hitLeft {
		rayT.Max = recLeft.T
	}

	if recRight, hitRight := n.Right.Hit(r, rayT); hitRight {
		return recRight, true
	}
	return recLeft, hitLeft
}

// BoundingBox returns the union of both children's bounding boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Count returns the number of nodes in the subtree, counting shared leaf
// primitives once per reference.
func (n *BVHNode) Count() int {
	count := 1
	if child, ok := n.Left.(*BVHNode); ok {
		count += child.Count()
	}
	if child, ok := n.Right.(*BVHNode); ok && n.Right != n.Left {
		count += child.Count()
	}
	return count
}
