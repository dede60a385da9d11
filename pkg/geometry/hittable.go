package geometry

import (
	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

// Hittable is any object a ray can intersect
type Hittable interface {
	// Hit tests the ray against the object within the valid-hit window rayT.
	// On success it returns an owned hit record for the closest intersection.
	Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the full extent of the geometry
	BoundingBox() core.AABB
}

// HittableList is a flat container of hittable objects. It can optionally
// maintain a BVH over its contents, rebuilt on every Add.
type HittableList struct {
	Assets []Hittable

	useBVH bool
	bvh    *BVHNode
	bbox   core.AABB
}

// NewHittableList creates a list over the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	l := &HittableList{}
	for _, obj := range objects {
		l.Add(obj)
	}
	return l
}

// NewHittableListBVH creates a list that keeps a BVH over its contents.
// Adding rebuilds the tree, so bulk construction should pass all objects here.
func NewHittableListBVH(objects ...Hittable) *HittableList {
	l := &HittableList{useBVH: true}
	for _, obj := range objects {
		l.Assets = append(l.Assets, obj)
		l.grow(obj)
	}
	if len(l.Assets) > 0 {
		l.bvh = NewBVH(l.Assets)
	}
	return l
}

// Add appends an object to the list
func (l *HittableList) Add(obj Hittable) {
	l.Assets = append(l.Assets, obj)
	l.grow(obj)
	if l.useBVH {
		l.bvh = NewBVH(l.Assets)
	}
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Assets = nil
	l.bvh = nil
	l.bbox = core.AABB{X: core.EmptyInterval(), Y: core.EmptyInterval(), Z: core.EmptyInterval()}
}

func (l *HittableList) grow(obj Hittable) {
	if len(l.Assets) == 1 {
		l.bbox = obj.BoundingBox()
		return
	}
	l.bbox = core.NewAABBFromBoxes(l.bbox, obj.BoundingBox())
}

// Hit scans every object, shrinking the search window to the closest hit
// found so far, so only strictly closer hits replace the current best.
func (l *HittableList) Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if l.bvh != nil {
		return l.bvh.Hit(r, rayT)
	}

	var closest *material.HitRecord
	for _, obj := range l.Assets {
		if rec, ok := obj.Hit(r, rayT); ok {
			closest = rec
			rayT.Max = rec.T
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union of all contained bounding boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
