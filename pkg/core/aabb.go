package core

import "math"

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// Flat geometry would produce a zero-width slab that every ray rejects, so
// boxes are padded up to this extent on construction.
const minBoxExtent = 1e-4

// NewAABB creates an AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates the AABB spanning the two corner points a and b
func NewAABBFromPoints(a, b Point3) AABB {
	return AABB{
		X: Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Y: Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Z: Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	}.padToMinimums()
}

func (b AABB) padToMinimums() AABB {
	if b.X.Size() < minBoxExtent {
		b.X = b.X.Expand(minBoxExtent)
	}
	if b.Y.Size() < minBoxExtent {
		b.Y = b.Y.Expand(minBoxExtent)
	}
	if b.Z.Size() < minBoxExtent {
		b.Z = b.Z.Expand(minBoxExtent)
	}
	return b
}

// NewAABBFromBoxes creates the AABB enclosing both input boxes
func NewAABBFromBoxes(a, b AABB) AABB {
	return AABB{
		X: UnionIntervals(a.X, b.X),
		Y: UnionIntervals(a.Y, b.Y),
		Z: UnionIntervals(a.Z, b.Z),
	}
}

// AxisInterval returns the interval for the given axis (0=X, 1=Y, 2=Z)
func (b AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Size returns the extent of the box along each axis
func (b AABB) Size() Vec3 {
	return Vec3{X: b.X.Size(), Y: b.Y.Size(), Z: b.Z.Size()}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// ContainsPoint reports whether p lies within the box, inclusive of faces
func (b AABB) ContainsPoint(p Point3) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Hit tests the ray against the box with the slab method, narrowing rayT per
// axis. A zero direction component yields an infinite reciprocal, which
// propagates through the comparisons to a correct pass/fail.
func (b AABB) Hit(r Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := b.AxisInterval(axis)
		adinv := 1.0 / r.Direction.Axis(axis)
		orig := r.Origin.Axis(axis)

		t0 := (ax.Min - orig) * adinv
		t1 := (ax.Max - orig) * adinv

		if t0 < t1 {
			if t0 > rayT.Min {
				rayT.Min = t0
			}
			if t1 < rayT.Max {
				rayT.Max = t1
			}
		} else {
			if t1 > rayT.Min {
				rayT.Min = t1
			}
			if t0 < rayT.Max {
				rayT.Max = t0
			}
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}
