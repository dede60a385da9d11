package geometry

import (
	"math"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

// Quad represents a flat quadrilateral spanned by two edge vectors from an
// origin corner.
type Quad struct {
	Origin   core.Point3
	U, V     core.Vec3
	Material material.Material

	w      core.Vec3 // n / dot(n,n), cached for the interior test
	normal core.Vec3
	d      float64
	bbox   core.AABB
}

// NewQuad creates a quadrilateral covering origin + a*U + b*V for a,b in [0,1]
func NewQuad(origin core.Point3, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	diag1 := core.NewAABBFromPoints(origin, origin.Add(u).Add(v))
	diag2 := core.NewAABBFromPoints(origin.Add(u), origin.Add(v))

	return &Quad{
		Origin:   origin,
		U:        u,
		V:        v,
		Material: mat,
		w:        n.Multiply(1.0 / n.Dot(n)),
		normal:   normal,
		d:        normal.Dot(origin),
		bbox:     core.NewAABBFromBoxes(diag1, diag2),
	}
}

// NewCube creates the six quads of an axis-aligned box between opposite
// corners a and b, collected in a HittableList.
func NewCube(a, b core.Point3, mat material.Material) *HittableList {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	return NewHittableList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat),          // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat),          // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat),          // bottom
	)
}

// Hit intersects the ray with the quad's plane and accepts the hit when the
// planar coordinates fall inside the unit square.
func (q *Quad) Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denom := q.normal.Dot(r.Direction)

	// Ray is parallel to the plane
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if !rayT.Contains(t) {
		return nil, false
	}

	intersection := r.At(t)
	planar := intersection.Subtract(q.Origin)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	rec := &material.HitRecord{
		T:        t,
		Point:    intersection,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	rec.SetFaceNormal(r, q.normal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
