package geometry

import (
	"math"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

// Sphere represents a sphere with a center, radius and material
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material material.Material

	bbox core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// Hit solves the quadratic for the ray/sphere intersection in its reduced
// discriminant form, preferring the smaller root strictly inside rayT.
func (s *Sphere) Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	oc := s.Center.Subtract(r.Origin)

	a := r.Direction.LengthSquared()
	h := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	rec := &material.HitRecord{
		T:        root,
		Point:    r.At(root),
		Material: s.Material,
	}
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)

	return rec, true
}

// sphereUV maps a point on the unit sphere to surface coordinates via
// spherical angles: u covers longitude, v covers latitude, both in [0,1].
func sphereUV(p core.Point3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
