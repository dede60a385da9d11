package geometry

import (
	"math"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Point3
	Material   material.Material

	bbox core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point3, mat material.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		bbox: core.NewAABB(
			core.NewInterval(min3(v0.X, v1.X, v2.X), max3(v0.X, v1.X, v2.X)),
			core.NewInterval(min3(v0.Y, v1.Y, v2.Y), max3(v0.Y, v1.Y, v2.Y)),
			core.NewInterval(min3(v0.Z, v1.Z, v2.Z), max3(v0.Z, v1.Z, v2.Z)),
		),
	}
}

// Hit intersects the ray with the triangle using Möller–Trumbore. The
// barycentric coordinates double as the surface coordinates of the hit.
func (tr *Triangle) Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	e1 := tr.V1.Subtract(tr.V0)
	e2 := tr.V2.Subtract(tr.V0)

	pvec := r.Direction.Cross(e2)
	det := pvec.Dot(e1)

	// Ray is parallel to the triangle's plane
	if math.Abs(det) < 1e-8 {
		return nil, false
	}
	invDet := 1.0 / det

	tvec := r.Origin.Subtract(tr.V0)
	u := pvec.Dot(tvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(e1)
	v := qvec.Dot(r.Direction) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := e2.Dot(qvec) * invDet
	if !rayT.Surrounds(t) {
		return nil, false
	}

	rec := &material.HitRecord{
		T:        t,
		Point:    r.At(t),
		U:        u,
		V:        v,
		Material: tr.Material,
	}
	rec.SetFaceNormal(r, e1.Cross(e2).Normalize())

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bbox
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
