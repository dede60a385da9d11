package material

import (
	"math/rand"

	"github.com/avclark/go-rtrace/pkg/core"
)

// HitRecord contains information about a ray-object intersection. Records are
// owned by the Hit call that produced them and never reused across calls.
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, flipped to oppose the ray
	T         float64     // Parameter t along the ray
	U, V      float64     // Surface coordinates in [0,1]
	FrontFace bool        // Whether the ray hit the front face
	Material  Material    // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult contains the outgoing ray and color multiplier for one bounce
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Color
}

// Material determines how a surface scatters incoming light. Scatter either
// produces exactly one outgoing ray with an attenuation, or declines by
// returning false, which terminates the path at this surface.
type Material interface {
	Scatter(rayIn core.Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light. Materials that do not
// implement it contribute no emission (black).
type Emitter interface {
	Emitted(rec HitRecord) core.Color
}
