package material

import (
	"math/rand"

	"github.com/avclark/go-rtrace/pkg/core"
)

// Metal represents a reflective material with optional surface fuzz
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // 0 is a perfect mirror, 1 is very rough
}

// NewMetal creates a metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter mirrors the ray about the surface normal, perturbed by fuzz. The
// ray is absorbed when the perturbation pushes it below the surface.
func (m *Metal) Scatter(rayIn core.Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, rec.Normal)
	reflected = reflected.Normalize().Add(core.RandomUnitVector(rng).Multiply(m.Fuzz))

	result := ScatterResult{
		Scattered:   core.NewRay(rec.Point, reflected),
		Attenuation: m.Albedo,
	}
	return result, reflected.Dot(rec.Normal) > 0
}
