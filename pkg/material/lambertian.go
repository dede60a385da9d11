package material

import (
	"math/rand"

	"github.com/avclark/go-rtrace/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture
}

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a diffuse material backed by a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in a random direction biased toward the normal
func (l *Lambertian) Scatter(rayIn core.Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	scatterDir := rec.Normal.Add(core.RandomUnitVector(rng))

	// The random unit vector can cancel the normal almost exactly
	if scatterDir.NearZero() {
		scatterDir = rec.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, scatterDir),
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}
