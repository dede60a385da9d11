package material

import (
	"math"
	"math/rand"

	"github.com/avclark/go-rtrace/pkg/core"
)

// Dielectric represents a transparent material like glass or water. The
// scatter path refracts by Snell's law, falling back to reflection on total
// internal reflection. Reflectance is not Fresnel-weighted; attenuation is
// always the surface texture's color at the hit point.
type Dielectric struct {
	RefractionIndex float64
	Albedo          Texture
}

// NewDielectric creates a dielectric material with the given refraction index
func NewDielectric(refractionIndex float64, albedo core.Color) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Albedo: NewSolidColor(albedo)}
}

// NewGlass creates a clear dielectric with the refraction index of glass
func NewGlass() *Dielectric {
	return NewDielectric(1.5, core.White)
}

// Scatter refracts or reflects the ray depending on the angle of incidence
func (d *Dielectric) Scatter(rayIn core.Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	// Entering the surface divides by the index, exiting multiplies
	ri := d.RefractionIndex
	if rec.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDir.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if ri*sinTheta > 1.0 {
		// Total internal reflection
		direction = core.Reflect(unitDir, rec.Normal)
	} else {
		direction = core.Refract(unitDir, rec.Normal, ri)
	}

	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction),
		Attenuation: d.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}
