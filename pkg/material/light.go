package material

import (
	"math/rand"

	"github.com/avclark/go-rtrace/pkg/core"
)

// DiffuseLight is a pure emitter. It never scatters; paths terminate at its
// surface with the texture color scaled by the emission intensity.
type DiffuseLight struct {
	Emission  Texture
	Intensity float64
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Color, intensity float64) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission), Intensity: intensity}
}

// NewTexturedDiffuseLight creates a light whose emission varies by texture
func NewTexturedDiffuseLight(emission Texture, intensity float64) *DiffuseLight {
	return &DiffuseLight{Emission: emission, Intensity: intensity}
}

// Scatter always declines; lights absorb incoming paths
func (l *DiffuseLight) Scatter(rayIn core.Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission texture sampled at the hit, scaled by intensity
func (l *DiffuseLight) Emitted(rec HitRecord) core.Color {
	return l.Emission.Value(rec.U, rec.V, rec.Point).Multiply(l.Intensity)
}
