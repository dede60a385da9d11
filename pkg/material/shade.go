package material

import (
	"math/rand"

	"github.com/avclark/go-rtrace/pkg/core"
)

// VectorShade colors a surface by its normal vector and terminates the path.
// Useful for previewing geometry without full light transport.
type VectorShade struct{}

// NewVectorShade creates a normal-visualization material
func NewVectorShade() *VectorShade {
	return &VectorShade{}
}

// Scatter always declines; the shade is terminal
func (s *VectorShade) Scatter(rayIn core.Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted maps the unit normal from [-1,1] to RGB in [0,1]
func (s *VectorShade) Emitted(rec HitRecord) core.Color {
	return rec.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

// MonoShade colors a surface with a single flat color and terminates the
// path, ignoring lighting entirely.
type MonoShade struct {
	Albedo core.Color
}

// NewMonoShade creates a flat-shaded material
func NewMonoShade(albedo core.Color) *MonoShade {
	return &MonoShade{Albedo: albedo}
}

// Scatter always declines; the shade is terminal
func (s *MonoShade) Scatter(rayIn core.Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the flat albedo
func (s *MonoShade) Emitted(rec HitRecord) core.Color {
	return s.Albedo
}
