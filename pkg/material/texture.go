package material

import (
	"github.com/avclark/go-rtrace/pkg/core"
)

// Texture is a 2D color field sampled at the surface coordinates of a hit
type Texture interface {
	// Value returns the texture color at surface coordinates (u, v); p is the
	// hit point in world space for textures that vary spatially.
	Value(u, v float64, p core.Point3) core.Color
}

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Albedo core.Color
}

// NewSolidColor creates a constant-color texture
func NewSolidColor(albedo core.Color) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// Value returns the solid color regardless of coordinates
func (s *SolidColor) Value(u, v float64, p core.Point3) core.Color {
	return s.Albedo
}
