// Package skybox provides background color functions for rays that escape
// the scene without hitting any primitive.
package skybox

import (
	"math"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

// SkyBox produces a background color for a ray that hit nothing
type SkyBox interface {
	Color(r core.Ray) core.Color
}

// Gradient interpolates linearly between a lower and an upper color based on
// the vertical component of the ray direction.
type Gradient struct {
	Upper, Lower core.Color
}

// NewGradient creates a vertical gradient skybox
func NewGradient(upper, lower core.Color) *Gradient {
	return &Gradient{Upper: upper, Lower: lower}
}

// Color blends the two colors by the ray's vertical angle
func (g *Gradient) Color(r core.Ray) core.Color {
	unitDir := r.Direction.Normalize()
	a := 0.5 * (unitDir.Y + 1.0)
	return g.Lower.Multiply(1.0 - a).Add(g.Upper.Multiply(a))
}

// Solid returns a single color regardless of ray direction
type Solid struct {
	C core.Color
}

// NewSolid creates a constant-color skybox
func NewSolid(c core.Color) *Solid {
	return &Solid{C: c}
}

// Color returns the constant color
func (s *Solid) Color(r core.Ray) core.Color {
	return s.C
}

// Image samples an equirectangular environment image by the ray's spherical
// angles, with the same wrap and offset semantics as an ImageMap texture.
type Image struct {
	Tex *material.ImageMap
}

// NewImage creates a skybox backed by an equirectangular image
func NewImage(tex *material.ImageMap) *Image {
	return &Image{Tex: tex}
}

// Color maps the ray direction to longitude/latitude and samples the image
func (i *Image) Color(r core.Ray) core.Color {
	dir := r.Direction.Normalize()

	phi := math.Atan2(dir.Z, dir.X)
	theta := math.Asin(dir.Y)

	u := (phi + math.Pi) / (2 * math.Pi)
	v := (theta - math.Pi/2) / math.Pi

	return i.Tex.Value(u, v, core.Point3{})
}
