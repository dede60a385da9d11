// Package scene aggregates primitives and a skybox, and evaluates light
// transport for rays traced through them.
package scene

import (
	"math/rand"
	"sync"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/geometry"
	"github.com/avclark/go-rtrace/pkg/material"
	"github.com/avclark/go-rtrace/pkg/skybox"
)

// minHitDistance excludes spurious self-intersection at the origin of a
// newly scattered ray.
const minHitDistance = 0.001

// Scene owns an ordered list of hittable assets and the skybox that colors
// rays which miss everything. The asset list is append-only during setup and
// immutable once rendering starts.
type Scene struct {
	Skybox skybox.SkyBox

	// UseBVH selects BVH traversal over a brute-force scan at Preprocess
	// time. Both produce identical hits; the BVH is only faster.
	UseBVH bool

	assets []geometry.Hittable
	root   geometry.Hittable
	prep   *sync.Once
}

// NewScene creates an empty scene with the given skybox. A nil skybox falls
// back to the default gradient.
func NewScene(sky skybox.SkyBox) *Scene {
	if sky == nil {
		sky = skybox.NewGradient(core.NewColor(0.7, 0.5, 1.0), core.White)
	}
	return &Scene{Skybox: sky, UseBVH: true, prep: new(sync.Once)}
}

// AddAsset appends a hittable object to the scene
func (s *Scene) AddAsset(assets ...geometry.Hittable) {
	s.assets = append(s.assets, assets...)
	s.invalidate()
}

// Clear removes all assets from the scene
func (s *Scene) Clear() {
	s.assets = nil
	s.invalidate()
}

func (s *Scene) invalidate() {
	s.root = nil
	s.prep = new(sync.Once)
}

// Assets returns the scene's asset list
func (s *Scene) Assets() []geometry.Hittable {
	return s.assets
}

// Preprocess builds the intersection structure for the current asset list.
// It is safe to call from concurrent render workers; the first caller builds
// and the rest wait. Adding an asset re-arms it.
func (s *Scene) Preprocess() {
	s.prep.Do(func() {
		if s.UseBVH && len(s.assets) > 0 {
			s.root = geometry.NewBVH(s.assets)
			return
		}
		s.root = geometry.NewHittableList(s.assets...)
	})
}

// Hit resolves the closest intersection across all assets within rayT
func (s *Scene) Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	s.Preprocess()
	return s.root.Hit(r, rayT)
}

// RayColor recursively evaluates the rendering equation for a ray. Emission
// at the hit is always collected; scattering recurses with one less bounce
// and multiplies by the material's attenuation. Rays that miss return the
// skybox color, and exhausting the bounce limit returns black.
func (s *Scene) RayColor(r core.Ray, depth int, rng *rand.Rand) core.Color {
	if depth <= 0 {
		return core.Black
	}

	rec, ok := s.Hit(r, core.NewInterval(minHitDistance, core.UniverseInterval().Max))
	if !ok {
		return s.Skybox.Color(r)
	}

	emitted := core.Black
	if emitter, isEmitter := rec.Material.(material.Emitter); isEmitter {
		emitted = emitter.Emitted(*rec)
	}

	scatter, didScatter := rec.Material.Scatter(r, *rec, rng)
	if !didScatter {
		return emitted
	}

	scattered := s.RayColor(scatter.Scattered, depth-1, rng)
	return emitted.Add(scatter.Attenuation.MultiplyVec(scattered))
}
