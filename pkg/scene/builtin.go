package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/geometry"
	"github.com/avclark/go-rtrace/pkg/material"
	"github.com/avclark/go-rtrace/pkg/renderer"
	"github.com/avclark/go-rtrace/pkg/skybox"
)

// Builder constructs a ready-to-render scene together with a camera
// configuration that frames it.
type Builder func() (*Scene, renderer.CameraConfig, error)

var builtins = map[string]Builder{
	"spheres": Spheres,
	"cornell": CornellBox,
	"shaded":  NormalSpheres,
}

// Builtin returns the named demo scene builder
func Builtin(name string) (Builder, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return b, nil
}

// BuiltinNames lists the available demo scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spheres builds the classic demo: a large ground sphere, three feature
// spheres and a seeded field of small random ones.
func Spheres() (*Scene, renderer.CameraConfig, error) {
	s := NewScene(nil)

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.AddAsset(geometry.NewSphere(core.NewPoint3(0, -1000, 0), 1000, ground))

	s.AddAsset(geometry.NewSphere(core.NewPoint3(0, 1, 0), 1, material.NewGlass()))
	s.AddAsset(geometry.NewSphere(core.NewPoint3(-4, 1, 0), 1, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	s.AddAsset(geometry.NewSphere(core.NewPoint3(4, 1, 0), 1, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)))

	rng := rand.New(rand.NewSource(7))
	for a := -6; a < 6; a++ {
		for b := -6; b < 6; b++ {
			center := core.NewPoint3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Subtract(core.NewPoint3(4, 0.2, 0)).Length() < 0.9 {
				continue
			}

			var mat material.Material
			switch choose := rng.Float64(); {
			case choose < 0.7:
				albedo := core.RandomVec3(0, 1, rng).MultiplyVec(core.RandomVec3(0, 1, rng))
				mat = material.NewLambertian(albedo)
			case choose < 0.9:
				albedo := core.RandomVec3(0.5, 1, rng)
				mat = material.NewMetal(albedo, 0.5*rng.Float64())
			default:
				mat = material.NewGlass()
			}
			s.AddAsset(geometry.NewSphere(center, 0.2, mat))
		}
	}

	cfg := renderer.CameraConfig{
		Width:      800,
		Aspect:     16.0 / 9.0,
		Center:     core.NewPoint3(13, 2, 3),
		LookAt:     core.NewPoint3(0, 0, 0),
		Samples:    100,
		MaxDepth:   16,
		VFov:       20,
		FocusAngle: 0.6,
		FocusDist:  10,
	}
	return s, cfg, nil
}

// CornellBox builds the standard Cornell box with a ceiling light and two
// interior blocks.
func CornellBox() (*Scene, renderer.CameraConfig, error) {
	s := NewScene(skybox.NewSolid(core.Black))

	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewColor(1, 1, 1), 15)

	s.AddAsset(geometry.NewQuad(core.NewPoint3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	s.AddAsset(geometry.NewQuad(core.NewPoint3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	s.AddAsset(geometry.NewQuad(core.NewPoint3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))
	s.AddAsset(geometry.NewQuad(core.NewPoint3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	s.AddAsset(geometry.NewQuad(core.NewPoint3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	s.AddAsset(geometry.NewQuad(core.NewPoint3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))

	s.AddAsset(geometry.NewCube(core.NewPoint3(130, 0, 65), core.NewPoint3(295, 165, 230), white))
	s.AddAsset(geometry.NewCube(core.NewPoint3(265, 0, 295), core.NewPoint3(430, 330, 460), white))

	cfg := renderer.CameraConfig{
		Width:    600,
		Aspect:   1,
		Center:   core.NewPoint3(278, 278, -800),
		LookAt:   core.NewPoint3(278, 278, 0),
		Samples:  200,
		MaxDepth: 16,
		VFov:     40,
	}
	return s, cfg, nil
}

// NormalSpheres renders a small sphere arrangement with the normal-vector
// preview shade. Useful for checking geometry without waiting on sampling.
func NormalSpheres() (*Scene, renderer.CameraConfig, error) {
	s := NewScene(nil)

	shade := material.NewVectorShade()
	s.AddAsset(geometry.NewSphere(core.NewPoint3(0, -100.5, -1), 100, shade))
	s.AddAsset(geometry.NewSphere(core.NewPoint3(0, 0, -1), 0.5, shade))
	s.AddAsset(geometry.NewSphere(core.NewPoint3(-1, 0, -1), 0.5, shade))
	s.AddAsset(geometry.NewSphere(core.NewPoint3(1, 0, -1), 0.5, shade))

	cfg := renderer.CameraConfig{
		Width:    640,
		Aspect:   16.0 / 9.0,
		Center:   core.NewPoint3(0, 0, 1),
		LookAt:   core.NewPoint3(0, 0, -1),
		Samples:  4,
		MaxDepth: 4,
		VFov:     50,
	}
	return s, cfg, nil
}

// Mesh builds a scene around a triangle mesh loaded from path, lit by a
// gradient sky and an overhead light.
func Mesh(path string, mat material.Material) (*Scene, renderer.CameraConfig, error) {
	if mat == nil {
		mat = material.NewLambertian(core.NewColor(0.6, 0.6, 0.7))
	}
	model, err := geometry.LoadModel(path, mat)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	s := NewScene(nil)
	s.AddAsset(model)
	s.AddAsset(geometry.NewSphere(core.NewPoint3(0, -1001, 0), 1000, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))))
	s.AddAsset(geometry.NewQuad(
		core.NewPoint3(-2, 5, -2),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 0, 4),
		material.NewDiffuseLight(core.White, 4),
	))

	bbox := model.BoundingBox()
	target := core.NewPoint3(
		(bbox.X.Min+bbox.X.Max)/2,
		(bbox.Y.Min+bbox.Y.Max)/2,
		(bbox.Z.Min+bbox.Z.Max)/2,
	)
	span := bbox.Size().Length()
	if span == 0 {
		span = 1
	}

	cfg := renderer.CameraConfig{
		Width:    800,
		Aspect:   16.0 / 9.0,
		Center:   target.Add(core.NewVec3(0.8, 0.6, 1.6).Multiply(span)),
		LookAt:   target,
		Samples:  100,
		MaxDepth: 16,
		VFov:     35,
	}
	return s, cfg, nil
}
