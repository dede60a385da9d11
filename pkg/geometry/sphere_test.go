package geometry

import (
	"math"
	"testing"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

func testMaterial() material.Material {
	return material.NewLambertian(core.Gray)
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1, testMaterial())
	ray := core.NewRay(core.NewPoint3(2, 0, 0), core.NewVec3(0, 1, 0))

	if rec, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1000)); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", rec.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1, testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Point3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewPoint3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewPoint3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			rec, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1000))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
			if !vecsClose(rec.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
		})
	}
}

func TestSphere_Hit_NearRootGating(t *testing.T) {
	// Both quadratic roots exist at t=1 and t=3. An interval excluding the
	// first root must fall through to the second.
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1, testMaterial())
	ray := core.NewRay(core.NewPoint3(0, 0, 2), core.NewVec3(0, 0, -1))

	rec, isHit := sphere.Hit(ray, core.NewInterval(2, 1000))
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(rec.T-3) > 1e-9 {
		t.Errorf("Expected t=3, got t=%f", rec.T)
	}

	// An interval boundary exactly at a root excludes it.
	if _, isHit := sphere.Hit(ray, core.NewInterval(1, 2)); isHit {
		t.Error("Expected exclusive boundary to reject the root at t=1")
	}
}

func TestSphere_Hit_SetsUV(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1, testMaterial())

	tests := []struct {
		name      string
		rayOrigin core.Point3
		expectedU float64
		expectedV float64
	}{
		{"+x point", core.NewPoint3(2, 0, 0), 0.5, 0.5},
		{"north pole", core.NewPoint3(0, 2, 0), 0.5, 1.0},
		{"south pole", core.NewPoint3(0, -2, 0), 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction := core.NewPoint3(0, 0, 0).Subtract(tt.rayOrigin)
			ray := core.NewRay(tt.rayOrigin, direction)
			rec, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1000))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(rec.U-tt.expectedU) > 1e-9 {
				t.Errorf("Expected u=%f, got u=%f", tt.expectedU, rec.U)
			}
			if math.Abs(rec.V-tt.expectedV) > 1e-9 {
				t.Errorf("Expected v=%f, got v=%f", tt.expectedV, rec.V)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(1, 2, 3), 2, testMaterial())
	box := sphere.BoundingBox()

	if box.X.Min != -1 || box.X.Max != 3 ||
		box.Y.Min != 0 || box.Y.Max != 4 ||
		box.Z.Min != 1 || box.Z.Max != 5 {
		t.Errorf("Expected [-1,3]x[0,4]x[1,5], got %+v", box)
	}
}

func vecsClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
