package geometry

import (
	"math"
	"testing"

	"github.com/avclark/go-rtrace/pkg/core"
)

func TestHittableList_Hit_ReturnsNearest(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewPoint3(0, 0, -10), 1, testMaterial()),
		NewSphere(core.NewPoint3(0, 0, -5), 1, testMaterial()),
		NewSphere(core.NewPoint3(0, 0, -20), 1, testMaterial()),
	)

	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))
	rec, isHit := list.Hit(ray, core.NewInterval(0.001, 1000))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", rec.T)
	}
}

func TestHittableList_Hit_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, core.NewInterval(0.001, 1000)); isHit {
		t.Error("Expected empty list to miss")
	}
}

func TestHittableList_Hit_RespectsWindow(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewPoint3(0, 0, -5), 1, testMaterial()),
		NewSphere(core.NewPoint3(0, 0, -10), 1, testMaterial()),
	)

	// Windowing past the first sphere reaches the second
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))
	rec, isHit := list.Hit(ray, core.NewInterval(7, 1000))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(rec.T-9) > 1e-9 {
		t.Errorf("Expected second sphere at t=9, got t=%f", rec.T)
	}
}

func TestHittableList_BoundingBox_GrowsWithAssets(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewPoint3(0, 0, 0), 1, testMaterial()))
	list.Add(NewSphere(core.NewPoint3(10, 0, 0), 1, testMaterial()))

	box := list.BoundingBox()
	if box.X.Min != -1 || box.X.Max != 11 {
		t.Errorf("Expected x extent [-1,11], got [%f,%f]", box.X.Min, box.X.Max)
	}
}

func TestHittableList_Clear(t *testing.T) {
	list := NewHittableList(NewSphere(core.NewPoint3(0, 0, 0), 1, testMaterial()))
	list.Clear()

	if len(list.Assets) != 0 {
		t.Errorf("Expected no assets after clear, got %d", len(list.Assets))
	}
	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, isHit := list.Hit(ray, core.NewInterval(0.001, 1000)); isHit {
		t.Error("Expected cleared list to miss")
	}
}

func TestHittableListBVH_MatchesBruteForce(t *testing.T) {
	spheres := []Hittable{
		NewSphere(core.NewPoint3(0, 0, -5), 1, testMaterial()),
		NewSphere(core.NewPoint3(3, 0, -8), 1.5, testMaterial()),
		NewSphere(core.NewPoint3(-2, 1, -3), 0.5, testMaterial()),
	}

	plain := NewHittableList(spheres...)
	accel := NewHittableListBVH(spheres...)

	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(-0.3, 0.15, -1))
	recPlain, hitPlain := plain.Hit(ray, core.NewInterval(0.001, 1000))
	recAccel, hitAccel := accel.Hit(ray, core.NewInterval(0.001, 1000))

	if hitPlain != hitAccel {
		t.Fatalf("Expected hit=%t from both, got plain=%t accel=%t", hitPlain, hitPlain, hitAccel)
	}
	if hitPlain && math.Abs(recPlain.T-recAccel.T) > 1e-9 {
		t.Errorf("Expected matching t, got plain=%f accel=%f", recPlain.T, recAccel.T)
	}

	if got, want := accel.BoundingBox(), plain.BoundingBox(); got != want {
		t.Errorf("Expected bounding box %v, got %v", want, got)
	}
}

func TestHittableListBVH_BoundingBoxExcludesOrigin(t *testing.T) {
	// Bulk construction must seed the union from the first object instead
	// of a zero-value box, so a list entirely off to one side of the origin
	// gets a tight box that does not stretch back to x=0.
	l := NewHittableListBVH(
		NewSphere(core.NewPoint3(10, 0, 0), 1, testMaterial()),
		NewSphere(core.NewPoint3(12, 0, 0), 1, testMaterial()),
	)

	box := l.BoundingBox()
	if box.X.Min != 9 || box.X.Max != 13 {
		t.Errorf("Expected X interval [9, 13], got [%g, %g]", box.X.Min, box.X.Max)
	}
	if box.X.Contains(0) {
		t.Error("Expected bounding box to exclude the origin")
	}
}
