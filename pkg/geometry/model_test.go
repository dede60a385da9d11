package geometry

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/avclark/go-rtrace/pkg/core"
)

const tetrahedronMesh = `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1

f 1 2 3
f 1 2 4
f 1 3 4
f 2 3 4
`

func TestReadModel_Tetrahedron(t *testing.T) {
	model, err := ReadModel(strings.NewReader(tetrahedronMesh), testMaterial())
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if got := model.TriangleCount(); got != 4 {
		t.Fatalf("Expected 4 triangles, got %d", got)
	}

	// The slanted face x+y+z=1 is hit first from +z, at z=0.5
	ray := core.NewRay(core.NewPoint3(0.25, 0.25, 5), core.NewVec3(0, 0, -1))
	rec, isHit := model.Hit(ray, core.NewInterval(0.001, 1000))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(rec.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got t=%f", rec.T)
	}
}

func TestReadModel_CRLFAndExtraBlankLines(t *testing.T) {
	mesh := strings.ReplaceAll(tetrahedronMesh, "\n", "\r\n")
	model, err := ReadModel(strings.NewReader(mesh), testMaterial())
	if err != nil {
		t.Fatalf("Expected CRLF mesh to parse, got %v", err)
	}
	if got := model.TriangleCount(); got != 4 {
		t.Errorf("Expected 4 triangles, got %d", got)
	}
}

func TestReadModel_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no blank line separator", "v 0 0 0\nf 1 1 1\n"},
		{"wrong vertex tag", "x 0 0 0\n\nf 1 1 1\n"},
		{"vertex field count", "v 0 0\n\nf 1 1 1\n"},
		{"non-numeric vertex", "v a b c\n\nf 1 1 1\n"},
		{"wrong face tag", "v 0 0 0\n\ng 1 1 1\n"},
		{"face field count", "v 0 0 0\n\nf 1 1\n"},
		{"non-integer face index", "v 0 0 0\n\nf 1 1 x\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1 2 4\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 0 1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadModel(strings.NewReader(tt.data), testMaterial())
			if err == nil {
				t.Fatal("Expected parse error, got nil")
			}
			if !errors.Is(err, ErrMalformedMesh) {
				t.Errorf("Expected ErrMalformedMesh, got %v", err)
			}
		})
	}
}

func TestNewModel_Empty(t *testing.T) {
	model, err := NewModel(nil, nil, testMaterial())
	if err != nil {
		t.Fatalf("Expected empty model to build, got %v", err)
	}

	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, isHit := model.Hit(ray, core.NewInterval(0.001, 1000)); isHit {
		t.Error("Expected empty model to miss")
	}
}

func TestModel_BoundingBox(t *testing.T) {
	model, err := ReadModel(strings.NewReader(tetrahedronMesh), testMaterial())
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}

	box := model.BoundingBox()
	if box.X.Min > 0 || box.X.Max < 1 || box.Y.Min > 0 || box.Y.Max < 1 || box.Z.Min > 0 || box.Z.Max < 1 {
		t.Errorf("Expected box to enclose the unit tetrahedron, got %+v", box)
	}
}
