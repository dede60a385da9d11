package geometry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avclark/go-rtrace/pkg/core"
	"github.com/avclark/go-rtrace/pkg/material"
)

// ErrMalformedMesh indicates a mesh resource that does not match the
// expected vertex/face structure. No partial mesh is ever produced.
var ErrMalformedMesh = errors.New("malformed mesh")

// Model is a triangle mesh built from a vertex list and a face index list.
// Intersection goes through a BVH over the triangles.
type Model struct {
	Triangles []*Triangle

	bvh  *BVHNode
	bbox core.AABB
}

// NewModel builds a model from vertices and triangular faces. Face indices
// are one-based, matching the on-disk mesh contract.
func NewModel(vertices []core.Point3, faces [][3]int, mat material.Material) (*Model, error) {
	triangles := make([]*Triangle, 0, len(faces))
	for i, face := range faces {
		for _, idx := range face {
			if idx < 1 || idx > len(vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrMalformedMesh, i+1, idx, len(vertices))
			}
		}
		triangles = append(triangles, NewTriangle(
			vertices[face[0]-1],
			vertices[face[1]-1],
			vertices[face[2]-1],
			mat,
		))
	}

	m := &Model{Triangles: triangles}
	if len(triangles) > 0 {
		assets := make([]Hittable, len(triangles))
		for i, t := range triangles {
			assets[i] = t
		}
		m.bvh = NewBVH(assets)
		m.bbox = m.bvh.BoundingBox()
	}
	return m, nil
}

// ReadModel parses a mesh from its text form: a vertex block and a face
// block separated by a blank line. Vertex lines are "v x y z"; face lines
// are "f i j k" with one-based vertex indices. Any line that does not match
// that shape fails the whole parse before a single triangle is built.
func ReadModel(r io.Reader, mat material.Material) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}

	blocks := strings.SplitN(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n", 3)
	if len(blocks) < 2 {
		return nil, fmt.Errorf("%w: missing blank line between vertex and face blocks", ErrMalformedMesh)
	}

	var vertices []core.Point3
	for _, line := range nonEmptyLines(blocks[0]) {
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "v" {
			return nil, fmt.Errorf("%w: bad vertex line %q", ErrMalformedMesh, line)
		}
		var coords [3]float64
		for i, f := range fields[1:] {
			coords[i], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad vertex line %q: %v", ErrMalformedMesh, line, err)
			}
		}
		vertices = append(vertices, core.NewVec3(coords[0], coords[1], coords[2]))
	}

	var faces [][3]int
	for _, line := range nonEmptyLines(blocks[1]) {
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "f" {
			return nil, fmt.Errorf("%w: bad face line %q", ErrMalformedMesh, line)
		}
		var face [3]int
		for i, f := range fields[1:] {
			face[i], err = strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: bad face line %q: %v", ErrMalformedMesh, line, err)
			}
		}
		faces = append(faces, face)
	}

	return NewModel(vertices, faces, mat)
}

// LoadModel reads a mesh from a file
func LoadModel(path string, mat material.Material) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()
	return ReadModel(f, mat)
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Hit tests the ray against the mesh through its BVH
func (m *Model) Hit(r core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if m.bvh == nil {
		return nil, false
	}
	return m.bvh.Hit(r, rayT)
}

// BoundingBox returns the box enclosing every triangle of the mesh
func (m *Model) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in the mesh
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}
