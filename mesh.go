package cubemesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrUnknownVertex     = errors.New("unknown vertex id")
	ErrDuplicatePosition = errors.New("duplicate vertex position")
	ErrDegenerate        = errors.New("degenerate triangle")
)

type Vertex struct {
	ID       int
	Position mgl64.Vec3
}

// Triangle references three vertex ids. The order A, B, C is counter-clockwise seen from outside.
type Triangle struct {
	A, B, C int
}

// Mesh is an append-only vertex and triangle list. Vertex ids are the insertion order.
type Mesh struct {
	vertices   []Vertex
	triangles  []Triangle
	pointIndex map[positionKey]int
	duplicates int
}

func NewMesh() *Mesh {
	return &Mesh{
		vertices:   make([]Vertex, 0, 8),
		triangles:  make([]Triangle, 0, 12),
		pointIndex: make(map[positionKey]int),
	}
}

// maxPreallocate bounds the capacity hint taken by newMeshSized; larger meshes grow by append.
const maxPreallocate = 1 << 16

// newMeshSized preallocates for an expected vertex and triangle count.
func newMeshSized(vertexCount, triangleCount int) *Mesh {
	vertexCount = min(max(vertexCount, 0), maxPreallocate)
	triangleCount = min(max(triangleCount, 0), maxPreallocate)
	return &Mesh{
		vertices:   make([]Vertex, 0, vertexCount),
		triangles:  make([]Triangle, 0, triangleCount),
		pointIndex: make(map[positionKey]int, vertexCount),
	}
}

// AddPoint appends a vertex and returns its id. Points are never merged; a point
// landing on an existing position is recorded and reported by Validate.
func (m *Mesh) AddPoint(p mgl64.Vec3) int {
	id := len(m.vertices)
	m.vertices = append(m.vertices, Vertex{ID: id, Position: p})

	if _, found := m.FindPoint(p); found {
		m.duplicates++
	} else {
		m.pointIndex[keyOf(p)] = id
	}
	return id
}

func (m *Mesh) AddTriangle(a, b, c int) {
	m.triangles = append(m.triangles, Triangle{A: a, B: b, C: c})
}

// FindPoint returns the id of a vertex within positionEpsilon of p. Keys are rounded
// to a positionEpsilon grid, so the neighbouring cells are searched as well.
func (m *Mesh) FindPoint(p mgl64.Vec3) (int, bool) {
	key := keyOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				id, found := m.pointIndex[positionKey{key[0] + dx, key[1] + dy, key[2] + dz}]
				if found && m.vertices[id].Position.Sub(p).Len() <= positionEpsilon {
					return id, true
				}
			}
		}
	}
	return 0, false
}

func (m *Mesh) Position(id int) (mgl64.Vec3, error) {
	if id < 0 || id >= len(m.vertices) {
		return mgl64.Vec3{}, fmt.Errorf("vertex %d of %d: %w", id, len(m.vertices), ErrUnknownVertex)
	}
	return m.vertices[id].Position, nil
}

func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Vertices returns a copy of the vertex list.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Triangles returns a copy of the triangle list.
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, len(m.triangles))
	copy(out, m.triangles)
	return out
}

// DuplicateCount is the number of vertices added on top of an existing position.
func (m *Mesh) DuplicateCount() int {
	return m.duplicates
}

// Validate checks triangle references, degenerate triangles and duplicate positions.
func (m *Mesh) Validate() error {
	if m.duplicates > 0 {
		return fmt.Errorf("%d vertices: %w", m.duplicates, ErrDuplicatePosition)
	}
	for i, t := range m.triangles {
		for _, id := range [3]int{t.A, t.B, t.C} {
			if id < 0 || id >= len(m.vertices) {
				return fmt.Errorf("triangle %d references vertex %d: %w", i, id, ErrUnknownVertex)
			}
		}
		if t.A == t.B || t.B == t.C || t.A == t.C {
			return fmt.Errorf("triangle %d (%d %d %d): %w", i, t.A, t.B, t.C, ErrDegenerate)
		}
		n := triangleNormal(m.vertices[t.A].Position, m.vertices[t.B].Position, m.vertices[t.C].Position)
		if n.Len() < positionEpsilon {
			return fmt.Errorf("triangle %d has zero area: %w", i, ErrDegenerate)
		}
	}
	return nil
}
