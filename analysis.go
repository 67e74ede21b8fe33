package cubemesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type BoundingBox struct {
	Min, Max mgl64.Vec3
}

func (b BoundingBox) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b BoundingBox) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Stats summarises the geometry and topology of a triangle mesh.
type Stats struct {
	VertexCount   int
	TriangleCount int
	EdgeCount     int
	BoundingBox   BoundingBox
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64

	// BoundaryEdges are used by one triangle, NonManifoldEdges by more than two.
	BoundaryEdges    int
	NonManifoldEdges int
	// MisorientedEdges are shared by two triangles that traverse them in the same direction.
	MisorientedEdges int
	DuplicatePoints  int
}

// Closed reports whether every edge is shared by exactly two consistently wound triangles.
func (s Stats) Closed() bool {
	return s.TriangleCount > 0 && s.BoundaryEdges == 0 && s.NonManifoldEdges == 0 && s.MisorientedEdges == 0
}

// EulerCharacteristic is V - E + F; 2 for a closed surface of genus zero.
func (s Stats) EulerCharacteristic() int {
	return s.VertexCount - s.EdgeCount + s.TriangleCount
}

type edgeUse struct {
	forward, backward int
}

// Analyze computes Stats for m. Triangles referencing missing vertices are skipped
// for the geometric measures; use Validate to reject them.
func Analyze(m *Mesh) Stats {
	s := Stats{
		VertexCount:     m.VertexCount(),
		TriangleCount:   m.TriangleCount(),
		DuplicatePoints: m.DuplicateCount(),
	}

	if len(m.vertices) > 0 {
		s.BoundingBox.Min = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
		s.BoundingBox.Max = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		for _, v := range m.vertices {
			for k := 0; k < 3; k++ {
				s.BoundingBox.Min[k] = math.Min(s.BoundingBox.Min[k], v.Position[k])
				s.BoundingBox.Max[k] = math.Max(s.BoundingBox.Max[k], v.Position[k])
			}
		}
	}

	edges := make(map[Edge]*edgeUse, len(m.triangles)*3/2)
	for _, t := range m.triangles {
		ids := [3]int{t.A, t.B, t.C}
		valid := true
		for _, id := range ids {
			if id < 0 || id >= len(m.vertices) {
				valid = false
			}
		}
		if !valid {
			continue
		}

		a, b, c := m.vertices[t.A].Position, m.vertices[t.B].Position, m.vertices[t.C].Position
		s.SurfaceArea += triangleNormal(a, b, c).Len() / 2

		for k := 0; k < 3; k++ {
			from, to := ids[k], ids[(k+1)%3]
			key := Edge{From: from, To: to}
			if from > to {
				key = Edge{From: to, To: from}
			}
			use, ok := edges[key]
			if !ok {
				use = &edgeUse{}
				edges[key] = use
			}
			if from < to {
				use.forward++
			} else {
				use.backward++
			}
		}
	}

	s.EdgeCount = len(edges)
	if s.EdgeCount == 0 {
		return s
	}

	s.MinEdgeLength = math.Inf(1)
	var total float64
	for e, use := range edges {
		length := m.vertices[e.To].Position.Sub(m.vertices[e.From].Position).Len()
		total += length
		s.MinEdgeLength = math.Min(s.MinEdgeLength, length)
		s.MaxEdgeLength = math.Max(s.MaxEdgeLength, length)

		switch n := use.forward + use.backward; {
		case n == 1:
			s.BoundaryEdges++
		case n > 2:
			s.NonManifoldEdges++
		case use.forward != use.backward:
			s.MisorientedEdges++
		}
	}
	s.AvgEdgeLength = total / float64(s.EdgeCount)
	return s
}
