package cubemesh

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func mustGenerate(t *testing.T, n int) *Cube {
	t.Helper()
	cube, err := Generate(n)
	if err != nil {
		t.Fatalf("Generate(%d) error: %v", n, err)
	}
	return cube
}

func TestGenerateCounts(t *testing.T) {
	testCases := []struct {
		n         int
		vertices  int
		triangles int
	}{
		{n: 1, vertices: 8, triangles: 12},
		{n: 2, vertices: 26, triangles: 48},
		{n: 3, vertices: 56, triangles: 108},
		{n: 4, vertices: 98, triangles: 192},
		{n: 7, vertices: 8 + 12*6 + 6*36, triangles: 12 * 49},
	}

	for _, tc := range testCases {
		cube := mustGenerate(t, tc.n)
		if got := cube.Mesh.VertexCount(); got != tc.vertices {
			t.Errorf("n=%d: vertex count = %d, want %d", tc.n, got, tc.vertices)
		}
		if got := cube.Mesh.TriangleCount(); got != tc.triangles {
			t.Errorf("n=%d: triangle count = %d, want %d", tc.n, got, tc.triangles)
		}
		if VertexCountFor(tc.n) != tc.vertices || TriangleCountFor(tc.n) != tc.triangles {
			t.Errorf("n=%d: count helpers = %d/%d, want %d/%d", tc.n, VertexCountFor(tc.n), TriangleCountFor(tc.n), tc.vertices, tc.triangles)
		}
		for i, v := range cube.Mesh.Vertices() {
			if v.ID != i {
				t.Fatalf("n=%d: vertex %d has id %d", tc.n, i, v.ID)
			}
		}
	}
}

func TestGenerateRejectsInvalidSubdivisions(t *testing.T) {
	for _, n := range []int{0, -1, -10, 1 << 30, math.MaxInt / 2, math.MaxInt} {
		cube, err := Generate(n)
		if !errors.Is(err, ErrInvalidSubdivisions) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidSubdivisions", n, err)
		}
		if cube != nil {
			t.Errorf("Generate(%d) returned a cube", n)
		}
	}
}

func TestGenerateSingleSubdivision(t *testing.T) {
	cube := mustGenerate(t, 1)

	want := []Triangle{
		{0, 2, 3}, {0, 1, 2},
		{0, 5, 1}, {0, 4, 5},
		{1, 6, 2}, {1, 5, 6},
		{2, 7, 3}, {2, 6, 7},
		{3, 4, 0}, {3, 7, 4},
		{6, 4, 7}, {6, 5, 4},
	}
	got := cube.Mesh.Triangles()
	if len(got) != len(want) {
		t.Fatalf("got %d triangles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("triangle %d = %v, want %v", i, got[i], want[i])
		}
	}
	for i, g := range cube.Grids {
		if g.Size() != 2 {
			t.Errorf("face %d grid size = %d, want 2", i, g.Size())
		}
	}
}

func TestGenerateTwoSubdivisions(t *testing.T) {
	cube := mustGenerate(t, 2)
	firstInterior := CornerCount + len(Edges)

	seen := make(map[int]bool)
	for i, g := range cube.Grids {
		if g.Size() != 3 {
			t.Fatalf("face %d grid size = %d, want 3", i, g.Size())
		}
		center := g.At(1, 1)
		if center < firstInterior {
			t.Errorf("face %d centre %d is a corner or edge vertex", i, center)
		}
		if seen[center] {
			t.Errorf("face %d centre %d shared with another face", i, center)
		}
		seen[center] = true

		p, err := cube.Mesh.Position(center)
		if err != nil {
			t.Fatal(err)
		}
		normal, err := Faces[i].Normal(cube.Mesh)
		if err != nil {
			t.Fatal(err)
		}
		if !p.ApproxEqualThreshold(normal, float64EqualityThreshold) {
			t.Errorf("face %d centre at %v, want %v", i, p, normal)
		}
	}
}

func TestCornerFidelity(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		cube := mustGenerate(t, n)
		vertices := cube.Mesh.Vertices()
		for i := 0; i < CornerCount; i++ {
			if vertices[i].Position != CornerPosition(i) {
				t.Errorf("n=%d: corner %d at %v, want %v", n, i, vertices[i].Position, CornerPosition(i))
			}
			for k := 0; k < 3; k++ {
				if c := vertices[i].Position[k]; c != 1 && c != -1 {
					t.Errorf("n=%d: corner %d coordinate %d = %f", n, i, k, c)
				}
			}
		}
	}
}

func TestNoDuplicatePositions(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6} {
		cube := mustGenerate(t, n)
		if d := cube.Mesh.DuplicateCount(); d != 0 {
			t.Errorf("n=%d: %d duplicate positions", n, d)
		}
		if err := cube.Mesh.Validate(); err != nil {
			t.Errorf("n=%d: Validate() = %v", n, err)
		}
	}
}

// gridEdge walks a face grid from the cell of corner from to the cell of corner to.
func gridEdge(t *testing.T, f CubeFace, g *IndexGrid, from, to int) []int {
	t.Helper()
	n := g.Size() - 1
	cells := map[int][2]int{
		f.Origin: {0, 0},
		f.RowEnd: {n, 0},
		f.Far:    {n, n},
		f.ColEnd: {0, n},
	}
	start, ok1 := cells[from]
	end, ok2 := cells[to]
	if !ok1 || !ok2 {
		t.Fatalf("face %s does not contain edge %d-%d", f.Name, from, to)
	}
	dr, dc := (end[0]-start[0])/n, (end[1]-start[1])/n

	ids := make([]int, 0, n+1)
	for k := 0; k <= n; k++ {
		ids = append(ids, g.At(start[0]+k*dr, start[1]+k*dc))
	}
	return ids
}

func faceHasCorner(f CubeFace, c int) bool {
	for _, id := range f.Corners() {
		if id == c {
			return true
		}
	}
	return false
}

func TestSeamConsistency(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		cube := mustGenerate(t, n)
		for _, e := range Edges {
			var runs [][]int
			for i, f := range Faces {
				if faceHasCorner(f, e.From) && faceHasCorner(f, e.To) {
					runs = append(runs, gridEdge(t, f, cube.Grids[i], e.From, e.To))
				}
			}
			if len(runs) != 2 {
				t.Fatalf("n=%d: edge %d-%d lies on %d faces, want 2", n, e.From, e.To, len(runs))
			}
			for k := range runs[0] {
				if runs[0][k] != runs[1][k] {
					t.Errorf("n=%d: edge %d-%d step %d: %d vs %d", n, e.From, e.To, k, runs[0][k], runs[1][k])
				}
			}
		}
	}
}

func TestOutwardWinding(t *testing.T) {
	cube := mustGenerate(t, 4)
	vertices := cube.Mesh.Vertices()
	perFace := 2 * 4 * 4

	for i, tri := range cube.Mesh.Triangles() {
		a, b, c := vertices[tri.A].Position, vertices[tri.B].Position, vertices[tri.C].Position
		n := triangleNormal(a, b, c)
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Errorf("triangle %d %v faces inward", i, tri)
		}

		faceNormal, err := Faces[i/perFace].Normal(cube.Mesh)
		if err != nil {
			t.Fatal(err)
		}
		if !n.Normalize().ApproxEqualThreshold(faceNormal, float64EqualityThreshold) {
			t.Errorf("triangle %d normal %v, want face normal %v", i, n.Normalize(), faceNormal)
		}
	}
}

func TestFaceNormals(t *testing.T) {
	m := NewMesh()
	SeedCorners(m)
	want := []mgl64.Vec3{
		{0, 0, 1}, {0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, 0, -1},
	}
	for i, f := range Faces {
		got, err := f.Normal(m)
		if err != nil {
			t.Fatal(err)
		}
		if !got.ApproxEqualThreshold(want[i], float64EqualityThreshold) {
			t.Errorf("face %s normal = %v, want %v", f.Name, got, want[i])
		}
	}
}

func TestGeneratedMeshIsClosed(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8} {
		s := Analyze(mustGenerate(t, n).Mesh)
		if !s.Closed() {
			t.Errorf("n=%d: mesh not closed: %+v", n, s)
		}
		if s.EulerCharacteristic() != 2 {
			t.Errorf("n=%d: Euler characteristic = %d, want 2", n, s.EulerCharacteristic())
		}
		if !almostEqual(s.SurfaceArea, 24) {
			t.Errorf("n=%d: surface area = %f, want 24", n, s.SurfaceArea)
		}
		step := EdgeLength / float64(n)
		if !almostEqual(s.MinEdgeLength, step) {
			t.Errorf("n=%d: min edge = %f, want %f", n, s.MinEdgeLength, step)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := WriteOFF(&first, mustGenerate(t, 3).Mesh); err != nil {
		t.Fatal(err)
	}
	if err := WriteOFF(&second, mustGenerate(t, 3).Mesh); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two runs with the same subdivision count produced different output")
	}
}
