package cubemesh

import "fmt"

// Cube is the result of one generation run.
type Cube struct {
	Subdivisions int
	Mesh         *Mesh
	Grids        [len(Faces)]*IndexGrid
}

// VertexCountFor is 8 corners, 12 edge runs of n-1 and 6 faces of (n-1)^2.
func VertexCountFor(n int) int {
	return CornerCount + len(Edges)*(n-1) + len(Faces)*(n-1)*(n-1)
}

// TriangleCountFor is two triangles per grid cell on each face.
func TriangleCountFor(n int) int {
	return len(Faces) * n * n * 2
}

// Generate builds a cube over [-1, 1]^3 with n segments per edge.
func Generate(n int) (*Cube, error) {
	if err := checkSubdivisions(n); err != nil {
		return nil, err
	}

	m := newMeshSized(VertexCountFor(n), TriangleCountFor(n))
	corners := SeedCorners(m)

	runs := make(edgeRuns, len(Edges))
	for _, e := range Edges {
		ids, err := SubdivideEdge(m, corners[e.From], corners[e.To], n)
		if err != nil {
			return nil, fmt.Errorf("edge %d-%d: %w", e.From, e.To, err)
		}
		runs[e] = ids
	}

	interiors := make([][]int, len(Faces))
	for i, f := range Faces {
		c := f.Corners()
		ids, err := SubdivideFace(m, corners[c[0]], corners[c[1]], corners[c[2]], corners[c[3]], n)
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", f.Name, err)
		}
		interiors[i] = ids
	}

	cube := &Cube{Subdivisions: n, Mesh: m}
	for i, f := range Faces {
		g, err := assembleGrid(f, corners, runs, interiors[i], n)
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", f.Name, err)
		}
		cube.Grids[i] = g
	}

	for i, g := range cube.Grids {
		if err := Triangulate(m, g); err != nil {
			return nil, fmt.Errorf("face %s: %w", Faces[i].Name, err)
		}
	}
	return cube, nil
}

// assembleGrid fills the (n+1)x(n+1) grid of one face from shared corners, shared
// edge runs and the face's own interior points.
func assembleGrid(f CubeFace, corners [CornerCount]int, runs edgeRuns, interior []int, n int) (*IndexGrid, error) {
	if err := checkSubdivisions(n); err != nil {
		return nil, err
	}
	if len(interior) != (n-1)*(n-1) {
		return nil, fmt.Errorf("expected %d interior points, got %d", (n-1)*(n-1), len(interior))
	}

	g := NewIndexGrid(n + 1)
	g.Set(0, 0, corners[f.Origin])
	g.Set(n, 0, corners[f.RowEnd])
	g.Set(n, n, corners[f.Far])
	g.Set(0, n, corners[f.ColEnd])

	borders := []struct {
		from, to int
		cell     func(k int) (int, int)
	}{
		{f.Origin, f.RowEnd, func(k int) (int, int) { return k, 0 }},
		{f.ColEnd, f.Far, func(k int) (int, int) { return k, n }},
		{f.Origin, f.ColEnd, func(k int) (int, int) { return 0, k }},
		{f.RowEnd, f.Far, func(k int) (int, int) { return n, k }},
	}
	for _, b := range borders {
		ids, err := runs.between(b.from, b.to)
		if err != nil {
			return nil, err
		}
		if len(ids) != n-1 {
			return nil, fmt.Errorf("edge %d-%d has %d points, expected %d", b.from, b.to, len(ids), n-1)
		}
		for k, id := range ids {
			row, col := b.cell(k + 1)
			g.Set(row, col, id)
		}
	}

	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			g.Set(i, j, interior[(i-1)*(n-1)+(j-1)])
		}
	}

	if err := g.CheckFilled(); err != nil {
		return nil, err
	}
	return g, nil
}

// Triangulate emits two triangles per grid cell, wound outward for the face the grid
// was assembled from. Every cell must be assigned.
func Triangulate(m *Mesh, g *IndexGrid) error {
	if err := g.CheckFilled(); err != nil {
		return err
	}
	n := g.Size() - 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v1 := g.At(i, j)
			v2 := g.At(i, j+1)
			v3 := g.At(i+1, j)
			v4 := g.At(i+1, j+1)

			m.AddTriangle(v1, v4, v2)
			m.AddTriangle(v1, v3, v4)
		}
	}
	return nil
}
