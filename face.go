package cubemesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// CubeFace declares one face by its corners. Grid rows run Origin -> RowEnd and grid
// columns run Origin -> ColEnd; Far is the corner opposite Origin. RowEnd x ColEnd
// points out of the cube, which fixes the winding of every triangle on the face.
type CubeFace struct {
	Name   string
	Origin int
	RowEnd int
	Far    int
	ColEnd int
}

// Faces is the fixed cube topology over the corner ids from SeedCorners.
var Faces = [6]CubeFace{
	{Name: "front", Origin: 0, RowEnd: 1, Far: 2, ColEnd: 3},  // +z
	{Name: "bottom", Origin: 0, RowEnd: 4, Far: 5, ColEnd: 1}, // -y
	{Name: "right", Origin: 1, RowEnd: 5, Far: 6, ColEnd: 2},  // +x
	{Name: "top", Origin: 2, RowEnd: 6, Far: 7, ColEnd: 3},    // +y
	{Name: "left", Origin: 3, RowEnd: 7, Far: 4, ColEnd: 0},   // -x
	{Name: "back", Origin: 6, RowEnd: 5, Far: 4, ColEnd: 7},   // -z
}

// Edge is a cube edge, subdivided once in the direction From -> To.
type Edge struct {
	From, To int
}

// Edges lists the 12 cube edges in subdivision order.
var Edges = [12]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
}

// Corners returns the corner ids in face-subdivider order: origin, row end, far, column end.
func (f CubeFace) Corners() [4]int {
	return [4]int{f.Origin, f.RowEnd, f.Far, f.ColEnd}
}

// Normal is the outward unit normal implied by the declared orientation.
func (f CubeFace) Normal(m *Mesh) (mgl64.Vec3, error) {
	origin, err := m.Position(f.Origin)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("face %s: %w", f.Name, err)
	}
	rowEnd, err := m.Position(f.RowEnd)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("face %s: %w", f.Name, err)
	}
	colEnd, err := m.Position(f.ColEnd)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("face %s: %w", f.Name, err)
	}
	return direction(origin, rowEnd).Cross(direction(origin, colEnd)), nil
}

// edgeRuns holds the interior vertex ids of every subdivided edge.
type edgeRuns map[Edge][]int

// between returns the interior ids of the edge joining from and to, ordered from -> to.
func (r edgeRuns) between(from, to int) ([]int, error) {
	if ids, ok := r[Edge{From: from, To: to}]; ok {
		return ids, nil
	}
	ids, ok := r[Edge{From: to, To: from}]
	if !ok {
		return nil, fmt.Errorf("no cube edge between corners %d and %d", from, to)
	}
	reversed := make([]int, len(ids))
	for i, id := range ids {
		reversed[len(ids)-1-i] = id
	}
	return reversed, nil
}
