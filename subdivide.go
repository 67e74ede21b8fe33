package cubemesh

import (
	"errors"
	"fmt"
	"math"
)

// EdgeLength is the side of the cube spanning [-1, 1].
const EdgeLength = 2.0

var ErrInvalidSubdivisions = errors.New("subdivision count must be at least 1")

func checkSubdivisions(n int) error {
	if n < 1 {
		return fmt.Errorf("got %d: %w", n, ErrInvalidSubdivisions)
	}
	// 12n^2 triangles bounds every count derived from n.
	if n > math.MaxInt/12/n {
		return fmt.Errorf("got %d, mesh size overflows int: %w", n, ErrInvalidSubdivisions)
	}
	return nil
}

// SubdivideEdge appends the n-1 evenly spaced points strictly between v1 and v2 and
// returns their ids ordered from v1 toward v2.
func SubdivideEdge(m *Mesh, v1, v2, n int) ([]int, error) {
	if err := checkSubdivisions(n); err != nil {
		return nil, err
	}
	p1, err := m.Position(v1)
	if err != nil {
		return nil, err
	}
	p2, err := m.Position(v2)
	if err != nil {
		return nil, err
	}

	step := EdgeLength / float64(n)
	dir := direction(p1, p2)

	ids := make([]int, 0, n-1)
	for k := 1; k < n; k++ {
		ids = append(ids, m.AddPoint(p1.Add(dir.Mul(float64(k)*step))))
	}
	return ids, nil
}

// SubdivideFace appends the (n-1)^2 interior points of the face v1 v2 v3 v4, where
// v1 -> v4 is the x direction and v1 -> v2 the y direction. Ids are returned row-major:
// y steps outer, x steps inner. The corners are assumed to form a cube face.
func SubdivideFace(m *Mesh, v1, v2, v3, v4, n int) ([]int, error) {
	if err := checkSubdivisions(n); err != nil {
		return nil, err
	}
	p1, err := m.Position(v1)
	if err != nil {
		return nil, err
	}
	p2, err := m.Position(v2)
	if err != nil {
		return nil, err
	}
	if _, err := m.Position(v3); err != nil {
		return nil, err
	}
	p4, err := m.Position(v4)
	if err != nil {
		return nil, err
	}

	step := EdgeLength / float64(n)
	xDir := direction(p1, p4)
	yDir := direction(p1, p2)

	ids := make([]int, 0, (n-1)*(n-1))
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			p := p1.Add(xDir.Mul(float64(j) * step)).Add(yDir.Mul(float64(i) * step))
			ids = append(ids, m.AddPoint(p))
		}
	}
	return ids, nil
}
