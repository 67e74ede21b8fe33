package cubemesh

import (
	"errors"
	"fmt"
	"strings"
)

// Unassigned marks an IndexGrid cell that has no vertex yet.
const Unassigned = -1

var ErrUnassignedCell = errors.New("unassigned grid cell")

// IndexGrid maps (row, col) on one face to global vertex ids.
type IndexGrid struct {
	size  int
	cells []int
}

// NewIndexGrid returns a size×size grid with every cell Unassigned.
func NewIndexGrid(size int) *IndexGrid {
	g := &IndexGrid{
		size:  size,
		cells: make([]int, size*size),
	}
	for i := range g.cells {
		g.cells[i] = Unassigned
	}
	return g
}

func (g *IndexGrid) Size() int {
	return g.size
}

func (g *IndexGrid) offset(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic(fmt.Sprintf("cubemesh: grid cell (%d, %d) out of range for size %d", row, col, g.size))
	}
	return row*g.size + col
}

func (g *IndexGrid) At(row, col int) int {
	return g.cells[g.offset(row, col)]
}

func (g *IndexGrid) Set(row, col, id int) {
	g.cells[g.offset(row, col)] = id
}

// CheckFilled returns an error naming the first cell still Unassigned.
func (g *IndexGrid) CheckFilled() error {
	for i, id := range g.cells {
		if id == Unassigned {
			return fmt.Errorf("cell (%d, %d): %w", i/g.size, i%g.size, ErrUnassignedCell)
		}
	}
	return nil
}

func (g *IndexGrid) String() string {
	var sb strings.Builder
	for row := 0; row < g.size; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < g.size; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%d", g.At(row, col)))
		}
	}
	return sb.String()
}
