package cubemesh

import "github.com/go-gl/mathgl/mgl64"

// CornerCount is the number of cube corners; they always take ids 0..7.
const CornerCount = 8

// cornerPositions is the seeding order. The +z square comes first, counter-clockwise
// from (-1,-1), then the -z square in the same order.
var cornerPositions = [CornerCount]mgl64.Vec3{
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
}

// CornerPosition returns the fixed position of corner i.
func CornerPosition(i int) mgl64.Vec3 {
	return cornerPositions[i]
}

// SeedCorners appends the eight cube corners and returns their ids.
func SeedCorners(m *Mesh) [CornerCount]int {
	var ids [CornerCount]int
	for i, p := range cornerPositions {
		ids[i] = m.AddPoint(p)
	}
	return ids
}
