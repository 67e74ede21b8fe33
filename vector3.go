package cubemesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// positionEpsilon is the distance under which two positions count as the same point.
const positionEpsilon = 1e-6

// direction returns the unit vector from a to b. A zero-length segment yields the zero vector.
func direction(from, to mgl64.Vec3) mgl64.Vec3 {
	d := to.Sub(from)
	length := d.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return d.Mul(1 / length)
}

// triangleNormal is the unnormalized normal of a, b, c using counter-clockwise winding.
func triangleNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

type positionKey [3]int64

func keyOf(p mgl64.Vec3) positionKey {
	return positionKey{
		int64(math.Round(p[0] / positionEpsilon)),
		int64(math.Round(p[1] / positionEpsilon)),
		int64(math.Round(p[2] / positionEpsilon)),
	}
}
