package sltools

import "math"

const rodriguesEpsilon = 1e-9

// ConvertRodrigues converts a rotation vector (axis scaled by the angle in
// radians) to a 3x3 rotation matrix stored in row-major order.
func ConvertRodrigues(r [3]float32) [9]float32 {
	x, y, z := float64(r[0]), float64(r[1]), float64(r[2])
	theta := math.Sqrt(x*x + y*y + z*z)

	if theta < rodriguesEpsilon {
		return [9]float32{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		}
	}

	x, y, z = x/theta, y/theta, z/theta
	c := math.Cos(theta)
	s := math.Sin(theta)
	c1 := 1 - c

	return [9]float32{
		float32(c + c1*x*x), float32(c1*x*y - s*z), float32(c1*x*z + s*y),
		float32(c1*y*x + s*z), float32(c + c1*y*y), float32(c1*y*z - s*x),
		float32(c1*z*x - s*y), float32(c1*z*y + s*x), float32(c + c1*z*z),
	}
}
