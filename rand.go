package angle

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range,
// excluding max.
func RandomIn[T Scalar](min, max T) T {
	return T(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full
// circle. The unit is sampled too, so both tags show up.
func RandomAngle[T Float]() Angle[T] {
	if rand.IntN(2) == 0 {
		return Radians(RandomIn[T](0, 2*math.Pi))
	}
	return Degrees(RandomIn[T](0, 360))
}
