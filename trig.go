package angle

import "math"

// Sin returns the sine of the angle.
func (a Angle[T]) Sin() float64 {
	return math.Sin(a.radians())
}

// Cos returns the cosine of the angle.
func (a Angle[T]) Cos() float64 {
	return math.Cos(a.radians())
}

// Tan returns the tangent of the angle.
func (a Angle[T]) Tan() float64 {
	return math.Tan(a.radians())
}

// SinCos returns the sine and cosine of the angle from a single radian
// conversion.
func (a Angle[T]) SinCos() (sin, cos float64) {
	return math.Sincos(a.radians())
}

// Asin returns the arcsine of v as a radian angle in [-π/2, π/2]. The
// second return is false if v lies outside [-1, 1].
func Asin[T Float](v T) (Angle[T], bool) {
	r := math.Asin(float64(v))
	if math.IsNaN(r) {
		return Angle[T]{}, false
	}
	return Radians(T(r)), true
}

// Acos returns the arccosine of v as a radian angle in [0, π]. The second
// return is false if v lies outside [-1, 1].
func Acos[T Float](v T) (Angle[T], bool) {
	r := math.Acos(float64(v))
	if math.IsNaN(r) {
		return Angle[T]{}, false
	}
	return Radians(T(r)), true
}

// Atan returns the arctangent of v as a radian angle in [-π/2, π/2].
func Atan[T Float](v T) Angle[T] {
	return Radians(T(math.Atan(float64(v))))
}

// Atan2 returns the four quadrant arctangent of y and x as a radian angle.
func Atan2[T Float](y, x T) Angle[T] {
	return Radians(T(math.Atan2(float64(y), float64(x))))
}
