package angle

// Add returns the sum of two angles. If both operands are degree angles the
// payloads add directly and the result stays in degrees; every other
// pairing, radians with radians included, converts both sides to radians
// and yields a radian angle.
func (a Angle[T]) Add(b Angle[T]) Angle[T] {
	if a.unit == degrees && b.unit == degrees {
		return Degrees(a.value + b.value)
	}
	return Radians(a.InRadians() + b.InRadians())
}

// Sub returns the difference of two angles, with the same unit rule as Add.
func (a Angle[T]) Sub(b Angle[T]) Angle[T] {
	if a.unit == degrees && b.unit == degrees {
		return Degrees(a.value - b.value)
	}
	return Radians(a.InRadians() - b.InRadians())
}

// Mul scales the payload by s, keeping the unit.
func (a Angle[T]) Mul(s T) Angle[T] {
	a.value *= s
	return a
}

// Div divides the payload by s, keeping the unit.
func (a Angle[T]) Div(s T) Angle[T] {
	a.value /= s
	return a
}
