package angle

// Mean returns the circular mean of the given angles, the angle of the
// averaged unit-circle coordinates. The result is normalized and radian
// tagged. Averaging the raw values instead would break at the wraparound:
// the mean of 350° and 10° is 0°, not 180°.
//
// An empty slice averages both coordinate sums to 0/0, so the result is a
// NaN angle.
func Mean[T Float](angles []Angle[T]) Angle[T] {
	var x, y float64

	for _, a := range angles {
		sin, cos := a.SinCos()
		x += cos
		y += sin
	}

	n := float64(len(angles))
	return Atan2(T(y/n), T(x/n)).Normalized()
}
