package angle

import "math"

// MinDist returns the smallest unsigned separation between two angles as a
// radian angle in [0, π]. The inputs do not need to be normalized.
func MinDist[T Float](a, b Angle[T]) Angle[T] {
	ar := a.radians()
	br := b.radians()
	d := math.Abs(ar - br)

	// Both inputs inside one turn: the answer is d or the rest of the
	// circle, whichever is shorter.
	if ar >= 0 && ar < 2*math.Pi && br >= 0 && br < 2*math.Pi {
		return Radians(T(math.Min(d, 2*math.Pi-d)))
	}

	return Radians(T(math.Pi - math.Abs(math.Mod(d, 2*math.Pi)-math.Pi)))
}
