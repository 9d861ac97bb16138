package angle

import (
	"fmt"
	"math"
)

// Scalar is the set of payload types an Angle can carry. Signed types only:
// Abs and Neg need a sign, and so does the negative branch of Normalized.
type Scalar interface {
	int | int8 | int16 | int32 | int64 | float32 | float64
}

// Float is the subset of Scalar that the arc functions, MinDist and Mean
// are defined over.
type Float interface {
	float32 | float64
}

type unit uint8

const (
	radians unit = iota
	degrees
)

// Angle is a planar angle, either a radian or a degree measure. The unit is
// part of the value: conversion, arithmetic and comparison take it into
// account. The zero value is 0rad.
//
// Angle is a plain value type. Methods return a new Angle and never mutate
// the receiver; the compound forms of other languages become reassignment,
// a = a.Mul(x). Comparing two angles with == compares payload and unit
// verbatim, use Equal for a unit-aware comparison.
type Angle[T Scalar] struct {
	value T
	unit  unit
}

// Radians returns the angle of v radians.
func Radians[T Scalar](v T) Angle[T] {
	return Angle[T]{value: v}
}

// Degrees returns the angle of v degrees.
func Degrees[T Scalar](v T) Angle[T] {
	return Angle[T]{value: v, unit: degrees}
}

// Eighth returns an eighth turn, 45°.
func Eighth[T Scalar]() Angle[T] { return Degrees[T](45) }

// Quarter returns a quarter turn, 90°.
func Quarter[T Scalar]() Angle[T] { return Degrees[T](90) }

// Half returns a half turn, 180°.
func Half[T Scalar]() Angle[T] { v := 180; return Degrees(T(v)) }

// Full returns a full turn, 360°.
func Full[T Scalar]() Angle[T] { v := 360; return Degrees(T(v)) }

// InRadians returns the value of the angle in radians. A degree payload
// converts through float64 and is cast back to T; an out-of-range cast is
// not guarded.
func (a Angle[T]) InRadians() T {
	if a.unit == radians {
		return a.value
	}
	return T(float64(a.value) / 180 * math.Pi)
}

// InDegrees returns the value of the angle in degrees, with the same
// conversion rule as InRadians.
func (a Angle[T]) InDegrees() T {
	if a.unit == degrees {
		return a.value
	}
	return T(float64(a.value) / math.Pi * 180)
}

// radians is the float64 working-precision radian value used by the
// trigonometric and distance code.
func (a Angle[T]) radians() float64 {
	if a.unit == degrees {
		return float64(a.value) / 180 * math.Pi
	}
	return float64(a.value)
}

// Normalized returns the angle mapped into [0, 2π) rad, or [0, 360)° for a
// degree payload. The unit is kept. Exact multiples of a full turn map to
// exactly zero.
func (a Angle[T]) Normalized() Angle[T] {
	upper := 2 * math.Pi
	if a.unit == degrees {
		upper = 360
	}

	v := float64(a.value)
	if v >= 0 && v < upper {
		return a
	}

	v = math.Mod(v, upper)
	if v < 0 {
		v += upper
	}

	a.value = T(v)
	return a
}

// Abs returns the angle with the absolute value of the payload.
func (a Angle[T]) Abs() Angle[T] {
	if a.value < 0 {
		a.value = -a.value
	}
	return a
}

// Neg returns the negated angle, keeping the unit.
func (a Angle[T]) Neg() Angle[T] {
	a.value = -a.value
	return a
}

// IsZero reports whether the payload is zero, in either unit.
func (a Angle[T]) IsZero() bool {
	return a.value == 0
}

// Equal reports whether both angles describe the same measure. Two degree
// angles compare payloads exactly, without a conversion that could round;
// every other pairing compares the radian-converted values.
func (a Angle[T]) Equal(b Angle[T]) bool {
	if a.unit == degrees && b.unit == degrees {
		return a.value == b.value
	}
	return a.InRadians() == b.InRadians()
}

func (a Angle[T]) String() string {
	if a.unit == degrees {
		return fmt.Sprintf("%v°", a.value)
	}
	return fmt.Sprintf("%vrad", a.value)
}
