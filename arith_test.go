package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAngle_AddSub(t *testing.T) {
	require.Equal(t, Degrees(135.0), Degrees(90.0).Add(Degrees(45.0)))
	require.Equal(t, Degrees(45.0), Degrees(90.0).Sub(Degrees(45.0)))

	// mixed tags land in radians
	sum := Degrees(90.0).Add(Radians(math.Pi))
	require.Equal(t, Radians(sum.InRadians()), sum)
	require.InDelta(t, 1.5*math.Pi, sum.InRadians(), 1e-12)

	diff := Degrees(90.0).Sub(Radians(math.Pi))
	require.Equal(t, Radians(diff.InRadians()), diff)
	require.InDelta(t, -0.5*math.Pi, diff.InRadians(), 1e-12)
}

func TestAngle_AdditiveRule(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1e4, 1e4).Draw(t, "x")
		y := rapid.Float64Range(-1e4, 1e4).Draw(t, "y")

		// both degrees: exact payload arithmetic, no conversion
		require.Equal(t, x+y, Degrees(x).Add(Degrees(y)).InDegrees())
		require.Equal(t, x-y, Degrees(x).Sub(Degrees(y)).InDegrees())

		// both radians: goes through the general path, same result as raw
		// addition of the payloads
		require.Equal(t, x+y, Radians(x).Add(Radians(y)).InRadians())
		require.Equal(t, x-y, Radians(x).Sub(Radians(y)).InRadians())

		// mixed: both sides convert to radians
		a, b := Degrees(x), Radians(y)
		require.Equal(t, a.InRadians()+b.InRadians(), a.Add(b).InRadians())
		require.Equal(t, a.InRadians()-b.InRadians(), a.Sub(b).InRadians())
	})
}

func TestAngle_MultiplicativeRule(t *testing.T) {
	nonZero := rapid.OneOf(
		rapid.Float64Range(-1e4, -1e-3),
		rapid.Float64Range(1e-3, 1e4),
	)

	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-1e4, 1e4).Draw(t, "v")
		x := nonZero.Draw(t, "x")

		require.Equal(t, Degrees(v*x), Degrees(v).Mul(x))
		require.Equal(t, Degrees(v/x), Degrees(v).Div(x))
		require.Equal(t, Radians(v*x), Radians(v).Mul(x))
		require.Equal(t, Radians(v/x), Radians(v).Div(x))
	})
}

func TestAngle_CompoundReassignment(t *testing.T) {
	a := Degrees(10.0)
	a = a.Add(Degrees(5.0))
	a = a.Sub(Degrees(2.5))
	require.Equal(t, Degrees(12.5), a)

	c := Radians(1.0)
	c = c.Mul(3)
	require.Equal(t, Radians(3.0), c)
	c = c.Div(3)
	require.Equal(t, Radians(1.0), c)
}
