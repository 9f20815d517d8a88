package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// directions shorter than this are treated as zero
	degenerateLength = 1e-6
	// dot products below -1+parallelEpsilon are treated as anti-parallel
	parallelEpsilon = 1e-6
)

// Rect is a sprite rectangle in normalized texture coordinates
type Rect struct {
	X, Y, W, H float32
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// RotationTo returns the shortest rotation that turns direction from onto
// direction to. Neither input needs to be normalized.
//
// When the two directions are opposite the rotation axis is undefined; the
// half turn is then taken about fallbackAxis (its component perpendicular to
// from). A zero-length input yields the identity.
func RotationTo(from, to, fallbackAxis mgl32.Vec3) mgl32.Quat {
	fromLen, toLen := from.Len(), to.Len()
	if fromLen < degenerateLength || toLen < degenerateLength {
		return mgl32.QuatIdent()
	}
	v0 := from.Mul(1 / fromLen)
	v1 := to.Mul(1 / toLen)

	d := v0.Dot(v1)
	if d >= 1 {
		return mgl32.QuatIdent()
	}
	if d < parallelEpsilon-1 {
		return mgl32.QuatRotate(math.Pi, halfTurnAxis(v0, fallbackAxis))
	}

	s := float32(math.Sqrt(float64((1 + d) * 2)))
	invs := 1 / s
	c := v0.Cross(v1)
	return mgl32.Quat{W: s * 0.5, V: c.Mul(invs)}.Normalize()
}

// halfTurnAxis picks a unit axis perpendicular to the unit vector dir,
// preferring the reference axis.
func halfTurnAxis(dir, reference mgl32.Vec3) mgl32.Vec3 {
	axis := reference.Sub(dir.Mul(reference.Dot(dir)))
	if l := axis.Len(); l >= degenerateLength {
		return axis.Mul(1 / l)
	}
	axis = mgl32.Vec3{1, 0, 0}.Cross(dir)
	if axis.Len() < degenerateLength {
		axis = mgl32.Vec3{0, 1, 0}.Cross(dir)
	}
	return axis.Normalize()
}

// QuatToEuler decomposes q into angles (x, y, z) in radians such that
// mgl32.AnglesToQuat(x, y, z, mgl32.XYZ) describes the same rotation.
func QuatToEuler(q mgl32.Quat) mgl32.Vec3 {
	m := q.Normalize().Mat4()

	sy := mgl32.Clamp(m.At(0, 2), -1, 1)
	y := float32(math.Asin(float64(sy)))

	// gimbal lock: x and z rotate about the same axis, fold it all into x
	if mgl32.Abs(sy) > 0.9999 {
		x := float32(math.Atan2(float64(m.At(2, 1)), float64(m.At(1, 1))))
		return mgl32.Vec3{x, y, 0}
	}

	x := float32(math.Atan2(float64(-m.At(1, 2)), float64(m.At(2, 2))))
	z := float32(math.Atan2(float64(-m.At(0, 1)), float64(m.At(0, 0))))
	return mgl32.Vec3{x, y, z}
}
