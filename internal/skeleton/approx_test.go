package skeleton

import (
	"github.com/go-gl/mathgl/mgl32"
)

// vecNear compares with an absolute tolerance; mgl32's ApproxEqualThreshold is
// relative and rejects float32 residue next to exact zeros
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func quatNear(a, b mgl32.Quat, eps float32) bool {
	return mgl32.Abs(a.W-b.W) < eps && a.V.Sub(b.V).Len() < eps
}

func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}
