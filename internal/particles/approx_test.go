package particles

import (
	"github.com/go-gl/mathgl/mgl32"
)

// vecNear compares with an absolute tolerance; mgl32's ApproxEqualThreshold is
// relative and rejects float32 residue next to exact zeros
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}
