package particles

import (
	"simplescene/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Particle is a short-lived simulated entity. Once emitted it belongs to
// whichever container received it.
type Particle struct {
	Pos             mgl32.Vec3
	Vel             mgl32.Vec3
	Orientation     mgl32.Vec3 // Euler angles, radians
	AngularVelocity mgl32.Vec3
	Life            float32 // remaining lifetime in seconds

	MasterScale    float32
	ComponentScale mgl32.Vec3
	Color          mgl32.Vec4 // RGBA

	Mass              float32
	RotationalInertia float32
	Drag              float32
	RotationalDrag    float32

	SpriteIndex uint8
	SpriteRect  geom.Rect

	// EffectorMask selects which effectors act on the particle
	EffectorMask uint8
}

// DefaultParticle returns the attribute values emitters start from
func DefaultParticle() Particle {
	return Particle{
		Life:              1,
		MasterScale:       1,
		ComponentScale:    mgl32.Vec3{1, 1, 1},
		Color:             mgl32.Vec4{1, 1, 1, 1},
		Mass:              1,
		RotationalInertia: 1,
		SpriteRect:        geom.Rect{X: 0, Y: 0, W: 1, H: 1},
		EffectorMask:      0xFF,
	}
}

// Scale returns the effective per-axis scale
func (p *Particle) Scale() mgl32.Vec3 {
	return p.ComponentScale.Mul(p.MasterScale)
}
