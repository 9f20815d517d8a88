package particles

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Effector is an external influence applied to every live particle whose
// EffectorMask shares a bit with Mask
type Effector interface {
	Mask() uint8
	Apply(p *Particle, dt float32)
}

// GravityEffector accelerates particles uniformly regardless of mass
type GravityEffector struct {
	Acceleration mgl32.Vec3
	EffectorMask uint8
}

func (g *GravityEffector) Mask() uint8 { return g.EffectorMask }

func (g *GravityEffector) Apply(p *Particle, dt float32) {
	p.Vel = p.Vel.Add(g.Acceleration.Mul(dt))
}

// WindEffector pushes particles towards the wind velocity. Heavier particles
// respond more slowly.
type WindEffector struct {
	Velocity     mgl32.Vec3
	Coefficient  float32
	EffectorMask uint8
}

func (w *WindEffector) Mask() uint8 { return w.EffectorMask }

func (w *WindEffector) Apply(p *Particle, dt float32) {
	if p.Mass <= 0 {
		return
	}
	force := w.Velocity.Sub(p.Vel).Mul(w.Coefficient)
	p.Vel = p.Vel.Add(force.Mul(dt / p.Mass))
}
