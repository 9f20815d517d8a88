package particles

import (
	"log"

	"simplescene/internal/profiling"
)

// System owns a fixed-capacity pool of live particles fed by its emitters.
// The pool is allocated once; emission into a full pool drops the particle.
type System struct {
	particles []Particle
	emitters  []ParticleSource
	effectors []Effector

	dropped int
	store   Receiver
}

func NewSystem(capacity int) *System {
	if capacity < 1 {
		capacity = 1
	}
	s := &System{particles: make([]Particle, 0, capacity)}
	s.store = s.add
	return s
}

func (s *System) AddEmitter(e ParticleSource) {
	s.emitters = append(s.emitters, e)
}

func (s *System) AddEffector(e Effector) {
	s.effectors = append(s.effectors, e)
}

// Particles returns the live particles. The slice is reused by the next
// Simulate call.
func (s *System) Particles() []Particle {
	return s.particles
}

func (s *System) Len() int      { return len(s.particles) }
func (s *System) Capacity() int { return cap(s.particles) }

// Dropped is the total number of particles refused because the pool was full
func (s *System) Dropped() int { return s.dropped }

// Reset clears every particle and restarts every emitter
func (s *System) Reset() {
	s.particles = s.particles[:0]
	s.dropped = 0
	for _, e := range s.emitters {
		e.Reset()
	}
}

// EmitParticles makes every emitter emit one burst immediately
func (s *System) EmitParticles() {
	for _, e := range s.emitters {
		e.EmitParticles(s.store)
	}
}

func (s *System) add(p *Particle) {
	if len(s.particles) == cap(s.particles) {
		s.dropped++
		return
	}
	s.particles = append(s.particles, *p)
}

// Simulate ticks every emitter, then advances every live particle by dt
// seconds and removes the expired ones
func (s *System) Simulate(dt float32) {
	defer profiling.Track("particles.System.Simulate")()

	droppedBefore := s.dropped
	for _, e := range s.emitters {
		e.Simulate(dt, s.store)
	}
	if n := s.dropped - droppedBefore; n > 0 {
		log.Printf("particle pool full (%d): dropped %d new particles", cap(s.particles), n)
	}

	// Integrate and cull dead particles (compact in-place)
	write := 0
	for i := range s.particles {
		p := &s.particles[i]
		s.step(p, dt)
		if p.Life <= 0 {
			continue
		}
		s.particles[write] = *p
		write++
	}
	s.particles = s.particles[:write]
}

func (s *System) step(p *Particle, dt float32) {
	for _, eff := range s.effectors {
		if eff.Mask()&p.EffectorMask != 0 {
			eff.Apply(p, dt)
		}
	}

	if p.Mass > 0 && p.Drag != 0 {
		p.Vel = p.Vel.Mul(dampen(p.Drag * dt / p.Mass))
	}
	if p.RotationalInertia > 0 && p.RotationalDrag != 0 {
		p.AngularVelocity = p.AngularVelocity.Mul(dampen(p.RotationalDrag * dt / p.RotationalInertia))
	}

	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Orientation = p.Orientation.Add(p.AngularVelocity.Mul(dt))
	p.Life -= dt
}

// dampen converts a per-step drag amount into a velocity factor in [0, 1]
func dampen(amount float32) float32 {
	f := 1 - amount
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
