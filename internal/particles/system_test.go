package particles

import (
	"math/rand"
	"testing"

	"simplescene/internal/fieldgen"

	"github.com/go-gl/mathgl/mgl32"
)

func newBurstEmitter(seed int64, perEmission int) *FieldEmitter {
	e := NewFieldEmitter(fieldgen.NewPointGenerator(mgl32.Vec3{}), rand.New(rand.NewSource(seed)))
	e.SetParticlesPerEmission(perEmission)
	e.SetEmissionInterval(1000)
	return e
}

func TestSystemCapacityDropsOverflow(t *testing.T) {
	s := NewSystem(16)
	s.AddEmitter(newBurstEmitter(1, 10))
	s.AddEmitter(newBurstEmitter(2, 10))

	s.EmitParticles()
	if s.Len() != 16 {
		t.Errorf("Len = %d, want 16", s.Len())
	}
	if s.Dropped() != 4 {
		t.Errorf("Dropped = %d, want 4", s.Dropped())
	}
	if s.Capacity() != 16 {
		t.Errorf("Capacity = %d, want 16", s.Capacity())
	}
}

func TestSystemExpiresParticles(t *testing.T) {
	short := newBurstEmitter(1, 3)
	short.SetLife(0.5)
	long := newBurstEmitter(2, 2)
	long.SetLife(2)

	s := NewSystem(64)
	s.AddEmitter(short)
	s.AddEmitter(long)

	s.Simulate(0.25) // both emit, lives become 0.25 and 1.75
	if s.Len() != 5 {
		t.Fatalf("after first tick Len = %d, want 5", s.Len())
	}
	s.Simulate(0.25) // short ones reach 0
	if s.Len() != 2 {
		t.Fatalf("after second tick Len = %d, want 2", s.Len())
	}
	for _, p := range s.Particles() {
		if p.Life != 1.5 {
			t.Errorf("survivor Life = %f, want 1.5", p.Life)
		}
	}

	s.Reset()
	if s.Len() != 0 || s.Dropped() != 0 {
		t.Errorf("Reset left Len=%d Dropped=%d", s.Len(), s.Dropped())
	}
}

func TestSystemIntegratesMotion(t *testing.T) {
	e := newBurstEmitter(3, 1)
	e.SetVelocity(mgl32.Vec3{1, 0, 0})
	e.SetAngularVelocity(mgl32.Vec3{0, 2, 0})
	e.SetLife(10)

	s := NewSystem(16)
	s.AddEmitter(e)
	s.EmitParticles()
	s.Simulate(0.5)

	// the burst above plus the first timed emission
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	p := s.Particles()[0]
	if !vecNear(p.Pos, mgl32.Vec3{0.5, 0, 0}, 1e-5) {
		t.Errorf("Pos = %v, want (0.5, 0, 0)", p.Pos)
	}
	if !vecNear(p.Orientation, mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("Orientation = %v, want (0, 1, 0)", p.Orientation)
	}
}

func TestEffectorMask(t *testing.T) {
	affected := newBurstEmitter(4, 1)
	affected.EffectorMasks = []uint8{0x01}
	immune := newBurstEmitter(5, 1)
	immune.EffectorMasks = []uint8{0x02}

	s := NewSystem(16)
	s.AddEmitter(affected)
	s.AddEmitter(immune)
	s.AddEffector(&GravityEffector{Acceleration: mgl32.Vec3{0, -10, 0}, EffectorMask: 0x01})
	s.EmitParticles()
	s.Simulate(0.1)

	for _, p := range s.Particles()[:2] {
		switch p.EffectorMask {
		case 0x01:
			if mgl32.Abs(p.Vel.Y()+1) > 1e-5 {
				t.Errorf("masked-in particle Vel.Y = %f, want -1", p.Vel.Y())
			}
		case 0x02:
			if p.Vel.Y() != 0 {
				t.Errorf("masked-out particle Vel.Y = %f, want 0", p.Vel.Y())
			}
		}
	}
}

func TestDragSlowsParticles(t *testing.T) {
	e := newBurstEmitter(6, 1)
	e.SetVelocity(mgl32.Vec3{10, 0, 0})
	e.SetDrag(1)
	e.SetMass(2)

	s := NewSystem(16)
	s.AddEmitter(e)
	s.EmitParticles()
	s.Simulate(0.5)

	// factor 1 - 1*0.5/2
	if got := s.Particles()[0].Vel.X(); mgl32.Abs(got-7.5) > 1e-5 {
		t.Errorf("Vel.X = %f, want 7.5", got)
	}
}

func TestWindEffector(t *testing.T) {
	w := &WindEffector{Velocity: mgl32.Vec3{4, 0, 0}, Coefficient: 1, EffectorMask: 0xFF}
	p := DefaultParticle()
	p.Mass = 2
	w.Apply(&p, 0.5)
	if !vecNear(p.Vel, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Vel = %v, want (1, 0, 0)", p.Vel)
	}

	p.Mass = 0
	before := p.Vel
	w.Apply(&p, 0.5)
	if p.Vel != before {
		t.Error("massless particle should not be pushed")
	}
}

func BenchmarkSystemSimulate(b *testing.B) {
	e := NewFieldEmitter(fieldgen.NewSphereGenerator(mgl32.Vec3{}, 1), rand.New(rand.NewSource(1)))
	e.SetParticlesPerEmission(200)
	e.SetEmissionInterval(0.01)
	e.SetLife(2)
	s := NewSystem(8192)
	s.AddEmitter(e)
	s.AddEffector(&GravityEffector{Acceleration: mgl32.Vec3{0, -9.8, 0}, EffectorMask: 0xFF})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Simulate(1.0 / 60)
	}
}
