package particles

import (
	"math/rand"
	"testing"

	"simplescene/internal/fieldgen"
	"simplescene/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestEmitter(seed int64) *FieldEmitter {
	return NewFieldEmitter(fieldgen.NewPointGenerator(mgl32.Vec3{}), rand.New(rand.NewSource(seed)))
}

func countingReceiver(n *int) Receiver {
	return func(p *Particle) { *n++ }
}

func inRange(v, lo, hi float32) bool {
	return v >= lo && v <= hi
}

func TestConfigureNewParticleWithinRanges(t *testing.T) {
	e := newTestEmitter(1)
	e.LifeMin, e.LifeMax = 1, 3
	e.VelocityComponentMin, e.VelocityComponentMax = mgl32.Vec3{-1, 0, 2}, mgl32.Vec3{1, 5, 4}
	e.OrientationMin, e.OrientationMax = mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 3, 3}
	e.AngularVelocityMin, e.AngularVelocityMax = mgl32.Vec3{-2, -2, -2}, mgl32.Vec3{2, 2, 2}
	e.MasterScaleMin, e.MasterScaleMax = 0.5, 1.5
	e.ComponentScaleMin, e.ComponentScaleMax = mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 3, 4}
	e.ColorComponentMin, e.ColorComponentMax = mgl32.Vec4{0, 0.5, 0, 0}, mgl32.Vec4{1, 1, 0.5, 1}
	e.MassMin, e.MassMax = 1, 10
	e.RotationalInertiaMin, e.RotationalInertiaMax = 0.1, 0.2
	e.DragMin, e.DragMax = 0, 0.5
	e.RotationalDragMin, e.RotationalDragMax = 0.25, 0.75

	for i := 0; i < 2000; i++ {
		var p Particle
		e.configureNewParticle(&p)

		if !inRange(p.Life, 1, 3) {
			t.Fatalf("Life %f outside [1,3]", p.Life)
		}
		for c := 0; c < 3; c++ {
			if !inRange(p.Vel[c], e.VelocityComponentMin[c], e.VelocityComponentMax[c]) {
				t.Fatalf("Vel[%d] = %f outside range", c, p.Vel[c])
			}
			if !inRange(p.Orientation[c], 0, 3) {
				t.Fatalf("Orientation[%d] = %f outside range", c, p.Orientation[c])
			}
			if !inRange(p.AngularVelocity[c], -2, 2) {
				t.Fatalf("AngularVelocity[%d] = %f outside range", c, p.AngularVelocity[c])
			}
			if !inRange(p.ComponentScale[c], e.ComponentScaleMin[c], e.ComponentScaleMax[c]) {
				t.Fatalf("ComponentScale[%d] = %f outside range", c, p.ComponentScale[c])
			}
		}
		for c := 0; c < 4; c++ {
			if !inRange(p.Color[c], e.ColorComponentMin[c], e.ColorComponentMax[c]) {
				t.Fatalf("Color[%d] = %f outside range", c, p.Color[c])
			}
		}
		if !inRange(p.MasterScale, 0.5, 1.5) || !inRange(p.Mass, 1, 10) ||
			!inRange(p.RotationalInertia, 0.1, 0.2) || !inRange(p.Drag, 0, 0.5) ||
			!inRange(p.RotationalDrag, 0.25, 0.75) {
			t.Fatalf("scalar attribute outside range: %+v", p)
		}
	}
}

func TestVectorComponentsDrawnIndependently(t *testing.T) {
	e := newTestEmitter(2)
	e.VelocityComponentMin, e.VelocityComponentMax = mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}

	var p Particle
	differ := false
	for i := 0; i < 10 && !differ; i++ {
		e.configureNewParticle(&p)
		differ = p.Vel[0] != p.Vel[1] || p.Vel[1] != p.Vel[2]
	}
	if !differ {
		t.Error("velocity components were always equal; expected independent draws")
	}
}

func TestInvertedRangeIsNotRejected(t *testing.T) {
	e := newTestEmitter(3)
	e.LifeMin, e.LifeMax = 2, 1
	var p Particle
	for i := 0; i < 500; i++ {
		e.configureNewParticle(&p)
		if p.Life <= 1 || p.Life > 2 {
			t.Fatalf("inverted range Life = %f, want (1, 2]", p.Life)
		}
	}
}

func TestParticlesPerEmissionFixedCount(t *testing.T) {
	e := newTestEmitter(4)
	e.SetParticlesPerEmission(5)
	for i := 0; i < 20; i++ {
		n := 0
		e.EmitParticles(countingReceiver(&n))
		if n != 5 {
			t.Fatalf("emission %d: got %d particles, want exactly 5", i, n)
		}
	}
}

// The per-emission count is drawn from [Min, Max): Max itself is never emitted.
func TestParticlesPerEmissionUpperBoundExclusive(t *testing.T) {
	e := newTestEmitter(5)
	e.ParticlesPerEmissionMin, e.ParticlesPerEmissionMax = 1, 3

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := 0
		e.EmitParticles(countingReceiver(&n))
		seen[n] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("expected counts 1 and 2 to occur, saw %v", seen)
	}
	if seen[3] {
		t.Error("count 3 (ParticlesPerEmissionMax) was emitted; upper bound must be exclusive")
	}
}

// Sprite selection draws from [0, len-1): the last entry is never used.
func TestSpriteSelectionSkipsLastEntry(t *testing.T) {
	e := newTestEmitter(6)
	e.SpriteIndices = []uint8{10, 20, 30}
	e.SpriteRectangles = []geom.Rect{{X: 0}, {X: 0.5}}

	seen := map[uint8]bool{}
	var p Particle
	for i := 0; i < 500; i++ {
		e.configureNewParticle(&p)
		seen[p.SpriteIndex] = true
		if p.SpriteRect.X != 0 {
			t.Fatalf("picked sprite rect %v, only the first of two is reachable", p.SpriteRect)
		}
	}
	if !seen[10] || !seen[20] {
		t.Errorf("expected sprite indices 10 and 20, saw %v", seen)
	}
	if seen[30] {
		t.Error("last sprite index was selected")
	}

	e.SpriteIndices = []uint8{7}
	e.configureNewParticle(&p)
	if p.SpriteIndex != 7 {
		t.Errorf("single sprite index: got %d, want 7", p.SpriteIndex)
	}
}

func TestEffectorMaskSelectionCoversWholeSet(t *testing.T) {
	e := newTestEmitter(11)
	e.EffectorMasks = []uint8{0x01, 0x02}

	seen := map[uint8]bool{}
	var p Particle
	for i := 0; i < 200; i++ {
		e.configureNewParticle(&p)
		seen[p.EffectorMask] = true
	}
	if !seen[0x01] || !seen[0x02] {
		t.Errorf("expected both masks to be picked, saw %v", seen)
	}
}

func TestEmitPositionsComeFromField(t *testing.T) {
	center := mgl32.Vec3{4, 5, 6}
	e := NewFieldEmitter(fieldgen.NewPointGenerator(center), rand.New(rand.NewSource(7)))
	e.SetParticlesPerEmission(3)
	e.SetVelocity(mgl32.Vec3{0, 1, 0})

	n := 0
	e.EmitParticles(func(p *Particle) {
		n++
		if p.Pos != center {
			t.Errorf("Pos = %v, want %v", p.Pos, center)
		}
		if p.Vel != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("Vel = %v, want collapsed range value", p.Vel)
		}
	})
	if n != 3 {
		t.Errorf("emitted %d, want 3", n)
	}
}

func TestSimulateHonorsInitialDelay(t *testing.T) {
	e := newTestEmitter(8)
	e.EmissionDelay = 0.5
	e.Reset()

	n := 0
	recv := countingReceiver(&n)
	for i := 0; i < 3; i++ {
		e.Simulate(0.125, recv)
	}
	if n != 0 {
		t.Fatalf("emitted %d particles before the delay elapsed", n)
	}

	// 4 * 0.125 reaches the delay exactly
	e.Simulate(0.125, recv)
	if n != 1 {
		t.Errorf("after delay: emitted %d, want 1", n)
	}
}

func TestSimulateEmitsImmediatelyAfterReset(t *testing.T) {
	e := newTestEmitter(9)
	e.SetEmissionInterval(10)
	e.Reset()

	n := 0
	e.Simulate(0, countingReceiver(&n))
	if n != 1 {
		t.Fatalf("first tick after Reset emitted %d, want 1", n)
	}

	e.Simulate(5, countingReceiver(&n))
	if n != 1 {
		t.Fatalf("emitted again before the interval elapsed")
	}

	// Reset is idempotent and restarts the cadence
	e.Reset()
	e.Reset()
	e.Simulate(0, countingReceiver(&n))
	if n != 2 {
		t.Errorf("tick after second Reset: total %d, want 2", n)
	}
}

func TestSimulateIntervalIsStrict(t *testing.T) {
	e := newTestEmitter(10)
	e.SetEmissionInterval(1)

	n := 0
	recv := countingReceiver(&n)
	e.Simulate(0.5, recv) // first emission
	e.Simulate(0.5, recv)
	e.Simulate(0.5, recv) // elapsed == interval, not yet
	if n != 1 {
		t.Fatalf("emissions = %d, want 1 while elapsed <= interval", n)
	}
	e.Simulate(0.25, recv)
	if n != 2 {
		t.Errorf("emissions = %d, want 2 once elapsed exceeds interval", n)
	}
}

func TestSimulateIntervalWithinRange(t *testing.T) {
	e := newTestEmitter(11)
	e.EmissionIntervalMin, e.EmissionIntervalMax = 0.5, 1.5

	for i := 0; i < 100; i++ {
		e.Simulate(0.01, func(*Particle) {})
		if !inRange(e.nextEmission, 0, 1.5) {
			t.Fatalf("next emission threshold %f outside range", e.nextEmission)
		}
	}
}

type stubBodies struct {
	scale  float32
	pos    mgl32.Vec3
	orient mgl32.Quat
	seed   int64
}

func (s *stubBodies) SetSeed(seed int64) { s.seed = seed }

func (s *stubBodies) Generate(count int, receiver fieldgen.NewBodyFunc) {
	for i := 0; i < count; i++ {
		if !receiver(i, s.scale, s.pos, s.orient) {
			return
		}
	}
}

func TestBodiesEmitterAppliesBodyTransform(t *testing.T) {
	body := &stubBodies{
		scale:  2,
		pos:    mgl32.Vec3{1, 2, 3},
		orient: mgl32.QuatRotate(0.5, mgl32.Vec3{0, 1, 0}),
	}
	e := NewBodiesEmitter(body, rand.New(rand.NewSource(12)))
	e.SetMasterScale(3)
	e.SetOrientation(mgl32.Vec3{0.1, 0, 0})
	e.SetParticlesPerEmission(2)
	e.SetSeed(77)
	if body.seed != 77 {
		t.Errorf("SetSeed not forwarded: %d", body.seed)
	}

	n := 0
	e.EmitParticles(func(p *Particle) {
		n++
		if p.Pos != body.pos {
			t.Errorf("Pos = %v, want %v", p.Pos, body.pos)
		}
		if mgl32.Abs(p.MasterScale-6) > 1e-5 {
			t.Errorf("MasterScale = %f, want 6", p.MasterScale)
		}
		if !vecNear(p.Orientation, mgl32.Vec3{0.1, 0.5, 0}, 1e-4) {
			t.Errorf("Orientation = %v, want (0.1, 0.5, 0)", p.Orientation)
		}
	})
	if n != 2 {
		t.Errorf("emitted %d, want 2", n)
	}
}

func BenchmarkEmitParticles(b *testing.B) {
	e := NewFieldEmitter(fieldgen.NewSphereGenerator(mgl32.Vec3{}, 1), rand.New(rand.NewSource(1)))
	e.SetParticlesPerEmission(100)
	recv := func(*Particle) {}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EmitParticles(recv)
	}
}
