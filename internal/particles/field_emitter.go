package particles

import (
	"simplescene/internal/fieldgen"
	"simplescene/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// FieldEmitter places each emitted particle at a position produced by a
// particles field generator
type FieldEmitter struct {
	Emitter
	field fieldgen.ParticlesFieldGenerator
}

var _ ParticleSource = (*FieldEmitter)(nil)

func NewFieldEmitter(field fieldgen.ParticlesFieldGenerator, rng RandomSource) *FieldEmitter {
	return &FieldEmitter{Emitter: NewEmitter(rng), field: field}
}

// SetSeed reseeds the underlying field generator
func (f *FieldEmitter) SetSeed(seed int64) {
	f.field.SetSeed(seed)
}

// EmitParticles emits one burst immediately
func (f *FieldEmitter) EmitParticles(receiver Receiver) {
	f.emit(receiver, f.emitParticles)
}

// Simulate advances the emission timers by deltaT seconds
func (f *FieldEmitter) Simulate(deltaT float32, receiver Receiver) {
	f.simulate(deltaT, receiver, f.emitParticles)
}

func (f *FieldEmitter) emitParticles(count int, receiver Receiver) {
	var p Particle
	f.field.Generate(count, func(id int, pos mgl32.Vec3) bool {
		f.configureNewParticle(&p)
		p.Pos = pos
		receiver(&p)
		return true
	})
}

// BodiesEmitter emits particles from a bodies field generator. The body's
// scale multiplies the drawn master scale and its orientation is added to the
// drawn Euler orientation.
type BodiesEmitter struct {
	Emitter
	bodies fieldgen.BodiesFieldGenerator
}

var _ ParticleSource = (*BodiesEmitter)(nil)

func NewBodiesEmitter(bodies fieldgen.BodiesFieldGenerator, rng RandomSource) *BodiesEmitter {
	return &BodiesEmitter{Emitter: NewEmitter(rng), bodies: bodies}
}

// SetSeed reseeds the underlying bodies generator
func (b *BodiesEmitter) SetSeed(seed int64) {
	b.bodies.SetSeed(seed)
}

func (b *BodiesEmitter) EmitParticles(receiver Receiver) {
	b.emit(receiver, b.emitParticles)
}

func (b *BodiesEmitter) Simulate(deltaT float32, receiver Receiver) {
	b.simulate(deltaT, receiver, b.emitParticles)
}

func (b *BodiesEmitter) emitParticles(count int, receiver Receiver) {
	var p Particle
	b.bodies.Generate(count, func(id int, scale float32, pos mgl32.Vec3, orient mgl32.Quat) bool {
		b.configureNewParticle(&p)
		p.Pos = pos
		p.MasterScale *= scale
		p.Orientation = p.Orientation.Add(geom.QuatToEuler(orient))
		receiver(&p)
		return true
	})
}
