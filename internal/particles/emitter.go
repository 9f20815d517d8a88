package particles

import (
	"math"

	"simplescene/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Receiver takes a freshly configured particle. The pointer is only valid for
// the duration of the call; keep a copy, not the pointer.
type Receiver func(p *Particle)

// RandomSource is the randomness an emitter draws from. *rand.Rand satisfies it.
type RandomSource interface {
	Float32() float32
	Intn(n int) int
}

// ParticleSource emits particles on demand or periodically
type ParticleSource interface {
	Reset()
	EmitParticles(receiver Receiver)
	Simulate(deltaT float32, receiver Receiver)
}

// Emitter holds the emission timing and attribute ranges shared by every
// particle source. Every attribute is drawn as Lerp(Min, Max, u) with a fresh
// u per scalar component. Min <= Max is up to the caller; inverted ranges are
// used as given.
type Emitter struct {
	EmissionDelay float32

	EmissionIntervalMin float32
	EmissionIntervalMax float32

	ParticlesPerEmissionMin int
	ParticlesPerEmissionMax int

	LifeMin float32
	LifeMax float32

	VelocityComponentMin mgl32.Vec3
	VelocityComponentMax mgl32.Vec3

	OrientationMin mgl32.Vec3
	OrientationMax mgl32.Vec3

	AngularVelocityMin mgl32.Vec3
	AngularVelocityMax mgl32.Vec3

	MasterScaleMin float32
	MasterScaleMax float32

	ComponentScaleMin mgl32.Vec3
	ComponentScaleMax mgl32.Vec3

	ColorComponentMin mgl32.Vec4
	ColorComponentMax mgl32.Vec4

	MassMin float32
	MassMax float32

	RotationalInertiaMin float32
	RotationalInertiaMax float32

	DragMin float32
	DragMax float32

	RotationalDragMin float32
	RotationalDragMax float32

	SpriteRectangles []geom.Rect
	SpriteIndices    []uint8
	EffectorMasks    []uint8

	rng RandomSource

	initialDelay          float32
	timeSinceLastEmission float32
	nextEmission          float32
}

// NewEmitter returns emitter state with every range collapsed onto the
// default particle's values, one particle per emission, once per second.
func NewEmitter(rng RandomSource) Emitter {
	d := DefaultParticle()
	e := Emitter{
		EmissionIntervalMin:     1,
		EmissionIntervalMax:     1,
		ParticlesPerEmissionMin: 1,
		ParticlesPerEmissionMax: 1,
		SpriteRectangles:        []geom.Rect{d.SpriteRect},
		SpriteIndices:           []uint8{d.SpriteIndex},
		EffectorMasks:           []uint8{d.EffectorMask},
		rng:                     rng,
	}
	e.SetLife(d.Life)
	e.SetVelocity(d.Vel)
	e.SetOrientation(d.Orientation)
	e.SetAngularVelocity(d.AngularVelocity)
	e.SetMasterScale(d.MasterScale)
	e.SetComponentScale(d.ComponentScale)
	e.SetColor(d.Color)
	e.SetMass(d.Mass)
	e.SetRotationalInertia(d.RotationalInertia)
	e.SetDrag(d.Drag)
	e.SetRotationalDrag(d.RotationalDrag)
	e.Reset()
	return e
}

// The Set* helpers collapse a range onto a single value.

func (e *Emitter) SetEmissionInterval(v float32) {
	e.EmissionIntervalMin, e.EmissionIntervalMax = v, v
}

func (e *Emitter) SetParticlesPerEmission(n int) {
	e.ParticlesPerEmissionMin, e.ParticlesPerEmissionMax = n, n
}

func (e *Emitter) SetLife(v float32) {
	e.LifeMin, e.LifeMax = v, v
}

func (e *Emitter) SetVelocity(v mgl32.Vec3) {
	e.VelocityComponentMin, e.VelocityComponentMax = v, v
}

func (e *Emitter) SetOrientation(v mgl32.Vec3) {
	e.OrientationMin, e.OrientationMax = v, v
}

func (e *Emitter) SetAngularVelocity(v mgl32.Vec3) {
	e.AngularVelocityMin, e.AngularVelocityMax = v, v
}

func (e *Emitter) SetMasterScale(v float32) {
	e.MasterScaleMin, e.MasterScaleMax = v, v
}

func (e *Emitter) SetComponentScale(v mgl32.Vec3) {
	e.ComponentScaleMin, e.ComponentScaleMax = v, v
}

func (e *Emitter) SetColor(c mgl32.Vec4) {
	e.ColorComponentMin, e.ColorComponentMax = c, c
}

func (e *Emitter) SetMass(v float32) {
	e.MassMin, e.MassMax = v, v
}

func (e *Emitter) SetRotationalInertia(v float32) {
	e.RotationalInertiaMin, e.RotationalInertiaMax = v, v
}

func (e *Emitter) SetDrag(v float32) {
	e.DragMin, e.DragMax = v, v
}

func (e *Emitter) SetRotationalDrag(v float32) {
	e.RotationalDragMin, e.RotationalDragMax = v, v
}

// Reset restarts the emission cadence. The first emission happens on the
// first Simulate after EmissionDelay has elapsed.
func (e *Emitter) Reset() {
	e.initialDelay = e.EmissionDelay
	e.timeSinceLastEmission = float32(math.Inf(1))
	e.nextEmission = 0
}

// emit draws a particle count in [ParticlesPerEmissionMin, ParticlesPerEmissionMax)
// and hands it to the variant's generation strategy
func (e *Emitter) emit(receiver Receiver, spawn func(count int, receiver Receiver)) {
	spawn(e.randomRange(e.ParticlesPerEmissionMin, e.ParticlesPerEmissionMax), receiver)
}

func (e *Emitter) simulate(deltaT float32, receiver Receiver, spawn func(count int, receiver Receiver)) {
	if e.initialDelay > 0 {
		e.initialDelay -= deltaT
		if e.initialDelay > 0 {
			return
		}
	}

	e.timeSinceLastEmission += deltaT
	if e.timeSinceLastEmission > e.nextEmission {
		e.emit(receiver, spawn)
		e.timeSinceLastEmission = 0
		e.nextEmission = geom.Lerp(e.EmissionIntervalMin, e.EmissionIntervalMax, e.rng.Float32())
	}
}

// randomRange returns a uniform int in [lo, hi), or lo when the range is
// empty. The upper bound is exclusive: with lo=1, hi=3 only 1 and
// 2 are ever drawn.
func (e *Emitter) randomRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo)
}

// pickIndex chooses an index into a set of n entries. It draws from
// [0, n-1), so the last entry of a multi-entry set is never picked.
func (e *Emitter) pickIndex(n int) int {
	return e.randomRange(0, n-1)
}

func (e *Emitter) lerp(lo, hi float32) float32 {
	return geom.Lerp(lo, hi, e.rng.Float32())
}

func (e *Emitter) lerpVec3(lo, hi mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{e.lerp(lo[0], hi[0]), e.lerp(lo[1], hi[1]), e.lerp(lo[2], hi[2])}
}

func (e *Emitter) lerpVec4(lo, hi mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{
		e.lerp(lo[0], hi[0]), e.lerp(lo[1], hi[1]),
		e.lerp(lo[2], hi[2]), e.lerp(lo[3], hi[3]),
	}
}

// configureNewParticle overwrites every ranged attribute of p
func (e *Emitter) configureNewParticle(p *Particle) {
	p.Life = e.lerp(e.LifeMin, e.LifeMax)

	p.ComponentScale = e.lerpVec3(e.ComponentScaleMin, e.ComponentScaleMax)
	p.Orientation = e.lerpVec3(e.OrientationMin, e.OrientationMax)
	p.AngularVelocity = e.lerpVec3(e.AngularVelocityMin, e.AngularVelocityMax)
	p.Vel = e.lerpVec3(e.VelocityComponentMin, e.VelocityComponentMax)

	p.MasterScale = e.lerp(e.MasterScaleMin, e.MasterScaleMax)

	p.Mass = e.lerp(e.MassMin, e.MassMax)
	p.RotationalInertia = e.lerp(e.RotationalInertiaMin, e.RotationalInertiaMax)
	p.Drag = e.lerp(e.DragMin, e.DragMax)
	p.RotationalDrag = e.lerp(e.RotationalDragMin, e.RotationalDragMax)

	p.Color = e.lerpVec4(e.ColorComponentMin, e.ColorComponentMax)

	if len(e.SpriteIndices) > 0 {
		p.SpriteIndex = e.SpriteIndices[e.pickIndex(len(e.SpriteIndices))]
	}
	if len(e.SpriteRectangles) > 0 {
		p.SpriteRect = e.SpriteRectangles[e.pickIndex(len(e.SpriteRectangles))]
	}
	// masks are drawn over the whole set, unlike the sprite picks
	if len(e.EffectorMasks) > 0 {
		p.EffectorMask = e.EffectorMasks[e.randomRange(0, len(e.EffectorMasks))]
	}
}
