package scene

import (
	"simplescene/internal/particles"
	"simplescene/internal/profiling"
)

// Mover animates an object procedurally; t is the scene time in seconds
type Mover func(o *Object, t, dt float32)

type movingObject struct {
	obj  *Object
	move Mover
}

// Scene is the root of everything updated once per frame
type Scene struct {
	Objects   []*Object
	Meshes    []*MeshObject
	Particles []*particles.System

	movers []movingObject
	time   float32
	paused bool
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

// AddMover attaches procedural motion to an object
func (s *Scene) AddMover(o *Object, m Mover) {
	s.movers = append(s.movers, movingObject{obj: o, move: m})
}

func (s *Scene) AddMesh(m *MeshObject) {
	s.Meshes = append(s.Meshes, m)
}

func (s *Scene) AddParticleSystem(ps *particles.System) {
	s.Particles = append(s.Particles, ps)
}

// Time is the accumulated unpaused scene time
func (s *Scene) Time() float32 { return s.time }

func (s *Scene) Paused() bool { return s.paused }

func (s *Scene) SetPaused(p bool) { s.paused = p }

// Reset restarts every particle system
func (s *Scene) Reset() {
	for _, ps := range s.Particles {
		ps.Reset()
	}
}

// Burst makes every particle system emit immediately
func (s *Scene) Burst() {
	for _, ps := range s.Particles {
		ps.EmitParticles()
	}
}

// Update advances the scene by dt seconds: movers, then skeletons (which read
// mover positions), then particles
func (s *Scene) Update(dt float32) {
	if s.paused {
		return
	}
	defer profiling.Track("scene.Scene.Update")()

	s.time += dt
	for _, m := range s.movers {
		m.move(m.obj, s.time, dt)
	}
	for _, m := range s.Meshes {
		m.Update()
	}
	for _, ps := range s.Particles {
		ps.Simulate(dt)
	}
}
