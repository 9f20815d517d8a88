// Package fieldgen produces candidate placements for newly emitted particles
// and bodies. Generators are deterministic for a given seed and sequence of
// Generate calls.
package fieldgen

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// NewParticleFunc receives one generated position. Returning false stops the
// current Generate call.
type NewParticleFunc func(id int, pos mgl32.Vec3) bool

// NewBodyFunc receives one generated body. Returning false stops the current
// Generate call.
type NewBodyFunc func(id int, scale float32, pos mgl32.Vec3, orient mgl32.Quat) bool

// ParticlesFieldGenerator generates particle positions
type ParticlesFieldGenerator interface {
	SetSeed(seed int64)
	Generate(count int, receiver NewParticleFunc)
}

// BodiesFieldGenerator generates positioned, scaled and oriented bodies
type BodiesFieldGenerator interface {
	SetSeed(seed int64)
	Generate(count int, receiver NewBodyFunc)
}

// SubSeed derives the seed of an independent stream from a parent seed.
// Distinct stream numbers give unrelated sequences, so callers that feed
// several generators from one seed never see them move in lockstep.
func SubSeed(seed, stream int64) int64 {
	// splitmix64 finalizer
	z := uint64(seed) + uint64(stream+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

// seeded is embedded by every generator to own its random stream
type seeded struct {
	rng *rand.Rand
}

func newSeeded(seed int64) seeded {
	return seeded{rng: rand.New(rand.NewSource(seed))}
}

// SetSeed restarts the generator's random stream
func (s *seeded) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *seeded) float() float32 {
	return s.rng.Float32()
}

// signed returns a uniform sample in [-1, 1)
func (s *seeded) signed() float32 {
	return s.rng.Float32()*2 - 1
}

// insideUnitBall samples uniformly inside the unit ball by rejection
func (s *seeded) insideUnitBall() mgl32.Vec3 {
	for {
		v := mgl32.Vec3{s.signed(), s.signed(), s.signed()}
		if v.Dot(v) <= 1 {
			return v
		}
	}
}

// orientation samples a uniformly distributed rotation (Shoemake's method)
func (s *seeded) orientation() mgl32.Quat {
	u1 := float64(s.float())
	u2 := 2 * math.Pi * float64(s.float())
	u3 := 2 * math.Pi * float64(s.float())
	a := math.Sqrt(1 - u1)
	b := math.Sqrt(u1)
	return mgl32.Quat{
		W: float32(b * math.Cos(u3)),
		V: mgl32.Vec3{
			float32(a * math.Sin(u2)),
			float32(a * math.Cos(u2)),
			float32(b * math.Sin(u3)),
		},
	}.Normalize()
}

// generatePositions drives the shared receiver loop for position generators
func generatePositions(count int, receiver NewParticleFunc, next func() mgl32.Vec3) {
	for id := 0; id < count; id++ {
		if !receiver(id, next()) {
			return
		}
	}
}
