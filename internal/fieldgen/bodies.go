package fieldgen

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BodiesGenerator decorates the positions of a particles field with a random
// uniform scale and orientation per body
type BodiesGenerator struct {
	seeded
	Field    ParticlesFieldGenerator
	ScaleMin float32
	ScaleMax float32
}

func NewBodiesGenerator(field ParticlesFieldGenerator, scaleMin, scaleMax float32) *BodiesGenerator {
	return &BodiesGenerator{
		seeded:   newSeeded(0),
		Field:    field,
		ScaleMin: scaleMin,
		ScaleMax: scaleMax,
	}
}

// bodyStream and fieldStream keep the body attributes and the positions of
// the wrapped field on separate streams
const (
	bodyStream = iota
	fieldStream
)

// SetSeed reseeds both the body attributes and the wrapped position field
func (g *BodiesGenerator) SetSeed(seed int64) {
	g.seeded.SetSeed(SubSeed(seed, bodyStream))
	g.Field.SetSeed(SubSeed(seed, fieldStream))
}

func (g *BodiesGenerator) Generate(count int, receiver NewBodyFunc) {
	g.Field.Generate(count, func(id int, pos mgl32.Vec3) bool {
		scale := g.ScaleMin + (g.ScaleMax-g.ScaleMin)*g.float()
		return receiver(id, scale, pos, g.orientation())
	})
}
