// Package vertexdata flattens engine state into interleaved float buffers
// ready for upload. It has no GL dependency so it can be tested headless.
package vertexdata

import (
	"simplescene/internal/particles"

	"github.com/go-gl/mathgl/mgl32"
)

// Floats per vertex of each layout
const (
	ParticleStride = 8 // x, y, z, size, r, g, b, a
	LineStride     = 6 // x, y, z, r, g, b
)

// PackParticles writes one point vertex per particle into dst, reusing its
// storage, and returns the filled slice
func PackParticles(dst []float32, ps []particles.Particle) []float32 {
	dst = dst[:0]
	for i := range ps {
		p := &ps[i]
		s := p.Scale()
		size := (s[0] + s[1] + s[2]) / 3
		dst = append(dst,
			p.Pos[0], p.Pos[1], p.Pos[2], size,
			p.Color[0], p.Color[1], p.Color[2], p.Color[3],
		)
	}
	return dst
}

// Segment is a colored line between two world positions
type Segment struct {
	From, To mgl32.Vec3
	Color    mgl32.Vec3
}

// PackLines writes two vertices per segment into dst
func PackLines(dst []float32, segs []Segment) []float32 {
	dst = dst[:0]
	for _, s := range segs {
		dst = append(dst,
			s.From[0], s.From[1], s.From[2], s.Color[0], s.Color[1], s.Color[2],
			s.To[0], s.To[1], s.To[2], s.Color[0], s.Color[1], s.Color[2],
		)
	}
	return dst
}

// Cross returns three axis-aligned segments centred on p, used as a marker
func Cross(dst []Segment, p mgl32.Vec3, half float32, color mgl32.Vec3) []Segment {
	for axis := 0; axis < 3; axis++ {
		var d mgl32.Vec3
		d[axis] = half
		dst = append(dst, Segment{From: p.Sub(d), To: p.Add(d), Color: color})
	}
	return dst
}
