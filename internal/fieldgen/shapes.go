package fieldgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PointGenerator places every particle at Center
type PointGenerator struct {
	seeded
	Center mgl32.Vec3
}

func NewPointGenerator(center mgl32.Vec3) *PointGenerator {
	return &PointGenerator{seeded: newSeeded(0), Center: center}
}

func (g *PointGenerator) Generate(count int, receiver NewParticleFunc) {
	generatePositions(count, receiver, func() mgl32.Vec3 { return g.Center })
}

// SphereGenerator places particles uniformly inside a ball
type SphereGenerator struct {
	seeded
	Center mgl32.Vec3
	Radius float32
}

func NewSphereGenerator(center mgl32.Vec3, radius float32) *SphereGenerator {
	return &SphereGenerator{seeded: newSeeded(0), Center: center, Radius: radius}
}

func (g *SphereGenerator) Generate(count int, receiver NewParticleFunc) {
	generatePositions(count, receiver, func() mgl32.Vec3 {
		return g.Center.Add(g.insideUnitBall().Mul(g.Radius))
	})
}

// OvalGenerator places particles uniformly inside an axis-aligned ellipsoid
type OvalGenerator struct {
	seeded
	Center mgl32.Vec3
	Radii  mgl32.Vec3
}

func NewOvalGenerator(center, radii mgl32.Vec3) *OvalGenerator {
	return &OvalGenerator{seeded: newSeeded(0), Center: center, Radii: radii}
}

func (g *OvalGenerator) Generate(count int, receiver NewParticleFunc) {
	generatePositions(count, receiver, func() mgl32.Vec3 {
		v := g.insideUnitBall()
		return g.Center.Add(mgl32.Vec3{v[0] * g.Radii[0], v[1] * g.Radii[1], v[2] * g.Radii[2]})
	})
}

// CubeGenerator places particles uniformly inside an axis-aligned box of the
// given edge lengths
type CubeGenerator struct {
	seeded
	Center mgl32.Vec3
	Size   mgl32.Vec3
}

func NewCubeGenerator(center, size mgl32.Vec3) *CubeGenerator {
	return &CubeGenerator{seeded: newSeeded(0), Center: center, Size: size}
}

func (g *CubeGenerator) Generate(count int, receiver NewParticleFunc) {
	generatePositions(count, receiver, func() mgl32.Vec3 {
		return g.Center.Add(mgl32.Vec3{
			g.signed() * g.Size[0] / 2,
			g.signed() * g.Size[1] / 2,
			g.signed() * g.Size[2] / 2,
		})
	})
}

// DiscGenerator places particles uniformly on a flat disc facing Normal
type DiscGenerator struct {
	seeded
	Center mgl32.Vec3
	Normal mgl32.Vec3
	Radius float32
}

func NewDiscGenerator(center, normal mgl32.Vec3, radius float32) *DiscGenerator {
	return &DiscGenerator{seeded: newSeeded(0), Center: center, Normal: normal, Radius: radius}
}

func (g *DiscGenerator) Generate(count int, receiver NewParticleFunc) {
	u, v := discBasis(g.Normal)
	generatePositions(count, receiver, func() mgl32.Vec3 {
		r := g.Radius * float32(math.Sqrt(float64(g.float())))
		theta := 2 * math.Pi * float64(g.float())
		cu := r * float32(math.Cos(theta))
		cv := r * float32(math.Sin(theta))
		return g.Center.Add(u.Mul(cu)).Add(v.Mul(cv))
	})
}

// discBasis returns two unit vectors spanning the plane perpendicular to n
func discBasis(n mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	if n.Len() < 1e-6 {
		n = mgl32.Vec3{0, 1, 0}
	}
	n = n.Normalize()
	ref := mgl32.Vec3{0, 1, 0}
	if mgl32.Abs(n.Dot(ref)) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u := n.Cross(ref).Normalize()
	return u, n.Cross(u)
}
