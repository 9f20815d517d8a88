package scene

import (
	"simplescene/internal/skeleton"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is a positioned, oriented and scaled node in the scene
type Object struct {
	Name   string
	Pos    mgl32.Vec3
	Orient mgl32.Quat
	Scale  mgl32.Vec3
}

var (
	_ skeleton.Positioned = (*Object)(nil)
	_ skeleton.MeshHost   = (*Object)(nil)
)

func NewObject(name string) *Object {
	return &Object{
		Name:   name,
		Orient: mgl32.QuatIdent(),
		Scale:  mgl32.Vec3{1, 1, 1},
	}
}

func (o *Object) Position() mgl32.Vec3 { return o.Pos }

// WorldMat returns translate * rotate * scale
func (o *Object) WorldMat() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Pos[0], o.Pos[1], o.Pos[2])
	s := mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2])
	return t.Mul4(o.Orient.Mat4()).Mul4(s)
}

// MeshObject is an object carrying an animated skeleton
type MeshObject struct {
	*Object
	Skeleton *skeleton.Runtime

	skinning []mgl32.Mat4
}

func NewMeshObject(name string, skel *skeleton.Runtime) *MeshObject {
	return &MeshObject{Object: NewObject(name), Skeleton: skel}
}

// Update re-evaluates the skeleton and refreshes the skinning matrices
func (m *MeshObject) Update() {
	m.Skeleton.Update()
	m.skinning = m.Skeleton.SkinningMatrices(m.skinning)
}

// SkinningMatrices returns the matrices computed by the last Update
func (m *MeshObject) SkinningMatrices() []mgl32.Mat4 {
	return m.skinning
}

// JointWorldPositions appends the world position of every joint, in
// Skeleton.Joints() order, to dst
func (m *MeshObject) JointWorldPositions(dst []mgl32.Vec3) []mgl32.Vec3 {
	world := m.WorldMat()
	for _, j := range m.Skeleton.Joints() {
		dst = append(dst, mgl32.TransformCoordinate(j.CurrentLocation.Position, world))
	}
	return dst
}
