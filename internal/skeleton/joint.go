package skeleton

import (
	"github.com/go-gl/mathgl/mgl32"
)

// JointLocation is a rigid transform: rotate by Orientation, then translate
// by Position
type JointLocation struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// IdentityLocation returns the transform that changes nothing
func IdentityLocation() JointLocation {
	return JointLocation{Orientation: mgl32.QuatIdent()}
}

// Transform maps v from this location's space into its parent's space
func (l JointLocation) Transform(v mgl32.Vec3) mgl32.Vec3 {
	return l.Position.Add(l.Orientation.Rotate(v))
}

// UndoTransformTo maps v from the parent's space into this location's space
func (l JointLocation) UndoTransformTo(v mgl32.Vec3) mgl32.Vec3 {
	return l.Orientation.Inverse().Rotate(v.Sub(l.Position))
}

// ApplyPrecedingTransform prepends parent, turning a parent-relative location
// into one expressed in the parent's own parent space
func (l *JointLocation) ApplyPrecedingTransform(parent JointLocation) {
	l.Position = parent.Transform(l.Position)
	l.Orientation = parent.Orientation.Mul(l.Orientation).Normalize()
}

// Mat4 returns the transform as a matrix
func (l JointLocation) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(l.Position[0], l.Position[1], l.Position[2]).Mul4(l.Orientation.Mat4())
}

// JointInfo is the immutable description of a joint as loaded
type JointInfo struct {
	Name        string
	Index       int
	ParentIndex int // -1 for a root joint

	// BindPoseLocation is relative to the parent joint
	BindPoseLocation JointLocation
}

// JointRuntime is the per-frame state of one joint
type JointRuntime struct {
	Info JointInfo

	// Parent is nil for a root joint. The Runtime owns all joints.
	Parent *JointRuntime

	// CurrentLocation is in mesh space, recomputed by Runtime.Update
	CurrentLocation JointLocation
}

// ChannelController drives the location of the joints it is active for
type ChannelController interface {
	IsActive(joint *JointRuntime) bool

	// ComputeJointLocation returns the joint's location relative to its parent
	ComputeJointLocation(joint *JointRuntime) JointLocation
}
