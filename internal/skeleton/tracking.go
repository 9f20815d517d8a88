package skeleton

import (
	"reflect"

	"simplescene/internal/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Positioned is anything with a world-space position
type Positioned interface {
	Position() mgl32.Vec3
}

// MeshHost is the scene object that owns the skeleton's mesh
type MeshHost interface {
	WorldMat() mgl32.Mat4
}

// lookAtReferenceAxis breaks the tie when the target is directly behind
var lookAtReferenceAxis = mgl32.Vec3{1, 0, 0}

// TrackingController turns one joint so that its neutral view direction
// points at a target object. The joint stays at a fixed local position.
type TrackingController struct {
	// JointPositionLocal is the fixed position of the joint relative to its parent
	JointPositionLocal mgl32.Vec3

	// NeutralViewOrientationLocal is the joint's orientation when it looks at nothing
	NeutralViewOrientationLocal mgl32.Quat

	// Target to look at; nil, or a nil pointer, means hold the neutral orientation
	Target Positioned

	neutralViewDirectionBindPose mgl32.Vec3
	neutralViewDirectionLocal    mgl32.Vec3
	neutralViewDirectionDirty    bool

	host     MeshHost
	jointIdx int
}

var _ ChannelController = (*TrackingController)(nil)

func NewTrackingController(jointIdx int, host MeshHost) *TrackingController {
	return &TrackingController{
		NeutralViewOrientationLocal:  mgl32.QuatIdent(),
		neutralViewDirectionBindPose: mgl32.Vec3{1, 0, 0},
		neutralViewDirectionDirty:    true,
		host:                         host,
		jointIdx:                     jointIdx,
	}
}

func (c *TrackingController) JointIndex() int { return c.jointIdx }

// NeutralViewDirectionBindPose is the mesh-space direction the joint looks
// along in bind pose
func (c *TrackingController) NeutralViewDirectionBindPose() mgl32.Vec3 {
	return c.neutralViewDirectionBindPose
}

// SetNeutralViewDirectionBindPose changes the neutral direction; the derived
// joint-local direction is recomputed on the next ComputeJointLocation
func (c *TrackingController) SetNeutralViewDirectionBindPose(dir mgl32.Vec3) {
	c.neutralViewDirectionBindPose = dir
	c.neutralViewDirectionDirty = true
}

func (c *TrackingController) IsActive(joint *JointRuntime) bool {
	return joint.Info.Index == c.jointIdx
}

func (c *TrackingController) ComputeJointLocation(joint *JointRuntime) JointLocation {
	if c.neutralViewDirectionDirty {
		c.neutralViewDirectionLocal = c.neutralDirectionInParentSpace(joint)
		c.neutralViewDirectionDirty = false
	}

	ret := JointLocation{
		Position:    c.JointPositionLocal,
		Orientation: c.NeutralViewOrientationLocal,
	}
	if absent(c.Target) {
		return ret
	}

	targetPosInMesh := mgl32.TransformCoordinate(c.Target.Position(), c.host.WorldMat().Inv())
	targetPosInLocal := targetPosInMesh
	if joint.Parent != nil {
		targetPosInLocal = joint.Parent.CurrentLocation.UndoTransformTo(targetPosInMesh)
	}
	targetDirLocal := targetPosInLocal.Sub(c.JointPositionLocal)

	neededRotation := geom.RotationTo(c.neutralViewDirectionLocal, targetDirLocal, lookAtReferenceAxis)
	ret.Orientation = c.NeutralViewOrientationLocal.Mul(neededRotation)
	return ret
}

// neutralDirectionInParentSpace expresses the bind-pose neutral direction in
// the space the joint's own location is relative to, by undoing the bind-pose
// orientations of every ancestor (root first)
func (c *TrackingController) neutralDirectionInParentSpace(joint *JointRuntime) mgl32.Vec3 {
	preceding := mgl32.QuatIdent()
	for j := joint.Parent; j != nil; j = j.Parent {
		preceding = j.Info.BindPoseLocation.Orientation.Mul(preceding)
	}
	return preceding.Inverse().Rotate(c.neutralViewDirectionBindPose)
}

// absent reports whether p is nil, including a nil pointer held by the interface
func absent(p Positioned) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
