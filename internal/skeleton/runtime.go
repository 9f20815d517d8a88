package skeleton

import (
	"errors"
	"fmt"

	"simplescene/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrDuplicateJoint = errors.New("duplicate joint index")
	ErrUnknownParent  = errors.New("unknown parent joint")
	ErrCycle          = errors.New("joint hierarchy contains a cycle")
)

// Runtime evaluates a joint hierarchy once per frame
type Runtime struct {
	// joints are ordered so every parent precedes its children
	joints      []*JointRuntime
	byIndex     map[int]*JointRuntime
	controllers []ChannelController

	// inverse mesh-space bind transform, parallel to joints
	invBind []mgl32.Mat4
}

// NewRuntime validates the joint descriptions and builds the hierarchy. All
// joints start in bind pose.
func NewRuntime(infos []JointInfo) (*Runtime, error) {
	r := &Runtime{byIndex: make(map[int]*JointRuntime, len(infos))}

	for _, info := range infos {
		if _, dup := r.byIndex[info.Index]; dup {
			return nil, fmt.Errorf("joint %q (%d): %w", info.Name, info.Index, ErrDuplicateJoint)
		}
		r.byIndex[info.Index] = &JointRuntime{Info: info}
	}

	for _, info := range infos {
		if info.ParentIndex < 0 {
			continue
		}
		parent, ok := r.byIndex[info.ParentIndex]
		if !ok || info.ParentIndex == info.Index {
			return nil, fmt.Errorf("joint %q (%d) parent %d: %w", info.Name, info.Index, info.ParentIndex, ErrUnknownParent)
		}
		r.byIndex[info.Index].Parent = parent
	}

	if err := r.order(infos); err != nil {
		return nil, err
	}

	r.invBind = make([]mgl32.Mat4, len(r.joints))
	for i, j := range r.joints {
		j.CurrentLocation = j.Info.BindPoseLocation
		if j.Parent != nil {
			j.CurrentLocation.ApplyPrecedingTransform(j.Parent.CurrentLocation)
		}
		r.invBind[i] = j.CurrentLocation.Mat4().Inv()
	}
	return r, nil
}

// order sorts joints parents-first, keeping the input order among siblings
func (r *Runtime) order(infos []JointInfo) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[int]int, len(infos))
	r.joints = make([]*JointRuntime, 0, len(infos))

	var visit func(j *JointRuntime) error
	visit = func(j *JointRuntime) error {
		switch state[j.Info.Index] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("joint %q (%d): %w", j.Info.Name, j.Info.Index, ErrCycle)
		}
		state[j.Info.Index] = visiting
		if j.Parent != nil {
			if err := visit(j.Parent); err != nil {
				return err
			}
		}
		state[j.Info.Index] = done
		r.joints = append(r.joints, j)
		return nil
	}

	for _, info := range infos {
		if err := visit(r.byIndex[info.Index]); err != nil {
			return err
		}
	}
	return nil
}

// AddController registers a controller. When several controllers are active
// for the same joint, the one added first wins.
func (r *Runtime) AddController(c ChannelController) {
	r.controllers = append(r.controllers, c)
}

// Joint returns the joint with the given index, or nil
func (r *Runtime) Joint(index int) *JointRuntime {
	return r.byIndex[index]
}

// Joints returns every joint, parents before children
func (r *Runtime) Joints() []*JointRuntime {
	return r.joints
}

// Update recomputes the current mesh-space location of every joint
func (r *Runtime) Update() {
	defer profiling.Track("skeleton.Runtime.Update")()

	for _, j := range r.joints {
		loc := j.Info.BindPoseLocation
		if c := r.controllerFor(j); c != nil {
			loc = c.ComputeJointLocation(j)
		}
		if j.Parent != nil {
			loc.ApplyPrecedingTransform(j.Parent.CurrentLocation)
		}
		j.CurrentLocation = loc
	}
}

func (r *Runtime) controllerFor(j *JointRuntime) ChannelController {
	for _, c := range r.controllers {
		if c.IsActive(j) {
			return c
		}
	}
	return nil
}

// SkinningMatrices writes, for every joint in Joints() order, the matrix that
// moves a bind-pose mesh vertex to where the joint currently is. dst is reused
// when large enough.
func (r *Runtime) SkinningMatrices(dst []mgl32.Mat4) []mgl32.Mat4 {
	if cap(dst) < len(r.joints) {
		dst = make([]mgl32.Mat4, len(r.joints))
	}
	dst = dst[:len(r.joints)]
	for i, j := range r.joints {
		dst[i] = j.CurrentLocation.Mat4().Mul4(r.invBind[i])
	}
	return dst
}
