package scene

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"simplescene/internal/fieldgen"
	"simplescene/internal/particles"
	"simplescene/internal/skeleton"

	"github.com/go-gl/mathgl/mgl32"
)

// Joint indices of the demo creature
const (
	JointBody = iota
	JointNeck
	JointHead
)

// Effector mask bits used by the demo
const (
	MaskGravity uint8 = 1 << iota
	MaskWind
)

// Random streams derived from the demo seed
const (
	streamSparks = iota
	streamSparkField
	streamDebris
	streamDebrisField
)

// Demo is a small showcase: a creature whose head tracks an orbiting target,
// a spark fountain and a debris field around it
type Demo struct {
	*Scene
	Target   *Object
	Creature *MeshObject
	Tracker  *skeleton.TrackingController
	Sparks   *particles.FieldEmitter
	Debris   *particles.BodiesEmitter
}

// NewDemoScene builds the demo scene. Every random stream is derived from seed.
func NewDemoScene(seed int64, particleCapacity int) (*Demo, error) {
	s := New()

	target := NewObject("target")
	target.Pos = mgl32.Vec3{4, 2, 0}
	s.AddObject(target)
	s.AddMover(target, orbit(mgl32.Vec3{0, 2, 0}, 4, 0.6))

	skel, err := skeleton.NewRuntime(creatureJoints())
	if err != nil {
		return nil, fmt.Errorf("demo creature skeleton: %w", err)
	}
	creature := NewMeshObject("creature", skel)
	creature.Pos = mgl32.Vec3{0, 0, -1}
	s.AddMesh(creature)

	tracker := skeleton.NewTrackingController(JointHead, creature.Object)
	tracker.JointPositionLocal = skel.Joint(JointHead).Info.BindPoseLocation.Position
	tracker.SetNeutralViewDirectionBindPose(mgl32.Vec3{0, 0, 1})
	tracker.Target = target
	skel.AddController(tracker)
	log.Printf("demo creature: %d joints, head tracking %q", len(skel.Joints()), target.Name)

	ps := particles.NewSystem(particleCapacity)
	ps.AddEffector(&particles.GravityEffector{Acceleration: mgl32.Vec3{0, -9.8, 0}, EffectorMask: MaskGravity})
	ps.AddEffector(&particles.WindEffector{Velocity: mgl32.Vec3{1.5, 0, 0}, Coefficient: 0.4, EffectorMask: MaskWind})

	sparkField := fieldgen.NewSphereGenerator(mgl32.Vec3{0, 0.2, 2}, 0.2)
	sparks := particles.NewFieldEmitter(sparkField, rand.New(rand.NewSource(fieldgen.SubSeed(seed, streamSparks))))
	sparks.SetSeed(fieldgen.SubSeed(seed, streamSparkField))
	sparks.EmissionIntervalMin, sparks.EmissionIntervalMax = 0.02, 0.08
	sparks.ParticlesPerEmissionMin, sparks.ParticlesPerEmissionMax = 4, 12
	sparks.LifeMin, sparks.LifeMax = 0.8, 1.6
	sparks.VelocityComponentMin = mgl32.Vec3{-1, 4, -1}
	sparks.VelocityComponentMax = mgl32.Vec3{1, 7, 1}
	sparks.ColorComponentMin = mgl32.Vec4{1, 0.5, 0.1, 1}
	sparks.ColorComponentMax = mgl32.Vec4{1, 0.9, 0.3, 1}
	sparks.MasterScaleMin, sparks.MasterScaleMax = 2, 5
	sparks.SetDrag(0.2)
	sparks.EffectorMasks = []uint8{MaskGravity | MaskWind}
	ps.AddEmitter(sparks)

	debrisField := fieldgen.NewBodiesGenerator(
		fieldgen.NewDiscGenerator(mgl32.Vec3{0, 4, 0}, mgl32.Vec3{0, 1, 0}, 3), 0.5, 1.5)
	debris := particles.NewBodiesEmitter(debrisField, rand.New(rand.NewSource(fieldgen.SubSeed(seed, streamDebris))))
	debris.SetSeed(fieldgen.SubSeed(seed, streamDebrisField))
	debris.EmissionDelay = 1
	debris.SetEmissionInterval(1.5)
	debris.ParticlesPerEmissionMin, debris.ParticlesPerEmissionMax = 3, 8
	debris.SetLife(3)
	debris.SetMasterScale(6)
	debris.AngularVelocityMin = mgl32.Vec3{-3, -3, -3}
	debris.AngularVelocityMax = mgl32.Vec3{3, 3, 3}
	debris.SetColor(mgl32.Vec4{0.6, 0.6, 0.65, 1})
	debris.MassMin, debris.MassMax = 1, 4
	debris.EffectorMasks = []uint8{MaskGravity}
	debris.Reset()
	ps.AddEmitter(debris)

	s.AddParticleSystem(ps)

	return &Demo{
		Scene:    s,
		Target:   target,
		Creature: creature,
		Tracker:  tracker,
		Sparks:   sparks,
		Debris:   debris,
	}, nil
}

func creatureJoints() []skeleton.JointInfo {
	lean := mgl32.QuatRotate(-0.3, mgl32.Vec3{1, 0, 0})
	return []skeleton.JointInfo{
		{Name: "body", Index: JointBody, ParentIndex: -1,
			BindPoseLocation: skeleton.JointLocation{Position: mgl32.Vec3{0, 1, 0}, Orientation: mgl32.QuatIdent()}},
		{Name: "neck", Index: JointNeck, ParentIndex: JointBody,
			BindPoseLocation: skeleton.JointLocation{Position: mgl32.Vec3{0, 0.8, 0}, Orientation: lean}},
		{Name: "head", Index: JointHead, ParentIndex: JointNeck,
			BindPoseLocation: skeleton.JointLocation{Position: mgl32.Vec3{0, 0.5, 0}, Orientation: mgl32.QuatIdent()}},
	}
}

// orbit moves an object around center in the XZ plane
func orbit(center mgl32.Vec3, radius, speed float32) Mover {
	return func(o *Object, t, dt float32) {
		a := float64(t * speed)
		o.Pos = center.Add(mgl32.Vec3{
			radius * float32(math.Cos(a)),
			float32(math.Sin(a*2)) * 0.5,
			radius * float32(math.Sin(a)),
		})
	}
}
