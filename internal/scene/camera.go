package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a focus point at a fixed distance
type Camera struct {
	AspectRatio float32
	FOV         float32 // degrees
	NearPlane   float32
	FarPlane    float32

	Focus    mgl32.Vec3
	Distance float32
	Yaw      float32 // radians around +Y
	Pitch    float32 // radians above the XZ plane
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
		Focus:     mgl32.Vec3{0, 1.5, 0},
		Distance:  10,
		Pitch:     0.35,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height leaves it unchanged
func (c *Camera) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Eye returns the camera position
func (c *Camera) Eye() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	return c.Focus.Add(mgl32.Vec3{
		c.Distance * cp * float32(math.Sin(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * cp * float32(math.Cos(float64(c.Yaw))),
	})
}

// Orbit rotates the camera around the focus, keeping pitch off the poles
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -1.5, 1.5)
}

// Zoom scales the orbit distance, kept within [2, 100]
func (c *Camera) Zoom(factor float32) {
	c.Distance = mgl32.Clamp(c.Distance*factor, 2, 100)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Focus, mgl32.Vec3{0, 1, 0})
}
