package game

import (
	"log"
	"time"

	"simplescene/internal/config"
	"simplescene/internal/graphics/renderer"
	"simplescene/internal/input"
	"simplescene/internal/profiling"
	"simplescene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	orbitSpeed = 1.5 // radians per second
	zoomSpeed  = 1.8 // distance factor per second
	maxStep    = 0.1 // seconds; longer frames are clamped
)

// App drives the demo: input, simulation, rendering and frame pacing
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	demo         *scene.Demo

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *input.InputManager, r *renderer.Renderer, demo *scene.Demo) *App {
	a := &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		demo:         demo,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
		a.RefreshRender()
	})
	return a
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick
	if dt > maxStep {
		dt = maxStep
	}

	glfw.PollEvents()

	a.handleInput(float32(dt))
	a.demo.Update(float32(dt))
	a.renderer.Render(a.demo.Scene, dt)

	a.window.SwapBuffers()

	processingDuration := time.Since(startTick)
	if processingDuration > config.GetSlowFrameThreshold() {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(a.demo.Paused())
}

func (a *App) handleInput(dt float32) {
	im := a.inputManager

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionPause) {
		a.demo.SetPaused(!a.demo.Paused())
		log.Printf("paused: %v", a.demo.Paused())
	}
	if im.JustPressed(input.ActionReset) {
		a.demo.Reset()
	}
	if im.JustPressed(input.ActionBurst) {
		a.demo.Burst()
	}
	if im.JustPressed(input.ActionToggleSkeleton) {
		config.SetSkeletonDebugDraw(!config.GetSkeletonDebugDraw())
	}
	if im.JustPressed(input.ActionCycleFPSLimit) {
		config.SetFPSLimit(nextFPSLimit(config.GetFPSLimit()))
		log.Printf("fps limit: %d", config.GetFPSLimit())
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		// this frame has tracked nothing yet
		log.Printf("frame profile: %s", profiling.LastFrameTopN(8))
	}

	cam := a.renderer.GetCamera()
	var dYaw, dPitch float32
	if im.IsActive(input.ActionOrbitLeft) {
		dYaw -= orbitSpeed * dt
	}
	if im.IsActive(input.ActionOrbitRight) {
		dYaw += orbitSpeed * dt
	}
	if im.IsActive(input.ActionOrbitUp) {
		dPitch += orbitSpeed * dt
	}
	if im.IsActive(input.ActionOrbitDown) {
		dPitch -= orbitSpeed * dt
	}
	if dYaw != 0 || dPitch != 0 {
		cam.Orbit(dYaw, dPitch)
	}
	if im.IsActive(input.ActionZoomIn) {
		cam.Zoom(1 / (1 + zoomSpeed*dt))
	}
	if im.IsActive(input.ActionZoomOut) {
		cam.Zoom(1 + zoomSpeed*dt)
	}
}

// RefreshRender redraws without advancing the simulation (window resize repaints)
func (a *App) RefreshRender() {
	a.renderer.Render(a.demo.Scene, 0)
	a.window.SwapBuffers()
}
