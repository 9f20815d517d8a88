package renderer

import (
	"fmt"
	"log"

	"simplescene/internal/profiling"
	"simplescene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *scene.Camera
}

// NewRenderer initializes every renderable. The GL context must be current.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		renderables: rs,
		camera:      scene.NewCamera(width, height),
	}

	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// release what was already set up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, rr, err)
		}
	}
	log.Printf("renderer ready: %d renderables", len(rs))
	return r, nil
}

// Render clears the frame and draws every renderable
func (r *Renderer) Render(s *scene.Scene, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.08, 0.09, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Scene:  s,
		DT:     dt,
		View:   r.camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *scene.Camera {
	return r.camera
}

// UpdateViewport updates the GL viewport and camera aspect ratio
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
}
