package game

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// minWindowSize keeps the aspect ratio and viewport well defined
const minWindowSize = 160

// SetupWindow creates a GL 4.1 core window, makes its context current and
// sets the render state shared by the particle and line renderers
func SetupWindow(width, height int, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	window.SetSizeLimits(minWindowSize, minWindowSize, glfw.DontCare, glfw.DontCare)

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init GL: %w", err)
	}

	// Disable V-Sync; the FPS limiter paces frames
	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	configureRenderState()
	log.Printf("window %dx%d, GL %s", width, height, gl.GoStr(gl.GetString(gl.VERSION)))
	return window, nil
}

// configureRenderState enables depth testing, shader-sized points and alpha
// blending for the particle sprites
func configureRenderState() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}
