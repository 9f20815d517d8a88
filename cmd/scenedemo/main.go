package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime"

	"simplescene/internal/config"
	"simplescene/internal/game"
	"simplescene/internal/graphics/renderables/lines"
	"simplescene/internal/graphics/renderables/points"
	renderer "simplescene/internal/graphics/renderer"
	"simplescene/internal/input"
	"simplescene/internal/profiling"
	"simplescene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

const (
	winW = 900
	winH = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := parseSettings(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// also runs on SIGINT, from closer's goroutine
	closer.Bind(func() {
		log.Printf("shutting down, last frame: %s", profiling.TopN(5))
	})
	defer closer.Close()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(winW, winH, "simplescene")
	if err != nil {
		panic(err)
	}

	// Renderables draw in order: lines first so points blend over them
	r, err := renderer.NewRenderer(winW, winH,
		lines.NewLines(),
		points.NewPoints(),
	)
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	fbW, fbH := window.GetFramebufferSize()
	r.UpdateViewport(fbW, fbH)

	demo, err := scene.NewDemoScene(config.GetSeed(), config.GetParticleCapacity())
	if err != nil {
		panic(err)
	}
	log.Printf("scene ready: seed %d, particle capacity %d", config.GetSeed(), config.GetParticleCapacity())

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	game.NewApp(window, im, r, demo).Run()
}
