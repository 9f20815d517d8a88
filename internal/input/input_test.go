package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdgesAndHold(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(ActionPause) || !im.IsActive(ActionPause) {
		t.Fatal("expected pause to be pressed and held")
	}

	im.PostUpdate()
	if im.JustPressed(ActionPause) {
		t.Error("JustPressed should clear after PostUpdate")
	}
	if !im.IsActive(ActionPause) {
		t.Error("held key should stay active")
	}

	// repeat while held is not a new press
	im.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	if im.JustPressed(ActionPause) {
		t.Error("repeat should not retrigger JustPressed")
	}

	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	if !im.JustReleased(ActionPause) || im.IsActive(ActionPause) {
		t.Error("expected release edge")
	}
}

func TestAlternateBindings(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	if !im.IsActive(ActionOrbitLeft) {
		t.Error("arrow key should map to orbit left")
	}

	im.UnbindKey(glfw.KeyB)
	im.HandleKeyEvent(glfw.KeyB, glfw.Press)
	if im.JustPressed(ActionBurst) {
		t.Error("unbound key should be ignored")
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyZ, ActionCount)
	if im.IsActive(ActionCount) || im.JustPressed(-1) {
		t.Error("out of range actions are never active")
	}
}
