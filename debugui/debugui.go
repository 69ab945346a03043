// Package debugui provides Dear ImGui windows for inspecting a running session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// Item holds a Dear ImGui render function drawn every frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System records the input capture state and defers every item's render
// function to the end of the frame.
type System struct {
	Items      []Item
	InputState InputState
}

func (s *System) Execute(frame *engine.UpdateFrame) {
	io := imgui.CurrentIO()
	s.InputState.WantCaptureMouse = io.WantCaptureMouse()
	s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

// CapturingKeyboard reports whether the last frame's UI wanted the keyboard.
func (s *System) CapturingKeyboard() bool {
	return s.InputState.WantCaptureKeyboard
}
