package term

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

// Poll forwards screen events to events until ctx is done or the screen is
// finalised.
func Poll(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// InputSystem drains pending terminal events at the start of a frame and
// queues the commands they map to.
type InputSystem struct {
	Events <-chan tcell.Event
	Quit   func()
	Resize func()
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	for {
		select {
		case ev := <-s.Events:
			s.handle(frame, ev)
		default:
			return
		}
	}
}

func (s *InputSystem) handle(frame *engine.UpdateFrame, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, quit := Translate(ev)
		if quit {
			if s.Quit != nil {
				frame.Commands.Defer(s.Quit)
			}
			return
		}
		if cmd != game.CommandNone {
			frame.Commands.Push(cmd)
		}
	case *tcell.EventResize:
		if s.Resize != nil {
			frame.Commands.Defer(s.Resize)
		}
	}
}

// RenderSystem redraws the screen once the frame's commands have applied.
type RenderSystem struct {
	Renderer *Renderer
	Frames   int
}

func (s *RenderSystem) Execute(frame *engine.UpdateFrame) {
	session := frame.Session
	frame.Commands.Defer(func() {
		s.Renderer.Draw(session)
		s.Frames++
	})
}
