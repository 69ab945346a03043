package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

// KeySource reports keyboard state for the current tick.
type KeySource interface {
	JustPressed(key ebiten.Key) bool
	Pressed(key ebiten.Key) bool
}

// EbitenKeys reads the keyboard through ebiten.
type EbitenKeys struct{}

func (EbitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (EbitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }

// Binding maps keys to a command. Repeating bindings fire again while held.
type Binding struct {
	Keys    []ebiten.Key
	Command game.Command
	Repeat  bool
}

// DefaultBindings returns the arrow-key layout with Z/X rotation.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: []ebiten.Key{ebiten.KeyArrowLeft}, Command: game.CommandMoveLeft, Repeat: true},
		{Keys: []ebiten.Key{ebiten.KeyArrowRight}, Command: game.CommandMoveRight, Repeat: true},
		{Keys: []ebiten.Key{ebiten.KeyArrowDown}, Command: game.CommandSoftDrop, Repeat: true},
		{Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}, Command: game.CommandRotate},
		{Keys: []ebiten.Key{ebiten.KeyZ}, Command: game.CommandRotateCounterClockwise},
		{Keys: []ebiten.Key{ebiten.KeySpace}, Command: game.CommandHardDrop},
		{Keys: []ebiten.Key{ebiten.KeyR}, Command: game.CommandRestart},
	}
}

// QuitKeys end the program.
var QuitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// InputSystem polls the keyboard once per frame and queues commands.
type InputSystem struct {
	Keys     KeySource
	Bindings []Binding

	// Suspended, when set and true, ignores game bindings for the frame so
	// an overlay can take the keyboard.
	Suspended func() bool

	quit    bool
	repeats []*engine.KeyRepeat
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{
		Keys:     keys,
		Bindings: DefaultBindings(),
	}
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	if len(s.repeats) != len(s.Bindings) {
		s.repeats = make([]*engine.KeyRepeat, len(s.Bindings))
		for i := range s.repeats {
			s.repeats[i] = engine.NewKeyRepeat()
		}
	}

	for _, key := range QuitKeys {
		if s.Keys.JustPressed(key) {
			s.quit = true
		}
	}

	if s.Suspended != nil && s.Suspended() {
		for _, r := range s.repeats {
			r.Reset()
		}
		return
	}

	for i, b := range s.Bindings {
		pressed, down := s.state(b.Keys)
		if b.Repeat {
			if s.repeats[i].Update(pressed, down, frame.DeltaTime) {
				frame.Commands.Push(b.Command)
			}
			continue
		}
		if pressed {
			frame.Commands.Push(b.Command)
		}
	}
}

func (s *InputSystem) state(keys []ebiten.Key) (pressed, down bool) {
	for _, key := range keys {
		pressed = pressed || s.Keys.JustPressed(key)
		down = down || s.Keys.Pressed(key)
	}
	return pressed, down
}

// Quit reports whether a quit key has been pressed.
func (s *InputSystem) Quit() bool {
	return s.quit
}

// tickDuration is the fixed step ebiten calls Update with.
func tickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}
