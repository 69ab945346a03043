package engine

import "time"

const (
	DefaultRepeatDelay = 200 * time.Millisecond
	DefaultRepeatRate  = 50 * time.Millisecond
)

// KeyRepeat turns a held key into repeated presses: one on the initial press,
// another once Delay has elapsed, then one every Rate. It fires at most once
// per Update.
type KeyRepeat struct {
	Delay time.Duration
	Rate  time.Duration

	held time.Duration
	next time.Duration
}

// NewKeyRepeat returns a KeyRepeat with the default delay and rate.
func NewKeyRepeat() *KeyRepeat {
	return &KeyRepeat{Delay: DefaultRepeatDelay, Rate: DefaultRepeatRate}
}

// Update feeds one frame of key state and reports whether the key fires.
// pressed is true on the frame the key went down, down while it stays held.
func (r *KeyRepeat) Update(pressed, down bool, dt time.Duration) bool {
	switch {
	case pressed:
		r.held = 0
		r.next = r.Delay
		return true
	case down:
		r.held += dt
		if r.held < r.next {
			return false
		}
		r.next += r.Rate
		if r.next <= r.held {
			r.next = r.held + r.Rate
		}
		return true
	default:
		r.held = 0
		return false
	}
}

// Reset forgets any held state.
func (r *KeyRepeat) Reset() {
	r.held = 0
	r.next = 0
}
