package engine

// System is one step of a frame. Systems run in registration order and may
// keep their own state between frames. They should queue player commands on
// frame.Commands rather than calling the session directly, so that input never
// interleaves with gravity.
type System interface {
	Execute(frame *UpdateFrame)
}
