package engine

// GravitySystem advances the session's drop timer by the frame's delta time.
type GravitySystem struct {
	Steps int
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	if frame.Session.Tick(frame.DeltaTime) {
		s.Steps++
	}
}
