package engine

import (
	"time"

	"github.com/plus3/blockfall/game"
)

type UpdateFrame struct {
	DeltaTime time.Duration
	Commands  *Commands
	Session   *game.Session
}

func newUpdateFrame(dt time.Duration, session *game.Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
	}
}
