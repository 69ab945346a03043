package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

var botCommands = []game.Command{
	game.CommandMoveLeft,
	game.CommandMoveRight,
	game.CommandRotate,
	game.CommandRotateCounterClockwise,
	game.CommandSoftDrop,
	game.CommandHardDrop,
}

// BotSystem queues a random command on a fraction of frames.
type BotSystem struct {
	Rng  *rand.Rand
	Rate float64
}

func (s *BotSystem) Execute(frame *engine.UpdateFrame) {
	if s.Rng.Float64() >= s.Rate {
		return
	}
	frame.Commands.Push(botCommands[s.Rng.IntN(len(botCommands))])
}

// RestartSystem restarts finished games and records their scores.
type RestartSystem struct {
	Scores []int
}

func (s *RestartSystem) Execute(frame *engine.UpdateFrame) {
	if frame.Session.State() != game.StateGameOver {
		return
	}
	s.Scores = append(s.Scores, frame.Session.Score())
	frame.Commands.Push(game.CommandRestart)
}
