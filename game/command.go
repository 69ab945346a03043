package game

import "fmt"

// Command is a discrete player action delivered by an input source.
type Command int

const (
	CommandNone Command = iota
	CommandRotate
	CommandRotateCounterClockwise
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRestart
)

var commandNames = [...]string{
	CommandNone:                   "none",
	CommandRotate:                 "rotate",
	CommandRotateCounterClockwise: "rotateCounterClockwise",
	CommandMoveLeft:               "moveLeft",
	CommandMoveRight:              "moveRight",
	CommandSoftDrop:               "softDrop",
	CommandHardDrop:               "hardDrop",
	CommandRestart:                "restart",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}
