package engine

import "github.com/plus3/blockfall/game"

// Commands buffers player commands and deferred functions for the end of a
// frame. The session is only changed by Flush, after every system has run.
type Commands struct {
	queued []game.Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues cmd. Commands apply in the order they were pushed.
func (c *Commands) Push(cmd game.Command) {
	c.queued = append(c.queued, cmd)
}

// Defer queues fn to run after the queued commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queued)
}

// Flush applies queued commands to session, runs deferred functions and resets
// the buffer. It returns how many commands changed the session.
func (c *Commands) Flush(session *game.Session) int {
	applied := 0
	for _, cmd := range c.queued {
		if session.Apply(cmd) {
			applied++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.queued = c.queued[:0]
	c.defers = c.defers[:0]
	return applied
}
