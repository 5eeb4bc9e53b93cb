package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// Wall is never walkable and never occupied. Enter/Leave are only ever
// called by the engine on tiles it believes are walkable; reaching them on
// a Wall is an engine bug, not a caller error, so they panic rather than
// return an error.
type Wall struct{}

// NewWall returns a wall tile.
func NewWall() *Wall { return &Wall{} }

func (w *Wall) PreEnter(a *agent.Agent) error {
	return ErrNotWalkable
}

func (w *Wall) Enter(a *agent.Agent) *event.Event {
	panic("tile: Enter called on a Wall")
}

func (w *Wall) Leave() agent.ID {
	panic("tile: Leave called on a Wall")
}

func (w *Wall) Occupant() (agent.ID, bool) {
	return 0, false
}

func (w *Wall) Walkable() bool { return false }

func (w *Wall) Reset() {}

func (w *Wall) Kind() Kind { return KindWall }
