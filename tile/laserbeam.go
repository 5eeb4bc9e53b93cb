package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// LaserBeam wraps another tile, adding the beam's on/off behavior on top
// of whatever T already does. Beams can nest: T may itself be a LaserBeam
// from a different source crossing the same cell, in which case leaves
// and enters propagate through both layers in wrap order.
type LaserBeam struct {
	wrapped Tile
	state   *BeamState
	index   int // this cell's distance from its source, 0 at the first cell after it
}

// NewLaserBeam wraps tile in a beam cell at the given distance from its
// source, sharing state with every other cell of the same beam.
func NewLaserBeam(wrapped Tile, state *BeamState, index int) *LaserBeam {
	return &LaserBeam{wrapped: wrapped, state: state, index: index}
}

func (b *LaserBeam) PreEnter(a *agent.Agent) error {
	if err := b.wrapped.PreEnter(a); err != nil {
		return err
	}
	if a.Alive() && a.ID() == b.state.Color {
		b.state.Block(b.index)
	}
	return nil
}

func (b *LaserBeam) Enter(a *agent.Agent) *event.Event {
	if b.state.On(b.index) && a.ID() != b.state.Color && a.Alive() {
		a.Die()
		b.state.Unblock()
		return &event.Event{Kind: event.AgentDied, AgentID: a.ID()}
	}
	return b.wrapped.Enter(a)
}

func (b *LaserBeam) Leave() agent.ID {
	b.state.Unblock()
	return b.wrapped.Leave()
}

func (b *LaserBeam) Occupant() (agent.ID, bool) { return b.wrapped.Occupant() }

func (b *LaserBeam) Walkable() bool { return b.wrapped.Walkable() }

func (b *LaserBeam) Reset() {
	b.state.Reset()
	b.wrapped.Reset()
}

func (b *LaserBeam) Kind() Kind { return KindLaserBeam }

// LaserID returns the identity of the beam this cell belongs to.
func (b *LaserBeam) LaserID() LaserID { return b.state.LaserID }

// Color returns the agent this beam cell is tagged for.
func (b *LaserBeam) Color() agent.ID { return b.state.Color }

// On reports whether this specific cell currently carries a live beam.
func (b *LaserBeam) On() bool { return b.state.On(b.index) }

// Index returns this cell's distance from its source.
func (b *LaserBeam) Index() int { return b.index }

// Wrapped returns the tile this beam cell sits on top of, for renderer
// views and for unwrapping nested beams.
func (b *LaserBeam) Wrapped() Tile { return b.wrapped }
