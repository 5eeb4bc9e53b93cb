package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// Gem is walkable. The first agent to enter it while uncollected collects
// it and emits GemCollected; every later entry (by any agent) is silent.
type Gem struct {
	floor     Floor
	collected bool
}

// NewGem returns an uncollected gem tile.
func NewGem() *Gem { return &Gem{} }

func (g *Gem) PreEnter(a *agent.Agent) error {
	return g.floor.PreEnter(a)
}

func (g *Gem) Enter(a *agent.Agent) *event.Event {
	g.floor.Enter(a)
	if !g.collected {
		g.collected = true
		return &event.Event{Kind: event.GemCollected, AgentID: a.ID()}
	}
	return nil
}

func (g *Gem) Leave() agent.ID { return g.floor.Leave() }

func (g *Gem) Occupant() (agent.ID, bool) { return g.floor.Occupant() }

func (g *Gem) Walkable() bool { return true }

func (g *Gem) Reset() {
	g.collected = false
	g.floor.Reset()
}

func (g *Gem) Kind() Kind { return KindGem }

// Collected reports whether this gem has been collected this episode.
func (g *Gem) Collected() bool { return g.collected }

// Collect marks the gem collected without emitting an event, for use by
// World.SetState, which must apply the gems_collected vector before any
// agent enters the tiles at their restored positions.
func (g *Gem) Collect() { g.collected = true }
