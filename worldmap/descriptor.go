// Package worldmap holds the language-neutral construction descriptor a
// parser (worldmap/v1, worldmap/v2, or worldmap/levels) hands to
// world.Builder, plus the parse-time error taxonomy every parser raises.
package worldmap

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/grid"
)

// SourceSpec describes one laser source's placement and wiring.
type SourceSpec struct {
	Position grid.Position
	Dir      grid.Direction
	Color    agent.ID
	LaserID  int
}

// Descriptor is the value object produced by a parser and consumed by
// world.Builder. It enumerates every positioned feature of a map;
// nothing here executes the engine's own validation a second time
// beyond what the builder re-asserts defensively.
type Descriptor struct {
	Width, Height int

	// Gems lists every gem position.
	Gems []grid.Position

	// RandomStarts holds, per agent (index = agent.ID), that agent's
	// permissible start positions.
	RandomStarts [][]grid.Position

	Voids   []grid.Position
	Exits   []grid.Position
	Walls   []grid.Position
	Sources []SourceSpec
}

// NAgents returns the agent count implied by the start-position table.
func (d *Descriptor) NAgents() int { return len(d.RandomStarts) }
