// Package tile implements the polymorphic per-cell behavior of the grid:
// floors, walls, gems, voids, start tiles, exits, laser sources, and the
// laser beam cells that wrap another tile.
//
// Tiles are a closed set of concrete types satisfying the Tile interface.
// The interface exists so that LaserBeam can delegate to whatever tile it
// wraps without a type switch; it is not an extension point for new tile
// kinds from outside this package.
package tile

import (
	"fmt"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// ErrNotWalkable is returned by PreEnter on a tile an agent can never
// stand on. It never escapes the world package: the engine only calls
// PreEnter on tiles it already knows are walkable (from AvailableActions)
// or is prepared to treat as a structural failure (SetState).
var ErrNotWalkable = fmt.Errorf("tile not walkable")

// Kind tags a tile's concrete type for the renderer's read-only view.
type Kind int

const (
	KindFloor Kind = iota
	KindWall
	KindGem
	KindVoid
	KindStart
	KindExit
	KindLaserSource
	KindLaserBeam
)

// Tile is the capability set every concrete tile implements.
type Tile interface {
	// PreEnter checks whether agent may move onto this tile, applying any
	// side effect that must happen before the move actually happens (a
	// beam cell turning itself off for its own color). It never mutates
	// occupancy.
	PreEnter(a *agent.Agent) error

	// Enter moves agent onto this tile, mutating occupancy and returning
	// an event if one was triggered.
	Enter(a *agent.Agent) *event.Event

	// Leave clears this tile's occupant and returns its ID. Calling Leave
	// on an unoccupied tile is a bug in the engine, not a caller error.
	Leave() agent.ID

	// Occupant returns the agent currently on this tile, if any.
	Occupant() (agent.ID, bool)

	// Walkable reports whether any agent may ever stand on this tile.
	Walkable() bool

	// Reset clears all mutable per-episode state.
	Reset()

	// Kind tags the concrete type for rendering.
	Kind() Kind
}
