package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
	"github.com/samuelfneumann/lle/grid"
)

// LaserSource occupies its own cell like a Wall: nothing ever stands on
// it, its beam starts on the adjacent cell in Dir. It owns the BeamState
// shared with every LaserBeam cell of its beam, and is the only thing
// that ever flips Enabled.
type LaserSource struct {
	id    LaserID
	dir   grid.Direction
	state *BeamState
}

// NewLaserSource returns a source firing in dir, tagged for agent color,
// owning a freshly enabled beam state.
func NewLaserSource(id LaserID, dir grid.Direction, color agent.ID) *LaserSource {
	return &LaserSource{id: id, dir: dir, state: NewBeamState(id, color)}
}

func (s *LaserSource) PreEnter(a *agent.Agent) error { return ErrNotWalkable }

func (s *LaserSource) Enter(a *agent.Agent) *event.Event {
	panic("tile: LaserSource.Enter called on non-walkable tile")
}

func (s *LaserSource) Leave() agent.ID {
	panic("tile: LaserSource.Leave called on non-walkable tile")
}

func (s *LaserSource) Occupant() (agent.ID, bool) { return 0, false }

func (s *LaserSource) Walkable() bool { return false }

// Reset clears the beam's per-episode block but leaves Enabled and Color
// exactly as runtime calls last set them: neither is episode state.
func (s *LaserSource) Reset() { s.state.Reset() }

func (s *LaserSource) Kind() Kind { return KindLaserSource }

// LaserID returns the identity shared by this source and its beam cells.
func (s *LaserSource) LaserID() LaserID { return s.id }

// Direction returns the firing orientation.
func (s *LaserSource) Direction() grid.Direction { return s.dir }

// Color returns the agent this beam is tagged for.
func (s *LaserSource) Color() agent.ID { return s.state.Color }

// Enabled reports whether this source currently fires at all.
func (s *LaserSource) Enabled() bool { return s.state.Enabled }

// Enable turns the beam on persistently, across every cell at once, since
// all cells share this one BeamState.
func (s *LaserSource) Enable() { s.state.Enabled = true }

// Disable turns the beam off persistently, across every cell at once.
func (s *LaserSource) Disable() { s.state.Enabled = false }

// SetColor retags this beam for a different agent. Callers
// (World.SetSourceColor) are responsible for validating the new color against the
// ErrInvalidLaserRecoloring rule before calling this.
func (s *LaserSource) SetColor(newColor agent.ID) { s.state.Color = newColor }

// State returns the beam state shared with this source's LaserBeam
// cells, for the Builder to hand out when constructing them.
func (s *LaserSource) State() *BeamState { return s.state }
