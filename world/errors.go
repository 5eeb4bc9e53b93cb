package world

import (
	"fmt"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/grid"
)

// ErrInvalidNumberOfActions is returned by Step when the joint action
// does not have exactly NAgents entries.
type ErrInvalidNumberOfActions struct {
	Given, Expected int
}

func (e *ErrInvalidNumberOfActions) Error() string {
	return fmt.Sprintf("world: %d actions given, expected %d", e.Given, e.Expected)
}

// ErrInvalidAction is returned by Step when an agent's chosen action is
// not currently in its available list.
type ErrInvalidAction struct {
	AgentID   agent.ID
	Available []grid.Action
	Taken     grid.Action
}

func (e *ErrInvalidAction) Error() string {
	return fmt.Sprintf("world: agent %d took unavailable action %s (available: %v)", e.AgentID, e.Taken, e.Available)
}

// ErrInvalidNumberOfAgents is returned by SetState when the positions or
// alive-flags vector has the wrong length.
type ErrInvalidNumberOfAgents struct {
	Given, Expected int
}

func (e *ErrInvalidNumberOfAgents) Error() string {
	return fmt.Sprintf("world: %d agents given, expected %d", e.Given, e.Expected)
}

// ErrInvalidNumberOfGems is returned by SetState when the
// gems-collected vector has the wrong length.
type ErrInvalidNumberOfGems struct {
	Given, Expected int
}

func (e *ErrInvalidNumberOfGems) Error() string {
	return fmt.Sprintf("world: %d gem flags given, expected %d", e.Given, e.Expected)
}

// ErrOutOfWorldPosition is returned when a caller-supplied position
// falls outside the grid.
type ErrOutOfWorldPosition struct {
	Position grid.Position
}

func (e *ErrOutOfWorldPosition) Error() string {
	return fmt.Sprintf("world: position %s is out of bounds", e.Position)
}

// ErrInvalidAgentPosition is raised by SetState when pre-entering an
// agent's target position fails, or two agents would collide there.
// SetState has already rolled back to the pre-call snapshot by the time
// this is returned.
type ErrInvalidAgentPosition struct {
	Position grid.Position
	Reason   string
}

func (e *ErrInvalidAgentPosition) Error() string {
	return fmt.Sprintf("world: invalid agent position %s: %s", e.Position, e.Reason)
}

// ErrInvalidWorldState is raised by SetState for duplicate positions or
// other structural violations of the supplied snapshot.
type ErrInvalidWorldState struct {
	Reason string
}

func (e *ErrInvalidWorldState) Error() string {
	return fmt.Sprintf("world: invalid world state: %s", e.Reason)
}

// ErrInvalidLaserRecoloring is returned by SetSourceColor when the
// requested color would let the beam cross a different agent's start.
type ErrInvalidLaserRecoloring struct {
	Position grid.Position
	Color    agent.ID
}

func (e *ErrInvalidLaserRecoloring) Error() string {
	return fmt.Sprintf("world: recoloring laser at %s to agent %d would cross another agent's start", e.Position, e.Color)
}
