// Package event defines the discrete occurrences tiles and the world
// engine emit while agents move. It is a leaf package (depends only on
// agent) so that both tile and world can produce and consume events
// without an import cycle.
package event

import "github.com/samuelfneumann/lle/agent"

// Kind discriminates the three observable occurrences the engine can
// emit during a step or SetState call.
type Kind int

const (
	// GemCollected fires the first time any agent enters an uncollected gem.
	GemCollected Kind = iota
	// AgentDied fires when an alive agent enters a void, or an other-colored
	// live laser beam cell.
	AgentDied
	// AgentExit fires the first time an agent enters an exit tile in an
	// episode.
	AgentExit
)

func (k Kind) String() string {
	switch k {
	case GemCollected:
		return "GemCollected"
	case AgentDied:
		return "AgentDied"
	case AgentExit:
		return "AgentExit"
	default:
		return "UnknownEvent"
	}
}

// Event is a single discrete occurrence produced by a step or SetState
// call, in emission order.
type Event struct {
	Kind    Kind
	AgentID agent.ID
}
