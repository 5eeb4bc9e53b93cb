package world

import "github.com/samuelfneumann/lle/grid"

// Snapshot is the minimal tuple of mutable state that, together with
// the immutable map, fully determines a World. Two snapshots are equal
// iff all three fields are element-wise equal.
type Snapshot struct {
	AgentPositions []grid.Position
	GemsCollected  []bool
	AgentsAlive    []bool
}

// Equal reports whether s and other hold identical positions, gem
// flags, and alive flags, in the same order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.AgentPositions) != len(other.AgentPositions) ||
		len(s.GemsCollected) != len(other.GemsCollected) ||
		len(s.AgentsAlive) != len(other.AgentsAlive) {
		return false
	}
	for i := range s.AgentPositions {
		if s.AgentPositions[i] != other.AgentPositions[i] {
			return false
		}
	}
	for i := range s.GemsCollected {
		if s.GemsCollected[i] != other.GemsCollected[i] {
			return false
		}
	}
	for i := range s.AgentsAlive {
		if s.AgentsAlive[i] != other.AgentsAlive[i] {
			return false
		}
	}
	return true
}
