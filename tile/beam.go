package tile

import "github.com/samuelfneumann/lle/agent"

// LaserID stably identifies one laser source and every cell of its beam.
type LaserID int

// BeamState is the single record shared by a laser source and every cell
// of its beam. Exactly one agent ID can ever block a given beam, since a
// beam's color names a single agent;
// there is never a need for a list of blockers, only whether that one
// agent currently stands somewhere on the beam and, if so, at which
// index.
//
// A cell at beam-index k is on iff the source is Enabled and the
// blocking agent, if any, stands at an index > k (cells upstream of the
// block remain on; the blocked cell itself, and everything downstream of
// it, are off).
type BeamState struct {
	LaserID LaserID
	Color   agent.ID
	Enabled bool

	blocked    bool
	blockIndex int
}

// NewBeamState returns a beam state for a freshly built source: enabled,
// unblocked.
func NewBeamState(id LaserID, color agent.ID) *BeamState {
	return &BeamState{LaserID: id, Color: color, Enabled: true}
}

// On reports whether the cell at the given beam-index currently carries a
// live beam.
func (b *BeamState) On(index int) bool {
	if !b.Enabled {
		return false
	}
	if b.blocked && b.blockIndex <= index {
		return false
	}
	return true
}

// Block records that the color agent now stands at beam-index, turning
// off that cell and every cell downstream of it.
func (b *BeamState) Block(index int) {
	b.blocked = true
	b.blockIndex = index
}

// Unblock clears any recorded block. Safe to call even when not blocked.
func (b *BeamState) Unblock() {
	b.blocked = false
}

// Reset restores per-episode transient state (the block), leaving the
// persistent Enabled flag untouched: disabling a source is a runtime API
// call, not something Reset should undo.
func (b *BeamState) Reset() {
	b.blocked = false
}
