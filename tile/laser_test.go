package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
	"github.com/samuelfneumann/lle/grid"
)

func newBeamChain(t *testing.T, color agent.ID, n int) (*LaserSource, []*LaserBeam) {
	t.Helper()
	src := NewLaserSource(1, grid.DirEast, color)
	cells := make([]*LaserBeam, n)
	for i := 0; i < n; i++ {
		cells[i] = NewLaserBeam(NewFloor(), src.State(), i)
	}
	return src, cells
}

func TestLaserBeamKillsOtherColor(t *testing.T) {
	_, cells := newBeamChain(t, agent.ID(0), 2)
	victim := agent.New(1)

	ev := cells[0].Enter(victim)
	assert.NotNil(t, ev)
	assert.Equal(t, event.AgentDied, ev.Kind)
	assert.False(t, victim.Alive())
}

func TestLaserBeamSparesOwnColor(t *testing.T) {
	_, cells := newBeamChain(t, agent.ID(0), 2)
	owner := agent.New(0)

	assert.NoError(t, cells[0].PreEnter(owner))
	ev := cells[0].Enter(owner)
	assert.Nil(t, ev)
	assert.True(t, owner.Alive())
}

func TestLaserBeamBlockingShieldsDownstreamCells(t *testing.T) {
	src, cells := newBeamChain(t, agent.ID(0), 3)
	owner := agent.New(0)

	assert.NoError(t, cells[1].PreEnter(owner))
	cells[1].Enter(owner)

	assert.True(t, cells[0].On())
	assert.False(t, cells[1].On())
	assert.False(t, cells[2].On())

	cells[1].Leave()
	assert.True(t, cells[2].On())
	_ = src
}

func TestLaserSourceDisableTurnsOffEveryCell(t *testing.T) {
	src, cells := newBeamChain(t, agent.ID(0), 2)
	src.Disable()
	assert.False(t, cells[0].On())
	assert.False(t, cells[1].On())

	src.Enable()
	assert.True(t, cells[0].On())
}

func TestLaserSourceRecolor(t *testing.T) {
	src, cells := newBeamChain(t, agent.ID(0), 1)
	src.SetColor(agent.ID(5))
	assert.Equal(t, agent.ID(5), src.Color())
	assert.Equal(t, agent.ID(5), cells[0].Color())

	// The old color is no longer spared.
	oldOwner := agent.New(0)
	ev := cells[0].Enter(oldOwner)
	assert.NotNil(t, ev)
	assert.False(t, oldOwner.Alive())
}

func TestLaserBeamResetClearsBlockNotEnabled(t *testing.T) {
	src, cells := newBeamChain(t, agent.ID(0), 1)
	owner := agent.New(0)
	cells[0].PreEnter(owner)
	cells[0].Enter(owner)
	src.Disable()

	cells[0].Reset()
	assert.True(t, cells[0].On() == false) // still disabled
	assert.False(t, src.Enabled())

	src.Enable()
	assert.True(t, cells[0].On()) // the block was cleared by Reset
}

func TestLaserSourceNotWalkable(t *testing.T) {
	src, _ := newBeamChain(t, agent.ID(0), 1)
	assert.ErrorIs(t, src.PreEnter(agent.New(0)), ErrNotWalkable)
	assert.False(t, src.Walkable())
}
