package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

func TestFloorOccupancy(t *testing.T) {
	f := NewFloor()
	a := agent.New(0)

	assert.NoError(t, f.PreEnter(a))
	assert.Nil(t, f.Enter(a))

	id, ok := f.Occupant()
	assert.True(t, ok)
	assert.Equal(t, agent.ID(0), id)

	left := f.Leave()
	assert.Equal(t, agent.ID(0), left)
	_, ok = f.Occupant()
	assert.False(t, ok)
}

func TestWallRejectsEntry(t *testing.T) {
	w := NewWall()
	assert.ErrorIs(t, w.PreEnter(agent.New(0)), ErrNotWalkable)
	assert.False(t, w.Walkable())
}

func TestGemCollectedOnce(t *testing.T) {
	g := NewGem()
	a0 := agent.New(0)
	a1 := agent.New(1)

	ev := g.Enter(a0)
	assert.NotNil(t, ev)
	assert.Equal(t, event.GemCollected, ev.Kind)
	assert.True(t, g.Collected())

	g.Leave()
	ev = g.Enter(a1)
	assert.Nil(t, ev)
}

func TestGemCollectWithoutEvent(t *testing.T) {
	g := NewGem()
	g.Collect()
	assert.True(t, g.Collected())
	assert.Nil(t, g.Enter(agent.New(0)))
}

func TestGemReset(t *testing.T) {
	g := NewGem()
	g.Enter(agent.New(0))
	g.Reset()
	assert.False(t, g.Collected())
}

func TestVoidKillsAliveAgent(t *testing.T) {
	v := NewVoid()
	a := agent.New(0)

	ev := v.Enter(a)
	assert.NotNil(t, ev)
	assert.Equal(t, event.AgentDied, ev.Kind)
	assert.False(t, a.Alive())

	// A second entry by an already-dead agent is silent.
	v.Leave()
	ev = v.Enter(a)
	assert.Nil(t, ev)
}

func TestExitArrivesOnce(t *testing.T) {
	x := NewExit()
	a := agent.New(0)

	ev := x.Enter(a)
	assert.NotNil(t, ev)
	assert.Equal(t, event.AgentExit, ev.Kind)
	assert.True(t, a.Arrived())

	x.Leave()
	ev = x.Enter(a)
	assert.Nil(t, ev)
}

func TestStartHomeAgent(t *testing.T) {
	s := NewStart(agent.ID(2))
	assert.Equal(t, agent.ID(2), s.HomeAgent())
	assert.True(t, s.Walkable())
}
