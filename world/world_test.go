package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/grid"
	v1 "github.com/samuelfneumann/lle/worldmap/v1"
)

func build(t *testing.T, text string, seed uint64) *World {
	t.Helper()
	d, err := v1.Parse(text)
	require.NoError(t, err)
	w, err := Build(d, seed)
	require.NoError(t, err)
	return w
}

func TestResetPlacesAgentAtItsOnlyStart(t *testing.T) {
	w := build(t, "S0 . X", 1)
	w.Reset()
	assert.Equal(t, []grid.Position{{I: 0, J: 0}}, w.AgentsPositions())
	assert.True(t, w.NAgentsArrived() == 0)
}

func TestResetIsDeterministicForAFixedSeed(t *testing.T) {
	// v1 text allows one start per agent, so each agent's second
	// permissible start is added to the descriptor directly.
	d, err := v1.Parse(`
		S0 . . X
		S1 . . X
	`)
	require.NoError(t, err)
	d.RandomStarts[0] = append(d.RandomStarts[0], grid.Position{I: 0, J: 1})
	d.RandomStarts[1] = append(d.RandomStarts[1], grid.Position{I: 1, J: 1})

	w1, err := Build(d, 42)
	require.NoError(t, err)
	w1.Reset()
	p1 := w1.AgentsPositions()

	w2, err := Build(d, 42)
	require.NoError(t, err)
	w2.Reset()
	p2 := w2.AgentsPositions()

	assert.Equal(t, p1, p2)
}

func TestStepRejectsWrongActionCount(t *testing.T) {
	w := build(t, "S0 . X", 0)
	w.Reset()
	_, err := w.Step(nil)
	assert.Error(t, err)
	var target *ErrInvalidNumberOfActions
	assert.ErrorAs(t, err, &target)
}

func TestStepRejectsUnavailableAction(t *testing.T) {
	w := build(t, "S0 @ X", 0)
	w.Reset()
	_, err := w.Step([]grid.Action{grid.East})
	assert.Error(t, err)
	var target *ErrInvalidAction
	assert.ErrorAs(t, err, &target)
}

func TestStepMovesAndGemCollection(t *testing.T) {
	w := build(t, "S0 G X", 0)
	w.Reset()

	events, err := w.Step([]grid.Action{grid.East})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, agent.ID(0), events[0].AgentID)
	assert.Equal(t, 1, w.NGemsCollected())

	events, err = w.Step([]grid.Action{grid.East})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, w.AgentsPositions()[0] == grid.Position{I: 0, J: 2})
}

func TestStepVertexConflictRevertsBothAgents(t *testing.T) {
	w := build(t, `
		S0 . S1
		X  . X
	`, 0)
	w.Reset()

	before := w.AgentsPositions()
	events, err := w.Step([]grid.Action{grid.East, grid.West})
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, before, w.AgentsPositions())
}

func TestAvailableJointActionsIsCartesianProduct(t *testing.T) {
	w := build(t, `
		S0 . S1
		X  . X
	`, 0)
	w.Reset()

	joint := w.AvailableJointActions()
	n0 := len(w.AvailableActions()[0])
	n1 := len(w.AvailableActions()[1])
	assert.Len(t, joint, n0*n1)
}

func TestSetStateRoundTrip(t *testing.T) {
	w := build(t, "S0 G X", 0)
	w.Reset()
	w.Step([]grid.Action{grid.East})

	snap := w.GetState()
	w.Reset()
	events, err := w.SetState(snap)
	require.NoError(t, err)
	_ = events
	assert.True(t, snap.Equal(w.GetState()))
}

func TestSetStateRejectsWrongLengths(t *testing.T) {
	w := build(t, "S0 . X", 0)
	w.Reset()
	_, err := w.SetState(Snapshot{})
	assert.Error(t, err)
}

func TestSetStateRollsBackOnInvalidPosition(t *testing.T) {
	w := build(t, "S0 @ X", 0)
	w.Reset()
	before := w.GetState()

	bad := Snapshot{
		AgentPositions: []grid.Position{{I: 0, J: 1}}, // a wall
		GemsCollected:  []bool{},
		AgentsAlive:    []bool{true},
	}
	_, err := w.SetState(bad)
	assert.Error(t, err)
	var target *ErrInvalidAgentPosition
	assert.ErrorAs(t, err, &target)
	assert.True(t, before.Equal(w.GetState()))
}

func TestCloneProducesIndependentWorld(t *testing.T) {
	w := build(t, "S0 G X", 0)
	w.Reset()
	w.Step([]grid.Action{grid.East})

	clone, err := w.Clone()
	require.NoError(t, err)
	assert.True(t, w.GetState().Equal(clone.GetState()))

	clone.Step([]grid.Action{grid.East})
	assert.NotEqual(t, w.AgentsPositions(), clone.AgentsPositions())
}

func TestBuilderRejectsAgentWithoutStart(t *testing.T) {
	d, err := v1.Parse("S0 . X")
	require.NoError(t, err)
	d.RandomStarts = append(d.RandomStarts, nil) // agent 1 has no start
	_, err = Build(d, 0)
	assert.Error(t, err)
}

func TestBuilderRejectsDuplicateLaserID(t *testing.T) {
	d, err := v1.Parse("S0 L0E X")
	require.NoError(t, err)
	d.Sources = append(d.Sources, d.Sources[0])
	_, err = Build(d, 0)
	assert.Error(t, err)
}

func TestSetSourceColorRejectsCrossingAnotherAgentsStart(t *testing.T) {
	w := build(t, `
		L0E S1 X
		S0  .  X
	`, 0)
	err := w.SetSourceColor(grid.Position{I: 0, J: 0}, agent.ID(0))
	assert.Error(t, err)
	var target *ErrInvalidLaserRecoloring
	assert.ErrorAs(t, err, &target)
}
