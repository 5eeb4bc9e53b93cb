package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentLifecycle(t *testing.T) {
	a := New(3)
	assert.Equal(t, ID(3), a.ID())
	assert.True(t, a.Alive())
	assert.False(t, a.Arrived())

	a.Arrive()
	assert.True(t, a.Arrived())

	a.Die()
	assert.False(t, a.Alive())

	// Killing a dead agent or re-arriving an arrived one is a no-op.
	a.Die()
	a.Arrive()
	assert.False(t, a.Alive())
	assert.True(t, a.Arrived())
}

func TestAgentReset(t *testing.T) {
	a := New(0)
	a.Die()
	a.Arrive()

	a.Reset()
	assert.True(t, a.Alive())
	assert.False(t, a.Arrived())
}
