package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/lle/grid"
	"github.com/samuelfneumann/lle/worldmap"
)

func TestParseSimpleMap(t *testing.T) {
	d, err := Parse(`
		S0 . G
		.  @ X
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Width)
	assert.Equal(t, 2, d.Height)
	assert.Equal(t, []grid.Position{{I: 0, J: 2}}, d.Gems)
	assert.Equal(t, []grid.Position{{I: 1, J: 1}}, d.Walls)
	assert.Equal(t, []grid.Position{{I: 1, J: 2}}, d.Exits)
	require.Len(t, d.RandomStarts, 1)
	assert.Equal(t, []grid.Position{{I: 0, J: 0}}, d.RandomStarts[0])
}

func TestParseLaserSource(t *testing.T) {
	d, err := Parse(`
		S0 . X
		L0E . X
	`)
	require.NoError(t, err)
	require.Len(t, d.Sources, 1)
	assert.Equal(t, grid.DirEast, d.Sources[0].Dir)
	assert.Equal(t, grid.Position{I: 1, J: 0}, d.Sources[0].Position)
}

func TestParseInconsistentWidth(t *testing.T) {
	_, err := Parse("S0 . X\n. .")
	require.Error(t, err)
	var pe *worldmap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, worldmap.InconsistentDimensions, pe.Kind)
}

func TestParseNotEnoughExits(t *testing.T) {
	_, err := Parse("S0 S1 .")
	require.Error(t, err)
	var pe *worldmap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, worldmap.NotEnoughExitTiles, pe.Kind)
}

func TestParseDuplicateStartTile(t *testing.T) {
	_, err := Parse("S0 S0 X")
	require.Error(t, err)
	var pe *worldmap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, worldmap.DuplicateStartTile, pe.Kind)
}

func TestParseNoAgents(t *testing.T) {
	_, err := Parse(". . X")
	require.Error(t, err)
	var pe *worldmap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, worldmap.NoAgents, pe.Kind)
}

func TestParseInvalidTile(t *testing.T) {
	_, err := Parse("S0 ? X")
	require.Error(t, err)
	var pe *worldmap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, worldmap.InvalidTile, pe.Kind)
}

func TestParseLaserBadAgentID(t *testing.T) {
	_, err := Parse("S0 L5E X")
	require.Error(t, err)
	var pe *worldmap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, worldmap.InvalidLaserSourceAgentID, pe.Kind)
}

func TestParseEmptyWorld(t *testing.T) {
	_, err := Parse("   \n\t\n")
	require.Error(t, err)
	var pe *worldmap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, worldmap.EmptyWorld, pe.Kind)
}
