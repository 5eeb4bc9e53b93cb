package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/samuelfneumann/lle/worldmap/v1"
)

func TestGetAllLevelsParse(t *testing.T) {
	for k := 1; k <= 6; k++ {
		text, err := Get(k)
		require.NoError(t, err, "level %d", k)
		_, err = v1.Parse(text)
		assert.NoError(t, err, "level %d should be valid v1 grammar", k)
	}
}

func TestGetOutOfRange(t *testing.T) {
	_, err := Get(0)
	assert.Error(t, err)
	_, err = Get(7)
	assert.Error(t, err)
}

func TestGetByName(t *testing.T) {
	text, err := GetByName("lvl3")
	require.NoError(t, err)
	want, err := Get(3)
	require.NoError(t, err)
	assert.Equal(t, want, text)

	text, err = GetByName("Level6")
	require.NoError(t, err)
	want, err = Get(6)
	require.NoError(t, err)
	assert.Equal(t, want, text)

	_, err = GetByName("nonsense")
	assert.Error(t, err)
}
