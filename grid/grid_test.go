package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionApply(t *testing.T) {
	p := Position{I: 2, J: 2}

	next, err := North.Apply(p)
	assert.NoError(t, err)
	assert.Equal(t, Position{I: 1, J: 2}, next)

	next, err = Stay.Apply(p)
	assert.NoError(t, err)
	assert.Equal(t, p, next)

	_, err = West.Apply(Position{I: 0, J: 0})
	assert.Error(t, err)
}

func TestActionOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, Stay, Stay.Opposite())
}

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"n": North, "North": North, "S": South, "stay": Stay, "E": East, "w": West,
	}
	for s, want := range cases {
		got, ok := ParseAction(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	_, ok := ParseAction("NE")
	assert.False(t, ok)
}

func TestMoves(t *testing.T) {
	moves := Moves()
	assert.Len(t, moves, 4)
	for _, m := range moves {
		assert.NotEqual(t, Stay, m)
	}
}

func TestPositionInBounds(t *testing.T) {
	assert.True(t, Position{I: 0, J: 0}.InBounds(3, 3))
	assert.True(t, Position{I: 2, J: 2}.InBounds(3, 3))
	assert.False(t, Position{I: 3, J: 0}.InBounds(3, 3))
	assert.False(t, Position{I: -1, J: 0}.InBounds(3, 3))
}

func TestDirectionOppositeAndHorizontal(t *testing.T) {
	assert.Equal(t, DirSouth, DirNorth.Opposite())
	assert.True(t, DirEast.Horizontal())
	assert.False(t, DirNorth.Horizontal())
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("north")
	assert.True(t, ok)
	assert.Equal(t, DirNorth, d)

	_, ok = ParseDirection("northwest")
	assert.False(t, ok)
}
