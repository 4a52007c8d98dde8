package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	for input, want := range map[string]Direction{
		"up":     DirectionUp,
		"DOWN":   DirectionDown,
		" left ": DirectionLeft,
		"Right":  DirectionRight,
	} {
		got, ok := ParseDirection(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, ok := ParseDirection("sideways")
	assert.False(t, ok)
}

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		direction Direction
		row, col  int
	}{
		{DirectionUp, -1, 0},
		{DirectionDown, 1, 0},
		{DirectionLeft, 0, -1},
		{DirectionRight, 0, 1},
	}
	for _, tc := range cases {
		row, col := tc.direction.Delta()
		assert.Equal(t, tc.row, row)
		assert.Equal(t, tc.col, col)
	}
}

func TestPositionStep(t *testing.T) {
	pos := NewPosition(1, 1)

	assert.Equal(t, NewPosition(0, 1), pos.Step(DirectionUp))
	assert.Equal(t, NewPosition(2, 1), pos.Step(DirectionDown))
	assert.Equal(t, NewPosition(1, 0), pos.Step(DirectionLeft))
	assert.Equal(t, NewPosition(1, 2), pos.Step(DirectionRight))
}

func TestPositionInBounds(t *testing.T) {
	assert.True(t, NewPosition(0, 0).InBounds(4))
	assert.True(t, NewPosition(3, 3).InBounds(4))
	assert.False(t, NewPosition(4, 0).InBounds(4))
	assert.False(t, NewPosition(0, -1).InBounds(4))
}

func TestMasteryForValue(t *testing.T) {
	cases := map[int]MasteryLevel{
		2:    MasteryExposure,
		4:    MasteryAwareness,
		64:   MasteryProficiency,
		2048: MasteryGenius,
		4096: MasteryTranscendence,
		8192: MasteryTranscendence,
	}
	for value, want := range cases {
		assert.Equal(t, want, MasteryForValue(value), "value %d", value)
	}
}

func TestMasteryDescription(t *testing.T) {
	assert.NotEmpty(t, MasteryExposure.Description())
	assert.NotEmpty(t, MasteryGenius.Description())
}

func TestTileID(t *testing.T) {
	id := NewTileID()
	assert.False(t, id.IsZero())

	parsed, err := NewTileIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))

	_, err = NewTileIDFromString("not-a-uuid")
	assert.Error(t, err)
}
