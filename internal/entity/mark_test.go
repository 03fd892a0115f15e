package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.True(t, PlayerX.IsValid())
	assert.False(t, Mark("Z").IsValid())
}

func TestCell(t *testing.T) {
	t.Run("Empty cell", func(t *testing.T) {
		_, ok := EmptyCell.Mark()

		assert.False(t, ok)
		assert.True(t, EmptyCell.IsEmpty())
		assert.Equal(t, " ", EmptyCell.String())
	})

	t.Run("Occupied cell", func(t *testing.T) {
		cell := Occupied(PlayerO)
		mark, ok := cell.Mark()

		assert.True(t, ok)
		assert.Equal(t, PlayerO, mark)
		assert.Equal(t, "O", cell.String())
		assert.NotEqual(t, Occupied(PlayerX), cell)
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "X won!", Won(PlayerX).String())
	assert.Equal(t, "O won!", Won(PlayerO).String())
	assert.Equal(t, "It's a tie.", Tied().String())
	assert.True(t, Running().IsRunning())
	assert.True(t, Tied().IsFinished())
}
