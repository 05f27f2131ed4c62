package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpuzzle/game"
)

func TestClearLinesCrossing(t *testing.T) {
	g := game.NewGrid(10, 10)
	fillRow(g, 0, 9)
	fillCol(g, 9, 0)
	require.True(t, game.CanPlace(g, dot, 0, 9))

	game.Place(g, dot, 0, 9)
	s := game.ClearLines(g)

	assert.Equal(t, 2, s.Lines())
	assert.Equal(t, []int{0}, s.Rows)
	assert.Equal(t, []int{9}, s.Cols)
	assert.Equal(t, 0, g.Count())
}

func TestClearLinesNothingFull(t *testing.T) {
	g := game.NewGrid(10, 10)
	fillRow(g, 3, 0)
	fillCol(g, 6, 9)
	g.Set(9, 0, game.Filled)
	before := g.Snapshot()

	s := game.ClearLines(g)
	assert.Equal(t, 0, s.Lines())
	assert.Empty(t, s.Rows)
	assert.Empty(t, s.Cols)
	assert.Equal(t, before, g.Snapshot())
}

func TestClearLinesRowsThenColumns(t *testing.T) {
	g := game.NewGrid(4, 4)
	fillRow(g, 1)
	fillRow(g, 3)
	fillCol(g, 2)
	g.Set(0, 0, game.Filled)

	s := game.ClearLines(g)
	assert.Equal(t, []int{1, 3}, s.Rows)
	assert.Equal(t, []int{2}, s.Cols)
	assert.Equal(t, 3, s.Lines())
	assert.Equal(t, "#...\n....\n....\n....\n", g.String())
}

func TestClearLinesOnlyColumns(t *testing.T) {
	g := game.NewGrid(5, 5)
	fillCol(g, 0)
	fillCol(g, 4)
	g.Set(2, 2, game.Filled)

	s := game.ClearLines(g)
	assert.Equal(t, []int{0, 4}, s.Cols)
	assert.Empty(t, s.Rows)
	assert.Equal(t, 1, g.Count())
}

func TestClearLinesFullGrid(t *testing.T) {
	g := game.NewGrid(3, 3)
	for r := 0; r < 3; r++ {
		fillRow(g, r)
	}
	s := game.ClearLines(g)
	assert.Equal(t, 6, s.Lines())
	assert.Equal(t, 0, g.Count())
}
