package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpuzzle/game"
)

func fillRow(g *game.Grid, row int, except ...int) {
	for c := 0; c < g.Cols(); c++ {
		if !contains(except, c) {
			g.Set(row, c, game.Filled)
		}
	}
}

func fillCol(g *game.Grid, col int, except ...int) {
	for r := 0; r < g.Rows(); r++ {
		if !contains(except, r) {
			g.Set(r, col, game.Filled)
		}
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func TestNewGrid(t *testing.T) {
	g := game.NewGrid(10, 10)
	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 10, g.Cols())
	assert.Equal(t, 0, g.Count())

	assert.Panics(t, func() { game.NewGrid(0, 10) })
	assert.Panics(t, func() { game.NewGrid(10, -1) })
}

func TestGridGetSet(t *testing.T) {
	g := game.NewGrid(4, 6)
	g.Set(3, 5, game.Filled)
	assert.Equal(t, game.Filled, g.Get(3, 5))
	assert.Equal(t, game.Empty, g.Get(0, 0))
	assert.Equal(t, 1, g.Count())

	t.Run("out of range panics", func(t *testing.T) {
		assert.Panics(t, func() { g.Get(4, 0) })
		assert.Panics(t, func() { g.Get(0, 6) })
		assert.Panics(t, func() { g.Set(-1, 0, game.Filled) })
	})

	assert.True(t, g.InBounds(0, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.False(t, g.InBounds(4, 0))
}

func TestGridLines(t *testing.T) {
	g := game.NewGrid(5, 5)
	fillRow(g, 2, 4)
	assert.False(t, g.RowFull(2))
	g.Set(2, 4, game.Filled)
	assert.True(t, g.RowFull(2))

	fillCol(g, 1)
	assert.True(t, g.ColFull(1))
	assert.False(t, g.ColFull(0))

	g.ClearRow(2)
	assert.False(t, g.RowFull(2))
	assert.False(t, g.ColFull(1))
	assert.Equal(t, 4, g.Count())

	g.ClearCol(1)
	assert.Equal(t, 0, g.Count())
}

func TestGridSnapshotIsCopy(t *testing.T) {
	g := game.NewGrid(3, 3)
	g.Set(1, 1, game.Filled)

	snap := g.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, game.Filled, snap[1][1])

	snap[0][0] = game.Filled
	assert.Equal(t, game.Empty, g.Get(0, 0))

	g.Reset()
	assert.Equal(t, 0, g.Count())
	assert.Equal(t, game.Filled, snap[1][1])
}

func TestGridString(t *testing.T) {
	g := game.NewGrid(2, 3)
	g.Set(0, 0, game.Filled)
	g.Set(1, 2, game.Filled)
	assert.Equal(t, "#..\n..#\n", g.String())
}
