package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpuzzle/game"
)

// constSource always yields the same value, so every draw picks the last
// template of the catalog.
type constSource struct{}

func (constSource) Uint64() uint64 { return ^uint64(0) }

var (
	dot    = game.MustPiece("dot", [][]int{{1}})
	domino = game.MustPiece("domino", [][]int{{1, 1}})
	square = game.MustPiece("square", [][]int{{1, 1}, {1, 1}})
)

func TestDefaultCatalog(t *testing.T) {
	c := game.DefaultCatalog()
	require.Equal(t, 12, c.Len())
	assert.True(t, c.Fits(10, 10))
	assert.False(t, c.Fits(2, 10), "large L is three tall")
	assert.False(t, c.Fits(10, 4))

	pieces := c.Pieces()
	for i := range pieces {
		assert.Positive(t, pieces[i].Size(), pieces[i].Name())
		for j := i + 1; j < len(pieces); j++ {
			assert.False(t, pieces[i].Equal(pieces[j]), "%s and %s share a shape", pieces[i].Name(), pieces[j].Name())
		}
	}
}

func TestNewCatalogEmpty(t *testing.T) {
	_, err := game.NewCatalog()
	assert.Error(t, err)
}

func TestGeneratorNeverRepeats(t *testing.T) {
	gen := game.NewGenerator(game.DefaultCatalog(), rand.NewPCG(1, 2))
	seen := map[string]int{}
	prev := gen.Next()
	for i := 0; i < 1000; i++ {
		next := gen.Next()
		require.False(t, next.Equal(prev), "draw %d repeated %s", i, prev.Name())
		seen[next.Name()]++
		prev = next
	}
	assert.Len(t, seen, 12)
}

func TestGeneratorRepeatByShape(t *testing.T) {
	twin := game.MustPiece("twin", [][]int{{1}})
	c, err := game.NewCatalog(dot, twin, domino)
	require.NoError(t, err)

	gen := game.NewGenerator(c, rand.NewPCG(7, 7))
	prev := gen.Next()
	for i := 0; i < 1000; i++ {
		next := gen.Next()
		require.False(t, next.Equal(prev))
		prev = next
	}
}

func TestGeneratorFallback(t *testing.T) {
	c, err := game.NewCatalog(dot, domino, square)
	require.NoError(t, err)

	gen := game.NewGenerator(c, constSource{})
	assert.Equal(t, "square", gen.Next().Name())
	assert.Equal(t, "dot", gen.Next().Name())
	assert.Equal(t, "square", gen.Next().Name())
	assert.Equal(t, "dot", gen.Next().Name())
}

func TestGeneratorSingleShape(t *testing.T) {
	c, err := game.NewCatalog(dot)
	require.NoError(t, err)

	gen := game.NewGenerator(c, rand.NewPCG(3, 4))
	for i := 0; i < 5; i++ {
		assert.True(t, gen.Next().Equal(dot))
	}
}
