package game

import (
	"errors"
	"math/rand/v2"
)

// maxRedraws bounds the rejection sampling in Generator.Next.
const maxRedraws = 16

// Catalog is the set of shape templates pieces are drawn from.
type Catalog struct {
	pieces []Piece
}

// NewCatalog returns a catalog holding the given templates in order.
func NewCatalog(pieces ...Piece) (*Catalog, error) {
	if len(pieces) == 0 {
		return nil, errors.New("catalog has no pieces")
	}
	return &Catalog{pieces: append([]Piece(nil), pieces...)}, nil
}

// DefaultCatalog returns the twelve reference templates.
func DefaultCatalog() *Catalog {
	return &Catalog{pieces: []Piece{
		MustPiece("line", [][]int{{1, 1, 1, 1}}),
		MustPiece("square", [][]int{{1, 1}, {1, 1}}),
		MustPiece("l", [][]int{{1, 0, 0}, {1, 1, 1}}),
		MustPiece("z", [][]int{{0, 1, 1}, {1, 1, 0}}),
		MustPiece("t", [][]int{{1, 1, 1}, {0, 1, 0}}),
		MustPiece("reverse-l", [][]int{{1, 1, 1}, {1, 0, 0}}),
		MustPiece("reverse-z", [][]int{{0, 0, 1}, {1, 1, 1}}),
		MustPiece("s", [][]int{{1, 1, 0}, {0, 1, 1}}),
		MustPiece("large-l", [][]int{{1, 1, 1}, {1, 0, 0}, {1, 0, 0}}),
		MustPiece("long-line", [][]int{{1, 1, 1, 1, 1}}),
		MustPiece("t-extra", [][]int{{1, 1, 1}, {1, 1, 0}}),
		MustPiece("s-extra", [][]int{{1, 1, 0}, {0, 1, 1}, {0, 0, 1}}),
	}}
}

func (c *Catalog) Len() int        { return len(c.pieces) }
func (c *Catalog) At(i int) Piece  { return c.pieces[i] }
func (c *Catalog) Pieces() []Piece { return append([]Piece(nil), c.pieces...) }

// Fits reports whether every template fits inside a rows×cols grid.
func (c *Catalog) Fits(rows, cols int) bool {
	for _, p := range c.pieces {
		if p.Height() > rows || p.Width() > cols {
			return false
		}
	}
	return true
}

// Generator draws pieces uniformly from a catalog, never returning the same
// shape twice in a row when the catalog holds more than one shape.
type Generator struct {
	catalog *Catalog
	rng     *rand.Rand
	last    Piece
	drawn   bool
}

func NewGenerator(c *Catalog, src rand.Source) *Generator {
	return &Generator{catalog: c, rng: rand.New(src)}
}

// Next returns the next piece. Draws equal in shape to the previous piece
// are rejected up to maxRedraws times; after that the first later template
// with a different shape is taken.
func (g *Generator) Next() Piece {
	n := g.catalog.Len()
	i := g.rng.IntN(n)
	for attempt := 0; g.repeats(i) && attempt < maxRedraws; attempt++ {
		i = g.rng.IntN(n)
	}
	if g.repeats(i) {
		for step := 1; step < n; step++ {
			if j := (i + step) % n; !g.repeats(j) {
				i = j
				break
			}
		}
	}
	g.last = g.catalog.At(i)
	g.drawn = true
	return g.last
}

func (g *Generator) repeats(i int) bool {
	return g.drawn && g.catalog.At(i).Equal(g.last)
}
