package game

import "fmt"

// CanPlace reports whether p anchored at (row, col) lands entirely inside g
// on empty cells. A piece without occupied cells always fits.
func CanPlace(g *Grid, p Piece, row, col int) bool {
	for r := 0; r < p.Height(); r++ {
		for c := 0; c < p.Width(); c++ {
			if !p.At(r, c) {
				continue
			}
			tr, tc := row+r, col+c
			if !g.InBounds(tr, tc) || g.Get(tr, tc) == Filled {
				return false
			}
		}
	}
	return true
}

// Place fills the cells covered by p anchored at (row, col) and returns them.
// It panics unless CanPlace holds; callers check first.
func Place(g *Grid, p Piece, row, col int) []Point {
	if !CanPlace(g, p, row, col) {
		panic(fmt.Sprintf("game: place %q at (%d,%d) without a valid CanPlace", p.Name(), row, col))
	}
	cells := make([]Point, 0, p.Size())
	for _, off := range p.Offsets() {
		pt := Point{Row: row + off.Row, Col: col + off.Col}
		g.Set(pt.Row, pt.Col, Filled)
		cells = append(cells, pt)
	}
	return cells
}

// Preview is the hover highlight for a drag over the grid.
type Preview struct {
	Cells []Point `json:"cells"`
	Valid bool    `json:"valid"`
}

// PreviewAt returns the in-bounds cells p would cover at (row, col) and
// whether the drop would be accepted.
func PreviewAt(g *Grid, p Piece, row, col int) Preview {
	pv := Preview{Cells: []Point{}, Valid: CanPlace(g, p, row, col)}
	for _, off := range p.Offsets() {
		if tr, tc := row+off.Row, col+off.Col; g.InBounds(tr, tc) {
			pv.Cells = append(pv.Cells, Point{Row: tr, Col: tc})
		}
	}
	return pv
}
