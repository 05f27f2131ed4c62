package game

import (
	"fmt"
	"strings"
)

// Cell is the state of one square of the grid.
type Cell uint8

const (
	Empty Cell = iota
	Filled
)

// Point is a grid coordinate.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is the fixed-size occupancy matrix. Dimensions never change after
// NewGrid; out-of-range access panics.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid returns an empty rows×cols grid.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("game: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("game: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Get returns the state of (row, col).
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set changes the state of (row, col).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// RowFull reports whether every cell of row is filled.
func (g *Grid) RowFull(row int) bool {
	for c := 0; c < g.cols; c++ {
		if g.Get(row, c) != Filled {
			return false
		}
	}
	return true
}

// ColFull reports whether every cell of col is filled.
func (g *Grid) ColFull(col int) bool {
	for r := 0; r < g.rows; r++ {
		if g.Get(r, col) != Filled {
			return false
		}
	}
	return true
}

func (g *Grid) ClearRow(row int) {
	for c := 0; c < g.cols; c++ {
		g.Set(row, c, Empty)
	}
}

func (g *Grid) ClearCol(col int) {
	for r := 0; r < g.rows; r++ {
		g.Set(r, col, Empty)
	}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c == Filled {
			n++
		}
	}
	return n
}

// Snapshot copies the grid into a fresh row-major matrix.
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// String renders the grid with '#' for filled and '.' for empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Get(r, c) == Filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
