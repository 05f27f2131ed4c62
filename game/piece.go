package game

import (
	"errors"
	"fmt"
)

// Piece is an immutable rectangular binary shape. Its (0,0) cell is the
// anchor used for placement.
type Piece struct {
	name  string
	cells [][]bool
}

// NewPiece builds a piece from a matrix of 0/1 values. Every row must have
// the same, non-zero width.
func NewPiece(name string, shape [][]int) (Piece, error) {
	if len(shape) == 0 || len(shape[0]) == 0 {
		return Piece{}, errors.New("piece shape is empty")
	}
	width := len(shape[0])
	cells := make([][]bool, len(shape))
	for r, row := range shape {
		if len(row) != width {
			return Piece{}, fmt.Errorf("piece row %d has width %d, want %d", r, len(row), width)
		}
		cells[r] = make([]bool, width)
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				cells[r][c] = true
			default:
				return Piece{}, fmt.Errorf("piece cell (%d,%d) is %d, want 0 or 1", r, c, v)
			}
		}
	}
	return Piece{name: name, cells: cells}, nil
}

// MustPiece is like NewPiece but panics on a malformed shape.
func MustPiece(name string, shape [][]int) Piece {
	p, err := NewPiece(name, shape)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Piece) Name() string { return p.name }
func (p Piece) Height() int  { return len(p.cells) }

func (p Piece) Width() int {
	if len(p.cells) == 0 {
		return 0
	}
	return len(p.cells[0])
}

// At reports whether the bounding-box cell (r, c) is occupied.
func (p Piece) At(r, c int) bool {
	return p.cells[r][c]
}

// Size returns the number of occupied cells.
func (p Piece) Size() int {
	n := 0
	for _, row := range p.cells {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Offsets lists the occupied cells relative to the anchor, row by row.
func (p Piece) Offsets() []Point {
	var out []Point
	for r, row := range p.cells {
		for c, v := range row {
			if v {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// Equal compares shapes only; names are ignored.
func (p Piece) Equal(q Piece) bool {
	if p.Height() != q.Height() || p.Width() != q.Width() {
		return false
	}
	for r, row := range p.cells {
		for c, v := range row {
			if q.cells[r][c] != v {
				return false
			}
		}
	}
	return true
}

// Matrix returns the shape as a fresh 0/1 matrix.
func (p Piece) Matrix() [][]int {
	out := make([][]int, len(p.cells))
	for r, row := range p.cells {
		out[r] = make([]int, len(row))
		for c, v := range row {
			if v {
				out[r][c] = 1
			}
		}
	}
	return out
}
