package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultRows = 10
	DefaultCols = 10

	// PointsPerLine is awarded for every cleared row or column.
	PointsPerLine = 100
)

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Rows    int
	Cols    int
	Catalog *Catalog
	Source  rand.Source
}

// Session drives one player's games: score, piece flow and the
// Menu -> Playing -> GameOver transitions. It is not safe for concurrent
// use; callers serialise access.
type Session struct {
	grid    *Grid
	gen     *Generator
	piece   Piece
	state   State
	score   int
	best    int
	lines   int
	moves   int
	version int
}

// NewSession returns a session in the Menu state.
func NewSession(opts Options) (*Session, error) {
	if opts.Rows == 0 {
		opts.Rows = DefaultRows
	}
	if opts.Cols == 0 {
		opts.Cols = DefaultCols
	}
	if opts.Rows < 0 || opts.Cols < 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", opts.Rows, opts.Cols)
	}
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog()
	}
	if !opts.Catalog.Fits(opts.Rows, opts.Cols) {
		return nil, errors.New("catalog has pieces larger than the grid")
	}
	if opts.Source == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Source = rand.NewPCG(seed, seed>>1)
	}
	return &Session{
		grid:  NewGrid(opts.Rows, opts.Cols),
		gen:   NewGenerator(opts.Catalog, opts.Source),
		state: Menu,
	}, nil
}

// Start begins a game from any state.
func (s *Session) Start() {
	s.Restart()
}

// Restart empties the grid, zeroes the score and deals a fresh piece.
func (s *Session) Restart() {
	s.grid.Reset()
	s.score = 0
	s.lines = 0
	s.moves = 0
	s.piece = s.gen.Next()
	s.state = Playing
	s.version++
}

// CanPlace reports whether the active piece fits at (row, col).
func (s *Session) CanPlace(row, col int) bool {
	return s.state == Playing && CanPlace(s.grid, s.piece, row, col)
}

// Preview returns the hover highlight of the active piece at (row, col).
func (s *Session) Preview(row, col int) Preview {
	pv := PreviewAt(s.grid, s.piece, row, col)
	if s.state != Playing {
		pv.Valid = false
	}
	return pv
}

// Place drops the active piece at (row, col), clears completed lines, scores
// them and deals the next piece. When the next piece fits nowhere the
// session moves to GameOver. A rejected drop changes nothing.
func (s *Session) Place(row, col int) (PlaceResult, error) {
	if s.state != Playing {
		return PlaceResult{}, ErrNotPlaying
	}
	if !CanPlace(s.grid, s.piece, row, col) {
		return PlaceResult{}, &PlacementError{Piece: s.piece.Name(), Row: row, Col: col}
	}

	placed := Place(s.grid, s.piece, row, col)
	sweep := ClearLines(s.grid)
	points := sweep.Lines() * PointsPerLine
	s.score += points
	s.best = max(s.best, s.score)
	s.lines += sweep.Lines()
	s.moves++

	s.piece = s.gen.Next()
	if !HasAnyValidMove(s.grid, s.piece) {
		s.state = GameOver
	}
	s.version++

	return PlaceResult{
		Placed:   placed,
		Cleared:  sweep,
		Lines:    sweep.Lines(),
		Points:   points,
		Score:    s.score,
		Next:     viewOf(s.piece),
		GameOver: s.state == GameOver,
	}, nil
}

func (s *Session) State() State  { return s.state }
func (s *Session) Score() int    { return s.score }
func (s *Session) Best() int     { return s.best }
func (s *Session) Lines() int    { return s.lines }
func (s *Session) Moves() int    { return s.moves }
func (s *Session) Piece() Piece  { return s.piece }
func (s *Session) Rows() int     { return s.grid.Rows() }
func (s *Session) Cols() int     { return s.grid.Cols() }
func (s *Session) Version() int  { return s.version }
func (s *Session) Filled() int   { return s.grid.Count() }
func (s *Session) Board() string { return s.grid.String() }

// Cell returns the state of (row, col); it panics outside the grid.
func (s *Session) Cell(row, col int) Cell {
	return s.grid.Get(row, col)
}

// Snapshot copies the session for rendering.
func (s *Session) Snapshot() Snapshot {
	board := make([][]int, s.grid.Rows())
	for r, row := range s.grid.Snapshot() {
		board[r] = make([]int, len(row))
		for c, v := range row {
			board[r][c] = int(v)
		}
	}
	snap := Snapshot{
		Board:   board,
		Rows:    s.grid.Rows(),
		Cols:    s.grid.Cols(),
		Score:   s.score,
		Best:    s.best,
		Lines:   s.lines,
		Moves:   s.moves,
		State:   s.state,
		Version: s.version,
	}
	if s.state != Menu {
		snap.Piece = viewOf(s.piece)
	}
	return snap
}
