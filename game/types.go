package game

import "fmt"

// State is the lifecycle stage of a session.
type State int

const (
	Menu State = iota
	Playing
	GameOver
)

var stateNames = map[State]string{
	Menu:     "menu",
	Playing:  "playing",
	GameOver: "game-over",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for st, name := range stateNames {
		if name == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// Instructions is the how-to-play text shown by the menu.
const Instructions = "Drag and drop the pieces onto the board to fill rows or columns. Clear as many lines as you can!"

// PieceView is the JSON form of a piece.
type PieceView struct {
	Name  string  `json:"name"`
	Shape [][]int `json:"shape"`
}

func viewOf(p Piece) PieceView {
	return PieceView{Name: p.Name(), Shape: p.Matrix()}
}

// Snapshot is a read-only copy of a session for rendering.
type Snapshot struct {
	Board   [][]int   `json:"board"` // 1 = filled
	Rows    int       `json:"rows"`
	Cols    int       `json:"cols"`
	Piece   PieceView `json:"piece"`
	Score   int       `json:"score"`
	Best    int       `json:"best"`
	Lines   int       `json:"lines"`
	Moves   int       `json:"moves"`
	State   State     `json:"state"`
	Version int       `json:"version"`
}

// PlaceResult describes what one accepted drop changed.
type PlaceResult struct {
	Placed   []Point   `json:"placed"`
	Cleared  Sweep     `json:"cleared"`
	Lines    int       `json:"lines"`
	Points   int       `json:"points"`
	Score    int       `json:"score"`
	Next     PieceView `json:"next"`
	GameOver bool      `json:"gameOver"`
}
