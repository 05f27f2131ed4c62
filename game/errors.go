package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPlacement is returned when a drop overlaps a filled cell or
	// leaves the grid. The session is unchanged.
	ErrInvalidPlacement = errors.New("invalid placement")
	// ErrNotPlaying is returned for moves outside the Playing state.
	ErrNotPlaying = errors.New("game is not in progress")
)

// PlacementError carries the rejected drop.
type PlacementError struct {
	Piece string
	Row   int
	Col   int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("invalid placement: %s at (%d,%d)", e.Piece, e.Row, e.Col)
}

func (e *PlacementError) Is(target error) bool {
	return target == ErrInvalidPlacement
}
