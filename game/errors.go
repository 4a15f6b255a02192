package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrGameOver is returned when a move is attempted on a won or lost board
	ErrGameOver = errors.New("game is over")
	// ErrMinesPlaced is returned when mines are placed a second time
	ErrMinesPlaced = errors.New("mines have already been placed")
	// ErrInputClosed is returned by a director which has run out of input
	ErrInputClosed = errors.New("input closed")
)

// ConfigError reports a board geometry which cannot be played
type ConfigError struct {
	Width, Height int
	NumMines      int
	Reason        string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid board %dx%d with %d mines: %s", e.Width, e.Height, e.NumMines, e.Reason)
}

// OutOfBoundsError reports a coordinate outside the board. Drivers are
// expected to reject these before calling into the board.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", e.X, e.Y, e.Width, e.Height)
}
