package game

import "context"

// BoardView is the part of a board a player is allowed to see
type BoardView interface {
	Width() int
	Height() int
	NumMines() int
	State() BoardState

	// Visible reports whether the cell at p is revealed and, if it is, how
	// many mines surround it
	Visible(p Point) (numMines int, revealed bool)
}

// Director chooses the cells to uncover, standing in for the player
type Director interface {
	/**
	 * Prepare for a new game on the given board
	 */
	Init(BoardView)

	/**
	 * Return the next in-bounds cell to uncover. Blocks until a move is
	 * available or ctx is done.
	 */
	NextMove(ctx context.Context) (Point, error)
}
