package game

import (
	"math/rand"
	"time"
)

type BoardConfig struct {
	Width, Height int
	NumMines      int

	// Seed for mine placement; zero seeds from the clock
	Seed int64
}

// Validate checks that the geometry leaves room for every mine while keeping
// the first uncovered cell clear
func (config BoardConfig) Validate() error {
	newError := func(reason string) error {
		return &ConfigError{
			Width:    config.Width,
			Height:   config.Height,
			NumMines: config.NumMines,
			Reason:   reason,
		}
	}

	switch {
	case config.Width <= 0 || config.Height <= 0:
		return newError("width and height must be positive")
	case config.NumMines < 0:
		return newError("mine count must not be negative")
	case config.NumMines >= config.Width*config.Height:
		return newError("mine count must be less than the number of cells")
	}
	return nil
}

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell

	seed int64
	rand *rand.Rand

	minesPlaced bool
	gameOver    bool

	// Revealed cells without a mine; the board is won when this reaches
	// NumCells() - NumMines()
	numSafeRevealed int
}

// NewBoard creates a board with every cell hidden and mine-free. Mines are
// placed by the first call to Uncover.
func NewBoard(config BoardConfig) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return createBoard(config.Width, config.Height, config.NumMines, seed), nil
}

func createBoard(width, height, numMines int, seed int64) *Board {
	board := &Board{
		width:    width,
		height:   height,
		numMines: numMines,
		cells:    make([][]Cell, height),
		seed:     seed,
		rand:     rand.New(rand.NewSource(seed)),
	}

	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		board.cells[y] = row

		for x := 0; x < width; x++ {
			row[x] = Cell{board: board, x: x, y: y}
		}
	}

	return board
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) MinesPlaced() bool {
	return board.minesPlaced
}

func (board *Board) GameOver() bool {
	return board.gameOver
}

// NumRevealed is the number of revealed cells, counting a detonated mine
func (board *Board) NumRevealed() int {
	if board.gameOver {
		return board.numSafeRevealed + 1
	}
	return board.numSafeRevealed
}

func (board *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

func (board *Board) CellAt(x, y int) *Cell {
	if board.InBounds(x, y) {
		return &board.cells[y][x]
	}
	return nil
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for y := range board.cells {
		for x := range board.cells[y] {
			cells = append(cells, &board.cells[y][x])
		}
	}
	return cells
}

// Visible returns what a player can see of the cell at p: whether it has been
// revealed and, if so, its neighbouring mine count
func (board *Board) Visible(p Point) (numMines int, revealed bool) {
	cell := board.CellAt(p.X, p.Y)
	if cell == nil || !cell.isRevealed {
		return 0, false
	}
	return cell.numMines, true
}

// Mines lists every mine coordinate, ordered by column then row
func (board *Board) Mines() []Point {
	mines := make([]Point, 0, board.numMines)
	for x := 0; x < board.width; x++ {
		for y := 0; y < board.height; y++ {
			if board.cells[y][x].isMine {
				mines = append(mines, Point{x, y})
			}
		}
	}
	return mines
}

func (board *Board) State() BoardState {
	switch {
	case board.gameOver:
		return Lost
	case board.CheckWin():
		return Won
	case board.minesPlaced:
		return InPlay
	default:
		return MinesPending
	}
}

// CheckWin reports whether every cell without a mine has been revealed
func (board *Board) CheckWin() bool {
	return !board.gameOver && board.numSafeRevealed == board.NumCells()-board.numMines
}

// PlaceMines selects NumMines distinct cells uniformly at random, never the
// excluded cell, and computes every cell's neighbouring mine count
func (board *Board) PlaceMines(exclude Point) error {
	if board.minesPlaced {
		return ErrMinesPlaced
	}
	if !board.InBounds(exclude.X, exclude.Y) {
		return board.outOfBounds(exclude.X, exclude.Y)
	}

	candidates := make([]Point, 0, board.NumCells()-1)
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			if x == exclude.X && y == exclude.Y {
				continue
			}
			candidates = append(candidates, Point{x, y})
		}
	}

	board.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	board.fillMines(candidates[:board.numMines])
	return nil
}

// fillMines lays mines on exactly the given cells
func (board *Board) fillMines(mines []Point) {
	for _, p := range mines {
		board.cells[p.Y][p.X].isMine = true
	}
	for _, cell := range board.Cells() {
		cell.numMines = cell.countNeighborMines()
	}
	board.minesPlaced = true
}

// Uncover reveals the cell at (x, y). The first call places the mines, keeping
// (x, y) clear. Revealing a cell with no neighbouring mines floods outward
// through the surrounding empty region.
func (board *Board) Uncover(x, y int) (UncoverResult, error) {
	if !board.InBounds(x, y) {
		return 0, board.outOfBounds(x, y)
	}
	if board.State().IsOver() {
		return 0, ErrGameOver
	}

	if !board.minesPlaced {
		if err := board.PlaceMines(Point{x, y}); err != nil {
			return 0, err
		}
	}

	cell := board.CellAt(x, y)
	switch {
	case cell.isRevealed:
		return AlreadyRevealed, nil
	case cell.isMine:
		cell.isRevealed = true
		board.gameOver = true
		return HitMine, nil
	default:
		board.cascadeEmpty(cell)
		return Revealed, nil
	}
}

func (board *Board) reveal(cell *Cell) {
	if cell.isRevealed || cell.isMine {
		return
	}
	cell.isRevealed = true
	board.numSafeRevealed++
}

func (board *Board) cascadeEmpty(cell *Cell) {
	flood(
		cell,
		board.reveal,
		func(cell *Cell) []*Cell {
			return cell.Neighbors()
		},
	)
}

func (board *Board) outOfBounds(x, y int) error {
	return &OutOfBoundsError{X: x, Y: y, Width: board.width, Height: board.height}
}
