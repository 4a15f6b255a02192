package game

import "fmt"

// Point is a board coordinate. X grows to the right, Y grows upwards when
// drawn by the console renderer.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d %d)", p.X, p.Y)
}

var neighborOffsets = [8]Point{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

// Neighbors returns the up-to-8 cells touching p by edge or corner which lie
// inside a width x height board
func (p Point) Neighbors(width, height int) []Point {
	neighbors := make([]Point, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		x, y := p.X+offset.X, p.Y+offset.Y
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		neighbors = append(neighbors, Point{x, y})
	}
	return neighbors
}

type Cell struct {
	board *Board

	x, y     int
	numMines int

	isMine, isRevealed bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Point() Point {
	return Point{cell.x, cell.y}
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

// NumMines is the number of mined neighbours. It is zero for every cell until
// the board has placed its mines.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

func (cell *Cell) Neighbors() []*Cell {
	points := cell.Point().Neighbors(cell.board.width, cell.board.height)
	neighbors := make([]*Cell, len(points))
	for i, p := range points {
		neighbors[i] = cell.board.CellAt(p.X, p.Y)
	}
	return neighbors
}

func (cell *Cell) countNeighborMines() int {
	count := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.isMine {
			count++
		}
	}
	return count
}

// glyph is the character drawn for the cell. Hidden mines are only drawn when
// revealMines is set, which happens once the game is lost.
func (cell *Cell) glyph(revealMines bool) rune {
	switch {
	case cell.isMine && (cell.isRevealed || revealMines):
		return glyphMine
	case !cell.isRevealed:
		return glyphHidden
	case cell.numMines == 0:
		return glyphEmpty
	default:
		return rune('0' + cell.numMines)
	}
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine && cell.isRevealed:
		return "*"
	case cell.isMine:
		return "O"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case '*':
		cell.isMine, cell.isRevealed = true, true
	case 'O':
		cell.isMine, cell.isRevealed = true, false
	case '.':
		cell.isMine, cell.isRevealed = false, true
	case '#':
		cell.isMine, cell.isRevealed = false, false
	default:
		return false
	}
	return true
}
