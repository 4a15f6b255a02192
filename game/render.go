package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// countColors follows the classic Minesweeper palette, indexed by count
var countColors = [9]lipgloss.Color{
	"", "12", "2", "9", "4", "1", "6", "0", "8",
}

type Renderer struct {
	// Debug appends the coordinates of every mine
	Debug bool
	// Color styles counts and mines with ANSI colours
	Color bool

	countStyles [9]lipgloss.Style
	mineStyle   lipgloss.Style
}

func NewRenderer(debug, color bool) *Renderer {
	renderer := &Renderer{
		Debug:     debug,
		Color:     color,
		mineStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
	for count, fg := range countColors {
		renderer.countStyles[count] = lipgloss.NewStyle().Foreground(fg)
	}
	return renderer
}

// Render draws the board with the x indices along the top and the highest row
// first:
//
//	  01234
//	4|?????
//	3|???21
//	2|???1
//	1|?211
//	0|?1
//
// With revealMines set every mine is drawn, which is how a lost board is shown.
func (renderer *Renderer) Render(w io.Writer, board *Board, revealMines bool) error {
	out := bufio.NewWriter(w)

	labelWidth := len(strconv.Itoa(board.height - 1))

	out.WriteString(strings.Repeat(" ", labelWidth+1))
	for x := 0; x < board.width; x++ {
		out.WriteString(strconv.Itoa(x % 10))
	}
	out.WriteString("\n")

	for y := board.height - 1; y >= 0; y-- {
		fmt.Fprintf(out, "%*d|", labelWidth, y)
		for x := 0; x < board.width; x++ {
			out.WriteString(renderer.styleCell(board.CellAt(x, y), revealMines))
		}
		out.WriteString("\n")
	}

	if renderer.Debug {
		out.WriteString("Mines:")
		for _, mine := range board.Mines() {
			out.WriteString(" " + mine.String())
		}
		out.WriteString("\n")
	}

	return out.Flush()
}

func (renderer *Renderer) styleCell(cell *Cell, revealMines bool) string {
	glyph := cell.glyph(revealMines)
	if !renderer.Color {
		return string(glyph)
	}

	switch glyph {
	case glyphMine:
		return renderer.mineStyle.Render(string(glyph))
	case glyphHidden, glyphEmpty:
		return string(glyph)
	default:
		return renderer.countStyles[cell.numMines].Render(string(glyph))
	}
}
