package game

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, renderer *Renderer, board *Board, revealMines bool) string {
	var out strings.Builder
	require.NoError(t, renderer.Render(&out, board, revealMines))
	return out.String()
}

func TestRender(t *testing.T) {
	board := boardWithMines(5, 5, threeMines)

	assert.Equal(t, ""+
		"  01234\n"+
		"4|?????\n"+
		"3|?????\n"+
		"2|?????\n"+
		"1|?????\n"+
		"0|?????\n",
		render(t, NewRenderer(false, false), board, false))

	_, err := board.Uncover(4, 0)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"  01234\n"+
		"4|?????\n"+
		"3|???21\n"+
		"2|???1 \n"+
		"1|?211 \n"+
		"0|?1   \n",
		render(t, NewRenderer(false, false), board, false))
}

func TestRenderDebug(t *testing.T) {
	board := boardWithMines(5, 5, threeMines)

	out := render(t, NewRenderer(true, false), board, false)
	assert.True(t, strings.HasSuffix(out, "0|?????\nMines: (0 0) (2 2) (4 4)\n"), out)

	fresh, err := NewBoard(BoardConfig{Width: 5, Height: 5, NumMines: 5, Seed: 1})
	require.NoError(t, err)
	out = render(t, NewRenderer(true, false), fresh, false)
	assert.True(t, strings.HasSuffix(out, "\nMines:\n"), out)
}

func TestRenderLost(t *testing.T) {
	board := boardWithMines(5, 5, threeMines)
	_, err := board.Uncover(2, 2)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"  01234\n"+
		"4|?????\n"+
		"3|?????\n"+
		"2|??*??\n"+
		"1|?????\n"+
		"0|?????\n",
		render(t, NewRenderer(false, false), board, false))

	assert.Equal(t, ""+
		"  01234\n"+
		"4|????*\n"+
		"3|?????\n"+
		"2|??*??\n"+
		"1|?????\n"+
		"0|*????\n",
		render(t, NewRenderer(false, false), board, true))
}

func TestRenderWideBoard(t *testing.T) {
	board := boardWithMines(12, 11, nil)

	lines := strings.Split(render(t, NewRenderer(false, false), board, false), "\n")
	assert.Equal(t, "   012345678901", lines[0])
	assert.Equal(t, "10|????????????", lines[1])
	assert.Equal(t, " 0|????????????", lines[11])
}

func TestRenderColor(t *testing.T) {
	profile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(profile) })

	board := boardWithMines(5, 5, threeMines)
	_, err := board.Uncover(4, 0)
	require.NoError(t, err)

	plain := render(t, NewRenderer(false, false), board, true)
	assert.NotContains(t, plain, "\x1b[")

	lines := strings.Split(render(t, NewRenderer(false, true), board, true), "\n")
	assert.Equal(t, "  01234", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "4|????\x1b["), "%q", lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "*\x1b[0m"), "%q", lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "0|\x1b["), "%q", lines[5])
	assert.True(t, strings.HasSuffix(lines[5], "1\x1b[0m   "), "%q", lines[5])
	assert.Equal(t, 2, strings.Count(lines[5], "\x1b[0m"), "%q", lines[5])
}
