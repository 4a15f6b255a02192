package random

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/they4kman/termsweep/game"
)

// Director uncovers hidden cells in a random order
type Director struct {
	rand  *rand.Rand
	view  game.BoardView
	cells []game.Point
}

func New(r *rand.Rand) *Director {
	return &Director{rand: r}
}

func (director *Director) Init(view game.BoardView) {
	director.view = view

	director.cells = make([]game.Point, 0, view.Width()*view.Height())
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			director.cells = append(director.cells, game.Point{X: x, Y: y})
		}
	}

	director.rand.Shuffle(len(director.cells), func(i, j int) {
		director.cells[i], director.cells[j] = director.cells[j], director.cells[i]
	})
}

func (director *Director) NextMove(ctx context.Context) (game.Point, error) {
	if err := ctx.Err(); err != nil {
		return game.Point{}, err
	}

	for len(director.cells) > 0 {
		cell := director.cells[0]
		director.cells = director.cells[1:]

		if _, revealed := director.view.Visible(cell); !revealed {
			return cell, nil
		}
	}
	return game.Point{}, errors.Wrap(game.ErrInputClosed, "no hidden cells left")
}

// Pick returns a random hidden cell from candidates without consuming the
// director's own ordering
func (director *Director) Pick(candidates []game.Point) (game.Point, bool) {
	if len(candidates) == 0 {
		return game.Point{}, false
	}
	return candidates[director.rand.Intn(len(candidates))], true
}
