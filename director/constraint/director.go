package constraint

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Director deduces safe cells from the revealed counts. When nothing is
// certain it guesses the cell least likely to hold a mine.
type Director struct {
	view   game.BoardView
	random *random.Director

	// Cells proven safe, waiting to be uncovered
	safe   deque.Deque
	queued collections.Set[game.Point]
	// Cells proven to hold a mine
	mines collections.Set[game.Point]
}

// Observation records that exactly numMines of cells hold a mine
type Observation struct {
	origin   *game.Point
	numMines int
	cells    collections.Set[game.Point]
}

func (observation Observation) String() string {
	points := make([]string, 0, len(observation.cells))
	for cell := range observation.cells {
		points = append(points, fmt.Sprintf("(%d, %d)", cell.X, cell.Y))
	}
	sort.Strings(points)

	originRepr := "?"
	if observation.origin != nil {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.X, observation.origin.Y)
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(points, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func New(r *rand.Rand) *Director {
	return &Director{random: random.New(r)}
}

func (director *Director) Init(view game.BoardView) {
	director.view = view
	director.random.Init(view)

	director.safe = deque.Deque{}
	director.queued = collections.NewSet[game.Point]()
	director.mines = collections.NewSet[game.Point]()
}

// KnownMines returns the cells the director has proven to be mined
func (director *Director) KnownMines() collections.Set[game.Point] {
	return director.mines
}

func (director *Director) NextMove(ctx context.Context) (game.Point, error) {
	if err := ctx.Err(); err != nil {
		return game.Point{}, err
	}

	if move, ok := director.popSafe(); ok {
		return move, nil
	}

	director.actDeliberate()
	if move, ok := director.popSafe(); ok {
		return move, nil
	}

	if move, ok := director.actLowestProbability(); ok {
		return move, nil
	}

	return director.random.NextMove(ctx)
}

func (director *Director) popSafe() (game.Point, bool) {
	for director.safe.Len() > 0 {
		cell := director.safe.PopFront().(game.Point)
		director.queued.Remove(cell)
		if _, revealed := director.view.Visible(cell); !revealed {
			return cell, true
		}
	}
	return game.Point{}, false
}

func (director *Director) enqueueSafe(cells collections.Set[game.Point]) {
	// Sorted so that a seeded game replays the same moves
	for _, cell := range sortedPoints(cells) {
		if director.queued.Contains(cell) {
			continue
		}
		director.queued.Add(cell)
		director.safe.PushBack(cell)
	}
}

// actDeliberate applies deductions until none of them teaches anything new
func (director *Director) actDeliberate() {
	for {
		changed := false

		observations := director.simplifyObservations(director.observe())
		for _, observation := range observations {
			if observation.numMines == len(observation.cells) {
				if director.mines.AddAll(observation.cells) {
					changed = true
				}
			} else if observation.numMines == 0 {
				before := director.safe.Len()
				director.enqueueSafe(observation.cells)
				if director.safe.Len() != before {
					changed = true
				}
			}
		}

		if !changed {
			return
		}
	}
}

// observe builds one observation per revealed number, leaving out cells
// already known to be mines
func (director *Director) observe() []*Observation {
	view := director.view

	var observations []*Observation
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			origin := game.Point{X: x, Y: y}
			numMines, revealed := view.Visible(origin)
			if !revealed || numMines == 0 {
				continue
			}

			observation := &Observation{
				origin:   &origin,
				numMines: numMines,
				cells:    collections.NewSet[game.Point](),
			}
			for _, neighbor := range origin.Neighbors(view.Width(), view.Height()) {
				if _, revealed := view.Visible(neighbor); revealed {
					continue
				}
				if director.mines.Contains(neighbor) {
					observation.numMines--
				} else {
					observation.cells.Add(neighbor)
				}
			}

			if len(observation.cells) > 0 {
				observations = append(observations, observation)
			}
		}
	}
	return observations
}

// simplifyObservations splits every observation which wholly contains
// another into the containing remainder
func (director *Director) simplifyObservations(observations []*Observation) []*Observation {
	simplified := observations
	for _, observation := range observations {
		for _, containing := range observations {
			if containing == observation || len(containing.cells) <= len(observation.cells) {
				continue
			}

			shared := observation.cells.Intersection(containing.cells)
			if len(shared) != len(observation.cells) {
				continue
			}

			simplified = append(simplified, &Observation{
				numMines: containing.numMines - observation.numMines,
				cells:    containing.cells.Difference(observation.cells),
			})
		}
	}
	return simplified
}

// actLowestProbability picks the hidden cell with the lowest estimated chance
// of holding a mine. Cells no observation touches share the mines left over.
func (director *Director) actLowestProbability() (game.Point, bool) {
	view := director.view
	observations := director.observe()

	cellProbabilities := make(map[game.Point]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if pastProbability, ok := cellProbabilities[cell]; !ok || probability > pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	var unconstrained []game.Point
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			cell := game.Point{X: x, Y: y}
			if _, revealed := view.Visible(cell); revealed || director.mines.Contains(cell) {
				continue
			}
			if _, constrained := cellProbabilities[cell]; !constrained {
				unconstrained = append(unconstrained, cell)
			}
		}
	}
	if len(unconstrained) > 0 {
		remaining := view.NumMines() - len(director.mines)
		hidden := len(unconstrained) + len(cellProbabilities)
		probability := float64(remaining) / float64(hidden)
		for _, cell := range unconstrained {
			cellProbabilities[cell] = probability
		}
	}

	if len(cellProbabilities) == 0 {
		return game.Point{}, false
	}

	lowestProbability := math.Inf(1)
	var lowestProbabilityCells []game.Point
	for _, cell := range sortedPoints(mapKeys(cellProbabilities)) {
		probability := cellProbabilities[cell]
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowestProbabilityCells = []game.Point{cell}
		case probability == lowestProbability:
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	return director.random.Pick(lowestProbabilityCells)
}

func mapKeys(m map[game.Point]float64) collections.Set[game.Point] {
	keys := collections.NewSet[game.Point]()
	for key := range m {
		keys.Add(key)
	}
	return keys
}

func sortedPoints(set collections.Set[game.Point]) []game.Point {
	points := make([]game.Point, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
