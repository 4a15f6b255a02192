package game

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	lostMessage            = "You hit a mine. Game over."
	wonMessage             = "Congratulations You have cleared all the mines."
	alreadyRevealedMessage = "Cell already revealed."
)

type Outcome int

const (
	Aborted Outcome = iota
	Victory
	Defeat
)

func (outcome Outcome) String() string {
	switch outcome {
	case Victory:
		return "win"
	case Defeat:
		return "loss"
	default:
		return "aborted"
	}
}

// Game drives a single board from its first move to a win or a loss
type Game struct {
	config   GameConfig
	director Director
	renderer *Renderer
	out      io.Writer
	log      logrus.FieldLogger

	board *Board
	moves int

	now func() time.Time
}

func NewGame(config GameConfig, director Director, out io.Writer, log logrus.FieldLogger) *Game {
	return &Game{
		config:   config,
		director: director,
		renderer: NewRenderer(config.Debug, config.Color),
		out:      out,
		log:      log,
		now:      time.Now,
	}
}

// Board is the board of the current or most recent game
func (game *Game) Board() *Board {
	return game.board
}

// Run plays one game. Directors that run out of input, and cancellation of
// ctx, end the game early with the Aborted outcome.
func (game *Game) Run(ctx context.Context) (Outcome, error) {
	board, err := game.config.createBoard()
	if err != nil {
		return Aborted, err
	}
	game.board = board
	game.moves = 0

	log := game.log.WithFields(logrus.Fields{
		"width":  board.Width(),
		"height": board.Height(),
		"mines":  board.NumMines(),
		"seed":   board.Seed(),
	})
	log.Info("starting game")

	game.director.Init(board)
	if err := game.render(false); err != nil {
		return Aborted, err
	}

	for !board.State().IsOver() {
		move, err := game.director.NextMove(ctx)
		if err != nil {
			log.WithError(err).Info("game abandoned")
			if errors.Is(err, ErrInputClosed) || errors.Is(err, context.Canceled) {
				return Aborted, nil
			}
			return Aborted, err
		}

		if err := game.play(log, move); err != nil {
			return Aborted, err
		}
	}

	outcome := game.finish(log)
	game.onGameEnd(outcome)
	return outcome, nil
}

func (game *Game) play(log logrus.FieldLogger, move Point) error {
	board := game.board

	result, err := board.Uncover(move.X, move.Y)
	if err != nil {
		return errors.Wrapf(err, "uncover %v", move)
	}
	game.moves++

	log.WithFields(logrus.Fields{
		"x":        move.X,
		"y":        move.Y,
		"result":   result.String(),
		"revealed": board.NumRevealed(),
	}).Debug("uncovered cell")

	if result == AlreadyRevealed {
		fmt.Fprintln(game.out, alreadyRevealedMessage)
	}
	if board.State().IsOver() {
		return nil
	}
	return game.render(false)
}

func (game *Game) finish(log logrus.FieldLogger) Outcome {
	var outcome Outcome
	var message string

	switch game.board.State() {
	case Won:
		outcome, message = Victory, wonMessage
	case Lost:
		outcome, message = Defeat, lostMessage
	}

	fmt.Fprintln(game.out, message)
	if err := game.render(outcome == Defeat); err != nil {
		log.WithError(err).Warn("could not draw final board")
	}

	log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"moves":   game.moves,
	}).Info("game over")

	return outcome
}

func (game *Game) render(revealMines bool) error {
	return errors.Wrap(game.renderer.Render(game.out, game.board, revealMines), "render board")
}

func (game *Game) onGameEnd(outcome Outcome) {
	game.saveSnapshot(outcome)
}

func (game *Game) saveSnapshot(outcome Outcome) {
	dir := game.config.SavedSnapshotsDir
	if dir == "" {
		return
	}

	log := game.log.WithField("dir", dir)

	stat, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0777); err != nil {
				log.WithError(err).Error("could not create snapshots directory")
				return
			}
		} else {
			log.WithError(err).Error("could not read snapshots directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Error("snapshots path is not a directory; cannot save snapshots to it")
		return
	}

	path := filepath.Join(dir, generateReplayFilename(outcome, game.now()))

	serialized, err := game.board.Snapshot().Serialize()
	if err != nil {
		log.WithError(err).Error("could not serialize snapshot")
		return
	}

	// TODO: prevent duplicate filenames when two games end within a second
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		log.WithError(err).Error("could not save snapshot")
		return
	}
	log.WithField("path", path).Info("saved snapshot")
}

func generateReplayFilename(outcome Outcome, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch outcome {
	case Victory:
		stateStr = "win"
	case Defeat:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
