package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	promptMessage       = "Enter coordinates (x y):"
	invalidInputMessage = "Invalid input. Please enter coordinates in the format 'x y'."
	invalidXMessage     = "Invalid x coordinate."
	invalidYMessage     = "Invalid y coordinate."
)

type inputLine struct {
	text string
	err  error
}

// ConsoleDirector reads moves typed by a person. Malformed lines and
// coordinates outside the board are answered with a message and a new prompt.
type ConsoleDirector struct {
	in  io.Reader
	out io.Writer

	lines         chan inputLine
	width, height int
}

func NewConsoleDirector(in io.Reader, out io.Writer) *ConsoleDirector {
	return &ConsoleDirector{in: in, out: out}
}

func (director *ConsoleDirector) Init(view BoardView) {
	director.width, director.height = view.Width(), view.Height()

	// The reader is shared between games, so it is only started once. It stays
	// blocked in Scan after the context is cancelled until the process exits.
	if director.lines == nil {
		director.lines = make(chan inputLine)
		go director.readLines()
	}
}

func (director *ConsoleDirector) readLines() {
	defer close(director.lines)

	scanner := bufio.NewScanner(director.in)
	for scanner.Scan() {
		director.lines <- inputLine{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		director.lines <- inputLine{err: errors.Wrap(err, "read console input")}
	}
}

func (director *ConsoleDirector) NextMove(ctx context.Context) (Point, error) {
	for {
		fmt.Fprintln(director.out, promptMessage)

		var line inputLine
		var ok bool
		select {
		case <-ctx.Done():
			return Point{}, ctx.Err()
		case line, ok = <-director.lines:
		}

		if !ok {
			return Point{}, ErrInputClosed
		}
		if line.err != nil {
			return Point{}, line.err
		}

		p, problem := parseCoordinates(line.text, director.width, director.height)
		if problem != "" {
			fmt.Fprintln(director.out, problem)
			continue
		}
		return p, nil
	}
}

// parseCoordinates reads "x y" and checks it against the board size. The
// returned problem is the message to show the player, empty on success.
func parseCoordinates(text string, width, height int) (Point, string) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Point{}, invalidInputMessage
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil || x < 0 || x >= width {
		return Point{}, invalidXMessage
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil || y < 0 || y >= height {
		return Point{}, invalidYMessage
	}

	return Point{x, y}, ""
}
