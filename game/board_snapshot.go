package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a YAML record of a board. Each row of SerializedBoard holds
// one glyph per cell, top row first:
//
//	#  hidden cell
//	.  revealed cell
//	O  hidden mine
//	*  revealed (detonated) mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	NumMines        int    `yaml:"mines"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	var rows strings.Builder
	for y, row := range board.cells {
		if y > 0 {
			rows.WriteString("\n")
		}
		for x := range row {
			rows.WriteString(row[x].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		NumMines:        board.numMines,
		SerializedBoard: rows.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshal board snapshot")
	}
	return string(out), nil
}

// CreateBoard rebuilds the recorded board. A snapshot holding any mine or any
// revealed cell is past its first move, so its mines count as placed.
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	height := len(rows)
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, errors.New("snapshot board is empty")
	}

	board := createBoard(width, height, snapshot.NumMines, snapshot.Seed)

	var mines []Point
	hasRevealed := false
	numDetonated := 0

	for y, row := range rows {
		if len([]rune(row)) != width {
			return nil, errors.Errorf("snapshot row %d has %d cells, expected %d", y, len([]rune(row)), width)
		}

		for x, c := range []rune(row) {
			cell := board.CellAt(x, y)
			if !cell.deserialize(c) {
				return nil, errors.Errorf("snapshot cell (%d, %d) has unknown glyph %q", x, y, c)
			}

			switch {
			case cell.isMine:
				mines = append(mines, Point{x, y})
				if cell.isRevealed {
					numDetonated++
				}
			case cell.isRevealed:
				hasRevealed = true
				board.numSafeRevealed++
			}
		}
	}

	if len(mines) > 0 && len(mines) != snapshot.NumMines {
		return nil, errors.Errorf("snapshot board has %d mines, expected %d", len(mines), snapshot.NumMines)
	}
	if len(mines) > 0 || hasRevealed {
		board.numMines = len(mines)
		board.fillMines(mines)
	}
	board.gameOver = numDetonated > 0

	if numDetonated > 1 {
		return nil, errors.Errorf("snapshot has %d detonated mines", numDetonated)
	}
	if err := (BoardConfig{Width: width, Height: height, NumMines: board.numMines}).Validate(); err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "unmarshal board snapshot")
	}
	return &snapshot, nil
}
