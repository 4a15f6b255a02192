package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	board := boardWithMines(5, 5, threeMines)
	_, err := board.Uncover(4, 0)
	require.NoError(t, err)

	snapshot := board.Snapshot()
	assert.Equal(t, 3, snapshot.NumMines)
	assert.Equal(t, "O....\n#....\n##O..\n###..\n####O", snapshot.SerializedBoard)

	serialized, err := snapshot.Serialize()
	require.NoError(t, err)

	loaded, err := LoadSnapshot(serialized)
	require.NoError(t, err)
	restored, err := loaded.CreateBoard()
	require.NoError(t, err)

	assert.Equal(t, board.Mines(), restored.Mines())
	assert.Equal(t, board.NumRevealed(), restored.NumRevealed())
	assert.Equal(t, InPlay, restored.State())
	for _, cell := range board.Cells() {
		other := restored.CellAt(cell.X(), cell.Y())
		assert.Equal(t, cell.NumMines(), other.NumMines(), "%v", cell)
		assert.Equal(t, cell.IsRevealed(), other.IsRevealed(), "%v", cell)
	}

	_, err = restored.Uncover(0, 4)
	require.NoError(t, err)
	assert.Equal(t, Won, restored.State())
}

func TestLoadSnapshot(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		state BoardState
		mines int
	}{
		{
			name:  "fresh",
			in:    "seed: 4\nmines: 5\nboard: |-\n  #####\n  #####\n  #####\n  #####\n  #####\n",
			state: MinesPending,
			mines: 5,
		},
		{
			name:  "mines laid",
			in:    "seed: 4\nmines: 2\nboard: |-\n  O##\n  ###\n  ##O\n",
			state: InPlay,
			mines: 2,
		},
		{
			name:  "lost",
			in:    "seed: 4\nmines: 2\nboard: |-\n  *#.\n  ##.\n  O..\n",
			state: Lost,
			mines: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			snapshot, err := LoadSnapshot(test.in)
			require.NoError(t, err)
			assert.Equal(t, int64(4), snapshot.Seed)

			board, err := snapshot.CreateBoard()
			require.NoError(t, err)
			assert.Equal(t, test.state, board.State())
			assert.Equal(t, test.mines, board.NumMines())
		})
	}
}

func TestLoadSnapshotErrors(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		numMines int
	}{
		{"empty", "", 1},
		{"ragged", "###\n##", 1},
		{"unknown glyph", "#x#\n###", 1},
		{"two detonations", "*#*\n###", 2},
		{"full of mines", "OO\nOO", 4},
		{"mine count mismatch", "O#O\n###", 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			snapshot := &BoardSnapshot{Seed: 1, NumMines: test.numMines, SerializedBoard: test.board}
			board, err := snapshot.CreateBoard()
			assert.Error(t, err)
			assert.Nil(t, board)
		})
	}

	_, err := LoadSnapshot("board: [unterminated")
	assert.Error(t, err)
}

func TestLoadSnapshotTooManyMines(t *testing.T) {
	snapshot := &BoardSnapshot{Seed: 1, NumMines: 4, SerializedBoard: "##\n##"}
	_, err := snapshot.CreateBoard()

	var configErr *ConfigError
	assert.True(t, errors.As(err, &configErr), "%v", err)
}
