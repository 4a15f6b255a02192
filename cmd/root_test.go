package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/game"
)

func TestMain(m *testing.M) {
	if err := setupLogging("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestDirectorValue(t *testing.T) {
	var name string
	value := newDirectorValue(consoleDirector, &name)
	assert.Equal(t, "none", value.String())
	assert.Equal(t, "director", value.Type())

	require.NoError(t, value.Set("constraint"))
	assert.Equal(t, "constraint", name)

	err := value.Set("psychic")
	assert.EqualError(t, err, `invalid director "psychic", expected one of constraint, none, random`)
	assert.Equal(t, "constraint", name)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 8\nheight: 6\nmines: 7\ndirector: random\nseed: 99\n"), 0644))

	t.Cleanup(func() {
		configPath = ""
		gameConfig = game.NewGameConfig()
		gameConfig.DirectorName = consoleDirector
	})

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", path, "--mines", "3"}))

	config, err := resolveConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, 8, config.Width)
	assert.Equal(t, 6, config.Height)
	assert.Equal(t, 3, config.NumMines)
	assert.Equal(t, randomDirector, config.DirectorName)
	assert.Equal(t, int64(99), config.Seed)
}

func TestPlay(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 5
	config.NumMines = 24
	config.Debug = true

	var out strings.Builder
	outcome, err := play(context.Background(), config, strings.NewReader("0 0\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, game.Victory, outcome)
	assert.Contains(t, out.String(), "Enter coordinates (x y):")
	assert.Contains(t, out.String(), "Congratulations You have cleared all the mines.")
	assert.Contains(t, out.String(), "Mines: (0 1)")
}

func TestNewDirector(t *testing.T) {
	config := game.NewGameConfig()

	for _, name := range []string{consoleDirector, randomDirector, constraintDirector} {
		config.DirectorName = name
		assert.NotNil(t, newDirector(config, strings.NewReader(""), &strings.Builder{}), name)
	}
	config.DirectorName = consoleDirector
	assert.IsType(t, &game.ConsoleDirector{}, newDirector(config, strings.NewReader(""), &strings.Builder{}))
}

func TestShowSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 12\nmines: 1\nboard: |-\n  *..\n  ...\n"), 0644))

	var out strings.Builder
	require.NoError(t, showSnapshot(path, &out))

	assert.Equal(t, ""+
		"3x2, 1 mines, seed 12: lost\n"+
		"  012\n"+
		"1|11 \n"+
		"0|*1 \n"+
		"Mines: (0 0)\n", out.String())

	assert.Error(t, showSnapshot(filepath.Join(t.TempDir(), "missing.yaml"), &out))
}
