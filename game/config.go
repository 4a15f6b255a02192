package game

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	NumMines int   `yaml:"mines"`
	Seed     int64 `yaml:"seed"`

	// Print the coordinates of every mine below the board
	Debug bool `yaml:"debug"`
	// Colour counts and mines when the terminal supports it
	Color bool `yaml:"color"`

	// Name of the automatic player, empty for console input
	DirectorName string `yaml:"director"`
	LogLevel     string `yaml:"log_level"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"snapshots_dir"`

	// Snapshot to start the game from instead of a fresh board. There is no
	// flag or config key for it; tests and replays set it directly.
	Snapshot *BoardSnapshot `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		NumMines: DefaultNumMines,
		LogLevel: "info",
	}
}

// LoadGameConfig reads a YAML config file over the defaults
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}

func (config GameConfig) BoardConfig() BoardConfig {
	return BoardConfig{
		Width:    config.Width,
		Height:   config.Height,
		NumMines: config.NumMines,
		Seed:     config.Seed,
	}
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateBoard()
	}
	return NewBoard(config.BoardConfig())
}
