package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

var (
	gameConfig   = game.NewGameConfig()
	configPath   string
	directorName = newDirectorValue(consoleDirector, &gameConfig.DirectorName)
)

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a console Minesweeper game. Cells are picked by typing
their coordinates as "x y"; the first cell uncovered never holds a mine.

Run with no arguments to play the classic 5x5 board with 5 mines
	termsweep

Let the computer play for you
	termsweep --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := setupLogging(config.LogLevel); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		outcome, err := play(ctx, config, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		log.WithField("outcome", outcome.String()).Debug("exiting")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file, if any, under the flags which were
// set explicitly on the command line
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := gameConfig
	if configPath != "" {
		fileConfig, err := game.LoadGameConfig(configPath)
		if err != nil {
			return config, err
		}
		config = mergeFlags(cmd, fileConfig, gameConfig)
	}

	if config.DirectorName == "" {
		config.DirectorName = consoleDirector
	}
	if err := validateDirector(config.DirectorName); err != nil {
		return config, err
	}
	if err := config.BoardConfig().Validate(); err != nil {
		return config, err
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return config, nil
}

func mergeFlags(cmd *cobra.Command, base, flags game.GameConfig) game.GameConfig {
	changed := cmd.Flags().Changed

	if changed("width") {
		base.Width = flags.Width
	}
	if changed("height") {
		base.Height = flags.Height
	}
	if changed("mines") {
		base.NumMines = flags.NumMines
	}
	if changed("seed") {
		base.Seed = flags.Seed
	}
	if changed("debug") {
		base.Debug = flags.Debug
	}
	if changed("color") {
		base.Color = flags.Color
	}
	if changed("director") {
		base.DirectorName = flags.DirectorName
	}
	if changed("log-level") {
		base.LogLevel = flags.LogLevel
	}
	if changed("snapshots-dir") {
		base.SavedSnapshotsDir = flags.SavedSnapshotsDir
	}
	return base
}

func play(ctx context.Context, config game.GameConfig, in io.Reader, out io.Writer) (game.Outcome, error) {
	director := newDirector(config, in, out)
	return game.NewGame(config, director, out, log).Run(ctx)
}

func newDirector(config game.GameConfig, in io.Reader, out io.Writer) game.Director {
	// The director gets its own stream so that the board layout depends
	// only on the seed
	r := rand.New(rand.NewSource(config.Seed + 1))

	switch config.DirectorName {
	case randomDirector:
		return random.New(r)
	case constraintDirector:
		return constraint.New(r)
	default:
		return game.NewConsoleDirector(in, out)
	}
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file; flags override its values")
	rootCmd.PersistentFlags().StringVar(&gameConfig.LogLevel, "log-level", gameConfig.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", game.DefaultWidth, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", game.DefaultHeight, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", game.DefaultNumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&gameConfig.Debug, "debug", "d", false, "List the coordinates of every mine below the board")
	rootCmd.Flags().BoolVar(&gameConfig.Color, "color", false, "Colour the mine counts")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where the final board of each game is saved")
	rootCmd.Flags().Var(directorName, "director", `Who picks the cells to uncover.
none: read coordinates from the console
random: uncover hidden cells at random
constraint: deduce safe cells from the numbers, guessing only when stuck`)

	rootCmd.AddCommand(showCmd)
}
