package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/termsweep/game"
)

var (
	showRevealMines bool
	showColor       bool
)

var showCmd = &cobra.Command{
	Use:   "show SNAPSHOT",
	Short: "Draw a board saved with --snapshots-dir",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(gameConfig.LogLevel); err != nil {
			return err
		}
		return showSnapshot(args[0], cmd.OutOrStdout())
	},
}

func showSnapshot(path string, out io.Writer) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read snapshot %s", path)
	}

	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return err
	}
	board, err := snapshot.CreateBoard()
	if err != nil {
		return errors.Wrapf(err, "load snapshot %s", path)
	}

	log.WithFields(logrus.Fields{
		"path":  path,
		"seed":  board.Seed(),
		"state": board.State().String(),
	}).Debug("loaded snapshot")

	fmt.Fprintf(out, "%dx%d, %d mines, seed %d: %s\n",
		board.Width(), board.Height(), board.NumMines(), board.Seed(), board.State())

	renderer := game.NewRenderer(true, showColor)
	return renderer.Render(out, board, showRevealMines || board.State() == game.Lost)
}

func init() {
	showCmd.Flags().BoolVarP(&showRevealMines, "reveal", "r", false, "Draw hidden mines")
	showCmd.Flags().BoolVar(&showColor, "color", false, "Colour the mine counts")
}
