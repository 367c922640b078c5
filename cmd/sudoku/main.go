// Command sudoku solves a 9×9 sudoku grid given as an 81-character
// argument ('1'..'9' for givens, '.' or '0' for blanks). Without an
// argument it solves the bundled 17-given demo grid.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlogic/puzzle"
	"github.com/katalvlaran/lvlogic/sudoku"
	"github.com/katalvlaran/lvlogic/trace"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		traceText bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "sudoku [grid]",
		Short: "Solve a 9×9 sudoku by constraint propagation and search",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid := sudoku.Demo
			if len(args) == 1 {
				grid = args[0]
			}

			var opts []puzzle.Option
			switch {
			case verbose:
				log := logrus.New()
				log.SetOutput(cmd.ErrOrStderr())
				log.SetLevel(logrus.DebugLevel)
				opts = append(opts, puzzle.WithObserver(trace.NewLogger(log)))
			case traceText:
				opts = append(opts, puzzle.WithObserver(trace.NewWriter(cmd.ErrOrStderr())))
			}

			solutions, err := sudoku.Solve(grid, opts...)
			if err != nil {
				return err
			}

			for _, s := range solutions {
				fmt.Fprintln(cmd.OutOrStdout(), sudoku.Render(s))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d solution(s)\n", len(solutions))

			return nil
		},
	}

	cmd.Flags().BoolVar(&traceText, "trace", false,
		"print a plain-text trace of every deduction to stderr")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log solver events through logrus at debug level")

	return cmd
}
