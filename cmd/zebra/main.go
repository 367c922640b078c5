// Command zebra solves the classic five-houses zebra puzzle and prints
// the resulting grid. Use --trace to watch every deduction, or
// --verbose for structured debug logging.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlogic/puzzle"
	"github.com/katalvlaran/lvlogic/trace"
	"github.com/katalvlaran/lvlogic/zebra"
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
		Use:   "zebra",
		Short: "Solve the classic five-houses zebra puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			solutions := zebra.New().Solve(opts...)
			for _, s := range solutions {
				fmt.Fprintln(cmd.OutOrStdout(), zebra.Render(s))
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
