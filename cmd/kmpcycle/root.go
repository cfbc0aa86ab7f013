package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/kmpcycle/kmp"
)

// newRootCmd builds the kmpcycle command. progName is echoed in the usage
// line printed for a wrong positional argument count.
//
// Flag parsing is disabled: every argument, including ones starting with
// '-', counts as positional.
func newRootCmd(progName string, logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &cobra.Command{
		Use:   "kmpcycle STR",
		Short: "Check whether STR is a repetition of a shorter substring",
		Long: `kmpcycle builds the KMP failure table of STR and decides whether STR
is cyclic, i.e. two or more repetitions of a shorter period.

Output (stdout):
  line 1: the failure table, e.g. [0, 0, 1, 2, 3, 4]
  line 2: true or false`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), logger, progName, args)
		},
	}
}

// runCheck prints the usage line unless exactly one argument is given;
// otherwise it prints the failure table and the verdict.
func runCheck(w io.Writer, logger *zap.Logger, progName string, args []string) error {
	if len(args) != 1 {
		logger.Debug("wrong argument count", zap.Int("args", len(args)))
		_, err := fmt.Fprintf(w, "Usage: %s STR\n", progName)
		return err
	}

	a := kmp.Analyze(args[0])
	logger.Debug("analyzed input",
		zap.Int("length", a.Table.Len()),
		zap.Int("border", a.Table.Border()),
		zap.Bool("cyclic", a.Cyclic),
		zap.Int("period", a.Period.Length),
		zap.Int("repeats", a.Period.Repeats),
	)

	if _, err := fmt.Fprintln(w, a.Table.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if _, err := fmt.Fprintln(w, a.Cyclic); err != nil {
		return fmt.Errorf("write verdict: %w", err)
	}

	return nil
}
