// inscan - whitespace-delimited token scanning over files or stdin.
//
// Usage:
//
//	inscan tokens [file...]          Print each token on its own line
//	inscan sum [--ints] [file...]    Numeric aggregation over all tokens
//	inscan check --type T [file...]  Validate every token converts to T
//	inscan version                   Print version info
//
// Every scan goes through the bounded variant (--limit, default 1MiB)
// so untrusted input cannot force unbounded buffering. If no file is
// given, reads from stdin; "-" also names stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "inscan:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rawOptions{}

	cmd := &cobra.Command{
		Use:           "inscan",
		Short:         "Scan whitespace-delimited tokens from files or stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(os.Stderr)
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.limit, "limit", defaultLimit, "Per-token scan budget (human size, 0 = unlimited)")
	flags.StringVar(&opts.buffer, "buffer", defaultBuffer, "Initial read buffer size (human size)")
	flags.StringVar(&opts.delims, "delims", "", "Replacement delimiter byte set")
	flags.StringVar(&opts.config, "config", "", "Path to TOML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newTokensCommand(opts),
		newSumCommand(opts),
		newCheckCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// inputPaths normalizes the positional file arguments: no arguments
// means stdin.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// openInput opens a named input, with "-" meaning stdin.
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inscan %s\n", version)
		},
	}
}
