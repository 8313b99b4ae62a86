package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adrian-budau/input-stream/inputstream"
)

func newTokensCommand(opts *rawOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Print each scanned token on its own line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			for _, path := range inputPaths(args) {
				r, name, err := openInput(path)
				if err != nil {
					return err
				}
				logrus.WithField("file", name).Debug("scanning")

				s := cfg.newStream(r)
				for {
					tok, err := cfg.scanString(s)
					if errors.Is(err, inputstream.ErrUnexpectedEOF) {
						break
					}
					if err != nil {
						r.Close()
						return fmt.Errorf("%s: %w", name, err)
					}
					fmt.Fprintln(out, tok)
				}
				if err := s.Err(); err != nil {
					r.Close()
					return fmt.Errorf("%s: %w", name, err)
				}
				r.Close()
			}
			return nil
		},
	}
}
