package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adrian-budau/input-stream/inputstream"
)

// checkers maps a --type name to a single bounded scan of that type.
var checkers = map[string]func(*inputstream.Stream, settings) error{
	"int8":    scanAs[int8],
	"int16":   scanAs[int16],
	"int32":   scanAs[int32],
	"int64":   scanAs[int64],
	"uint8":   scanAs[uint8],
	"uint16":  scanAs[uint16],
	"uint32":  scanAs[uint32],
	"uint64":  scanAs[uint64],
	"float32": scanAs[float32],
	"float64": scanAs[float64],
	"char":    scanAs[inputstream.Char],
}

func scanAs[T inputstream.Scannable](s *inputstream.Stream, cfg settings) error {
	var err error
	if cfg.limit == 0 {
		_, err = inputstream.Scan[T](s)
	} else {
		_, err = inputstream.ScanWithLimit[T](s, cfg.limit)
	}
	return err
}

func newCheckCommand(opts *rawOptions) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "check --type T [file...]",
		Short: "Validate that every token converts to the given type",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			scan, ok := checkers[typeName]
			if !ok {
				return fmt.Errorf("unknown type %q", typeName)
			}

			failures := 0
			for _, path := range inputPaths(args) {
				ok, err := checkFile(cfg, scan, typeName, path, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if !ok {
					failures++
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d input(s) failed validation", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "int64", "Target type (int8..int64, uint8..uint64, float32, float64, char)")
	return cmd
}

// checkFile validates one input, reporting whether every token
// converted.
func checkFile(cfg settings, scan func(*inputstream.Stream, settings) error, typeName, path string, out io.Writer) (bool, error) {
	r, name, err := openInput(path)
	if err != nil {
		return false, err
	}
	defer r.Close()
	logrus.WithFields(logrus.Fields{"file": name, "type": typeName}).Debug("checking")

	s := cfg.newStream(r)
	ok := true
	ordinal := 0
	for {
		ordinal++
		serr := scan(s, cfg)
		if errors.Is(serr, inputstream.ErrUnexpectedEOF) {
			break
		}
		if serr != nil {
			// First offender only; the rest of the file is
			// unreliable past a bad token.
			fmt.Fprintf(out, "%s: token %d: %v\n", name, ordinal, serr)
			ok = false
			break
		}
	}
	if err := s.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return ok, nil
}
