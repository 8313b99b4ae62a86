package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/adrian-budau/input-stream/inputstream"
)

type sumOptions struct {
	ints bool
}

// fileStats aggregates one input's numeric tokens. Integer min/max are
// tracked separately from the float pair: float64 rounds past 2^53 and
// an out-of-range float→int conversion at the int64 extremes flips
// sign.
type fileStats struct {
	count int64
	sum   float64
	isum  int64 // wraps on int64 overflow
	min   float64
	max   float64
	imin  int64
	imax  int64
}

func newFileStats() fileStats {
	return fileStats{
		min:  math.Inf(1),
		max:  math.Inf(-1),
		imin: math.MaxInt64,
		imax: math.MinInt64,
	}
}

func (st *fileStats) add(v float64, iv int64) {
	st.count++
	st.sum += v
	st.isum += iv
	if v < st.min {
		st.min = v
	}
	if v > st.max {
		st.max = v
	}
	if iv < st.imin {
		st.imin = iv
	}
	if iv > st.imax {
		st.imax = iv
	}
}

func (st *fileStats) merge(other fileStats) {
	st.count += other.count
	st.sum += other.sum
	st.isum += other.isum
	if other.min < st.min {
		st.min = other.min
	}
	if other.max > st.max {
		st.max = other.max
	}
	if other.imin < st.imin {
		st.imin = other.imin
	}
	if other.imax > st.imax {
		st.imax = other.imax
	}
}

func newSumCommand(opts *rawOptions) *cobra.Command {
	var sumOpts sumOptions

	cmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Aggregate all numeric tokens: count/sum/min/max/mean",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			paths := inputPaths(args)

			// One worker per file; stdin stays on the caller's
			// goroutine ordering since it can appear at most once.
			results := make([]fileStats, len(paths))
			var g errgroup.Group
			for i, path := range paths {
				i, path := i, path
				g.Go(func() error {
					st, err := sumFile(cfg, sumOpts, path)
					if err != nil {
						return err
					}
					results[i] = st
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			// Merge in input order so the output is deterministic.
			total := newFileStats()
			for _, st := range results {
				total.merge(st)
			}
			printStats(cmd.OutOrStdout(), sumOpts, total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sumOpts.ints, "ints", false, "Scan tokens as int64 instead of float64 (sum wraps on overflow)")
	return cmd
}

func sumFile(cfg settings, opts sumOptions, path string) (fileStats, error) {
	r, name, err := openInput(path)
	if err != nil {
		return fileStats{}, err
	}
	defer r.Close()
	logrus.WithField("file", name).Debug("summing")

	st := newFileStats()
	s := cfg.newStream(r)
	for {
		var v float64
		var iv int64
		var serr error
		if opts.ints {
			iv, serr = scanNumber[int64](cfg, s)
			v = float64(iv)
		} else {
			v, serr = scanNumber[float64](cfg, s)
		}
		if errors.Is(serr, inputstream.ErrUnexpectedEOF) {
			break
		}
		if serr != nil {
			return fileStats{}, fmt.Errorf("%s: token %d: %w", name, st.count+1, serr)
		}
		st.add(v, iv)
	}
	if err := s.Err(); err != nil {
		return fileStats{}, fmt.Errorf("%s: %w", name, err)
	}
	return st, nil
}

func scanNumber[T int64 | float64](cfg settings, s *inputstream.Stream) (T, error) {
	if cfg.limit == 0 {
		return inputstream.Scan[T](s)
	}
	return inputstream.ScanWithLimit[T](s, cfg.limit)
}

func printStats(w io.Writer, opts sumOptions, st fileStats) {
	if st.count == 0 {
		fmt.Fprintln(w, "count 0")
		return
	}
	fmt.Fprintf(w, "count %d\n", st.count)
	if opts.ints {
		fmt.Fprintf(w, "sum   %d\n", st.isum)
		fmt.Fprintf(w, "min   %d\n", st.imin)
		fmt.Fprintf(w, "max   %d\n", st.imax)
	} else {
		fmt.Fprintf(w, "sum   %g\n", st.sum)
		fmt.Fprintf(w, "min   %g\n", st.min)
		fmt.Fprintf(w, "max   %g\n", st.max)
	}
	fmt.Fprintf(w, "mean  %g\n", st.sum/float64(st.count))
}
