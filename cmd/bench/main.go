// bench - comparative scanning benchmark harness
//
// Mirrors the library's benchmark pair against a fixture file on disk:
//
//	bench gen -n 250000 -out fixtures/numbers   Generate a number fixture
//	bench run -in fixtures/numbers -iters 20    Time scan vs bufio baseline
//
// The run subcommand XOR-folds every number with both implementations,
// verifies they agree, and prints mean/median/p95 latency per variant.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/adrian-budau/input-stream/inputstream"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	var err error
	switch os.Args[1] {
	case "gen":
		err = cmdGen(os.Args[2:])
	case "run":
		err = cmdRun(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bench gen -n N -out PATH | bench run -in PATH -iters M")
}

func cmdGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	n := fs.Int("n", 250000, "how many numbers to generate")
	out := fs.String("out", "fixtures/numbers", "output path")
	seed := fs.Int64("seed", 42, "PRNG seed")
	fs.Parse(args)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	rng := rand.New(rand.NewSource(*seed))
	var sum int32
	for i := 0; i < *n; i++ {
		v := int32(rng.Uint32())
		sum ^= v
		fmt.Fprintf(w, "%d", v)
		if i%10 == 9 {
			w.WriteByte('\n')
		} else {
			w.WriteByte(' ')
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("wrote %d numbers to %s (xor %d)\n", *n, *out, sum)
	return nil
}

func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	in := fs.String("in", "fixtures/numbers", "fixture path")
	iters := fs.Int("iters", 20, "timed iterations per variant")
	limit := fs.Int("limit", 0, "per-token scan budget, 0 = unlimited")
	fs.Parse(args)

	if *iters < 1 {
		return errors.New("iters must be positive")
	}

	// Verify once that both implementations agree on the fixture.
	scanCount, scanSum, err := scanFold(*in, *limit)
	if err != nil {
		return err
	}
	baseCount, baseSum, err := baselineFold(*in)
	if err != nil {
		return err
	}
	if scanCount != baseCount || scanSum != baseSum {
		return fmt.Errorf("implementations disagree: scan (%d, %d) vs baseline (%d, %d)",
			scanCount, scanSum, baseCount, baseSum)
	}
	fmt.Printf("fixture: %d numbers, xor %d\n\n", scanCount, scanSum)

	scanTimes, err := timeIterations(*iters, func() error {
		_, _, err := scanFold(*in, *limit)
		return err
	})
	if err != nil {
		return err
	}
	baseTimes, err := timeIterations(*iters, func() error {
		_, _, err := baselineFold(*in)
		return err
	})
	if err != nil {
		return err
	}

	printSummary("inputstream", scanTimes)
	printSummary("bufio+strconv", baseTimes)
	return nil
}

func scanFold(path string, limit int) (int, int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	s := inputstream.NewStream(f)
	var sum int32
	count := 0
	for !s.AtEnd() {
		var v int32
		var err error
		if limit > 0 {
			v, err = inputstream.ScanWithLimit[int32](s, limit)
		} else {
			v, err = inputstream.Scan[int32](s)
		}
		if err != nil {
			return 0, 0, fmt.Errorf("scan number %d: %w", count+1, err)
		}
		sum ^= v
		count++
	}
	return count, sum, nil
}

func baselineFold(path string) (int, int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	var sum int32
	count := 0
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("parse number %d: %w", count+1, err)
		}
		sum ^= int32(v)
		count++
	}
	return count, sum, sc.Err()
}

func timeIterations(iters int, fn func() error) ([]float64, error) {
	times := make([]float64, 0, iters)
	for i := 0; i < iters; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return nil, err
		}
		times = append(times, float64(time.Since(start).Microseconds()))
	}
	return times, nil
}

func printSummary(name string, times []float64) {
	mean, _ := stats.Mean(times)
	median, _ := stats.Median(times)
	p95, _ := stats.Percentile(times, 95)
	fmt.Printf("%-14s mean %.0fus  median %.0fus  p95 %.0fus\n", name, mean, median, p95)
}
