// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The rrngbench command times Next and Previous for each engine and
// distribution pairing this module ships, verifies that a value drawn
// before the timed loops is drawn again after them, and writes the per-pairing
// timings to a CSV file.
//
// Usage: rrngbench [-n count] [-out path]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-rrng/reverse/rand"
	syncutil "github.com/go-rrng/reverse/sync"
	"github.com/go-rrng/reverse/write"
)

// buildInfo is computed at most once per process, the first time it is
// logged; repeat calls (there is only ever one in this command, but the
// memoization keeps the call site safe if that changes) return the same
// string without recomputing it.
var buildInfo = syncutil.Once(func() (string, error) {
	return fmt.Sprintf("%s %s/%s, %d CPUs", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU()), nil
})

var (
	n       = flag.Int("n", 1_000_000, "number of Next/Previous calls to time per pairing")
	out     = flag.String("out", "rrngbench.csv", "path to write timing results to, as CSV")
	verbose = flag.Bool("v", false, "enable debug logging")
)

type timing struct {
	name            string
	nextNanos       float64
	previousNanos   float64
	roundTripPassed bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: rrngbench [-n count] [-out path]")
		flag.PrintDefaults()
	}
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	info, _ := buildInfo()
	log.Info().Str("build", info).Int("n", *n).Msg("starting benchmark")

	results, err := runAll(*n)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}

	if err := writeCSV(*out, results); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("writing results")
	}

	log.Info().Str("path", *out).Int("pairings", len(results)).Msg("wrote benchmark results")
}

func runAll(n int) ([]timing, error) {
	var results []timing

	uniformInt, err := rand.NewUniformIntRNG(0, 1000)
	if err != nil {
		return nil, err
	}
	results = append(results, timeRRNG("uniform_int/pcg64", n, uniformInt.Next, uniformInt.Previous))

	uniformReal, err := rand.NewUniformRealRNG(0.0, 1.0)
	if err != nil {
		return nil, err
	}
	results = append(results, timeRRNG("uniform_real/pcg64", n, uniformReal.Next, uniformReal.Previous))

	normal, err := rand.NewNormalRNG(0, 1)
	if err != nil {
		return nil, err
	}
	results = append(results, timeRRNG("normal_ziggurat/pcg64", n, normal.Next, normal.Previous))

	exponential, err := rand.NewExponentialRNG(1)
	if err != nil {
		return nil, err
	}
	results = append(results, timeRRNG("exponential/pcg64", n, exponential.Next, exponential.Previous))

	polar, err := rand.NewPolarNormalRNG(0, 1)
	if err != nil {
		return nil, err
	}
	results = append(results, timeRRNG("normal_polar/pcg64", n, polar.Next, polar.Previous))

	return results, nil
}

// timeRRNG draws one value, times n calls to next, then n calls to
// previous, and checks that one further call to previous returns the value
// drawn before the timed loops.
func timeRRNG[T comparable](name string, n int, next, previous func() (T, error)) timing {
	value, err := next()
	if err != nil {
		log.Error().Str("pairing", name).Err(err).Msg("next failed mid-benchmark")
		return timing{name: name}
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		if _, err := next(); err != nil {
			log.Error().Str("pairing", name).Err(err).Msg("next failed mid-benchmark")
			return timing{name: name}
		}
	}
	nextElapsed := time.Since(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		if _, err := previous(); err != nil {
			log.Error().Str("pairing", name).Err(err).Msg("previous failed mid-benchmark")
			return timing{name: name}
		}
	}
	previousElapsed := time.Since(start)

	roundTrip, err := previous()
	passed := err == nil && roundTrip == value

	return timing{
		name:            name,
		nextNanos:       float64(nextElapsed.Nanoseconds()) / float64(n),
		previousNanos:   float64(previousElapsed.Nanoseconds()) / float64(n),
		roundTripPassed: passed,
	}
}

func writeCSV(path string, results []timing) error {
	f, err := write.TempFile("", path)
	if err != nil {
		return err
	}
	defer f.Cleanup()

	if _, err := fmt.Fprintln(f, "pairing,next_ns,previous_ns,round_trip_ok"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(f, "%s,%f,%f,%t\n", r.name, r.nextNanos, r.previousNanos, r.roundTripPassed); err != nil {
			return err
		}
	}

	return f.CloseAtomicallyReplace()
}
