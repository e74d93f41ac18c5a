// Command locbatch localizes spots in a frame sequence (a directory of
// images, or a single file) using the concurrent batch pipeline and writes
// the feature table as CSV.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"spotfinder/internal/export"
	"spotfinder/internal/frame"
	"spotfinder/internal/locate"
)

func main() {
	in := flag.String("in", "", "Frame sequence: directory of images or a single image file")
	out := flag.String("out", "features.csv", "Output CSV path")
	radius := flag.Int("radius", 3, "Feature disk radius in pixels")
	minSignal := flag.Float64("signal", 0, "Minimum peak intensity for candidates")
	mass := flag.Float64("mass", 0, "Minimum integrated intensity of a feature")
	noBandpass := flag.Bool("no-bandpass", false, "Search raw frames without bandpass filtering")
	workers := flag.Int("workers", 0, "Worker pool size (0 = one per CPU core)")
	verbose := flag.Bool("v", false, "Per-frame progress logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if *in == "" {
		log.Fatal().Msg("missing -in: frame sequence path required")
	}

	frames, err := frame.LoadStack(*in)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load frame sequence")
	}
	log.Info().Int("frames", len(frames)).Str("path", *in).Msg("frame sequence loaded")

	params := locate.DefaultParams().
		WithRadius(*radius).
		WithThresholds(*minSignal, *mass).
		WithBandpass(!*noBandpass)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	feats, err := locate.Batch(ctx, frames, params, locate.BatchOptions{
		Workers: *workers,
		Logger:  &log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("batch localization failed")
	}
	log.Info().
		Int("features", len(feats)).
		Dur("elapsed", time.Since(start)).
		Msg("batch localization done")

	file, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create output file")
	}
	defer file.Close()

	if err := export.WriteCSV(file, feats, true); err != nil {
		log.Fatal().Err(err).Msg("failed to write feature table")
	}
	log.Info().Str("path", *out).Msg("feature table written")
}
