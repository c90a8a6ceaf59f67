package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"checkers/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "depth", "Experiment to run: depth or frame")
	out := flag.String("out", experiments.OutputDir, "Directory for experiment results")
	debug := flag.Bool("debug", false, "Log every move and search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	experiments.OutputDir = *out

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *experiment {
	case "depth":
		err = experiments.RunDepthExperiment(ctx)
	case "frame":
		err = experiments.RunFrameExperiment(ctx)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
}
