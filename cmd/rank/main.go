package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/meikuraledutech/rank"
)

func main() {
	damping := flag.Float64("damping", 0.85, "damping factor in (0, 1)")
	maxIter := flag.Int("max-iter", 100, "iteration cap")
	tol := flag.Float64("tol", 1e-5, "convergence tolerance")
	threshold := flag.Float64("threshold", math.NaN(), "report every vertex with score >= threshold (default: best only)")
	delim := flag.String("d", "\t", "field delimiter of the edge list")
	reference := flag.Bool("reference", false, "also run the gonum reference and log the numeric comparison")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rank [flags] <edgelist>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	params := rank.Params{Damping: *damping, MaxIter: *maxIter, Tol: *tol}

	edges, err := rank.LoadEdgeList(flag.Arg(0), *delim)
	if err != nil {
		logger.Fatal().Err(err).Msg("load edge list")
	}
	logger.Info().Int("edges", len(edges)).Int("vertices", len(edges.Vertices())).Msg("dataset loaded")

	res, err := rank.PageRank(edges, params)
	if err != nil {
		logger.Fatal().Err(err).Msg("pagerank")
	}
	logger.Info().Int("iterations", res.Iterations).Bool("converged", res.Converged).Msg("sparse pagerank done")

	if *reference {
		ref, err := rank.ReferencePageRank(edges, params)
		if err != nil {
			logger.Fatal().Err(err).Msg("reference pagerank")
		}
		logger.Info().
			Float64("l1_distance", rank.Distance(ref, res.Scores)).
			Float64("max_abs_diff", rank.MaxDiff(ref, res.Scores)).
			Msg("reference comparison")
	}

	cutoff := *threshold
	if math.IsNaN(cutoff) {
		best, ok := rank.Best(res.Scores)
		if !ok {
			logger.Fatal().Msg("empty score table")
		}
		cutoff = best.Score
	}

	if _, err := rank.Report(os.Stdout, res.Scores, cutoff); err != nil {
		logger.Fatal().Err(err).Msg("report")
	}
}
