package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/meikuraledutech/rank"
	"github.com/meikuraledutech/rank/postgres"
)

// runRequest is the body of POST /runs: a dataset name, the raw edge
// lines, and the computation to perform over them.
type runRequest struct {
	Dataset   string       `json:"dataset"`
	Algorithm string       `json:"algorithm"`
	Delimiter string       `json:"delimiter"`
	Edges     string       `json:"edges"`
	Params    *rank.Params `json:"params"`
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal().Msg("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect")
	}
	defer pool.Close()

	var store rank.Store = postgres.New(pool)

	app := fiber.New()

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", func(c fiber.Ctx) error {
		if err := store.CreateSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})

	app.Delete("/schema", func(c fiber.Ctx) error {
		if err := store.DropSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Runs ──────────────────────────────────────────────────────────
	app.Post("/runs", func(c fiber.Ctx) error {
		var req runRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		edges, err := rank.ReadEdgeList(strings.NewReader(req.Edges), req.Delimiter)
		if errors.Is(err, rank.ErrDataFormat) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		params := rank.DefaultParams()
		if req.Params != nil {
			params = *req.Params
		}

		run := &rank.Run{
			Dataset:  req.Dataset,
			Params:   params,
			Vertices: len(edges.Vertices()),
		}

		var scores rank.ScoreTable
		switch req.Algorithm {
		case rank.AlgorithmReference:
			run.Algorithm = rank.AlgorithmReference
			scores, err = rank.ReferencePageRank(edges, params)
			run.Converged = err == nil
		case rank.AlgorithmSparse, "":
			run.Algorithm = rank.AlgorithmSparse
			var res *rank.Result
			res, err = rank.PageRank(edges, params)
			if res != nil {
				scores = res.Scores
				run.Iterations = res.Iterations
				run.Converged = res.Converged
			}
		default:
			return c.Status(422).JSON(fiber.Map{"error": "unknown algorithm " + req.Algorithm})
		}
		if errors.Is(err, rank.ErrConfiguration) {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		created, err := store.CreateRun(c.Context(), run, scores)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		logger.Info().
			Str("run", created.ID).
			Str("dataset", created.Dataset).
			Str("algorithm", created.Algorithm).
			Int("vertices", created.Vertices).
			Bool("converged", created.Converged).
			Msg("run stored")

		return c.Status(201).JSON(created)
	})

	app.Get("/runs", func(c fiber.Ctx) error {
		runs, err := store.ListRuns(c.Context(), c.Query("dataset"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(runs)
	})

	app.Get("/runs/:id", func(c fiber.Ctx) error {
		run, err := store.GetRun(c.Context(), c.Params("id"))
		if errors.Is(err, rank.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(run)
	})

	app.Delete("/runs/:id", func(c fiber.Ctx) error {
		if err := store.DeleteRun(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Scores ────────────────────────────────────────────────────────
	app.Get("/runs/:id/scores", func(c fiber.Ctx) error {
		scores, err := store.Scores(c.Context(), c.Params("id"))
		if errors.Is(err, rank.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(scores)
	})

	app.Get("/runs/:id/top", func(c fiber.Ctx) error {
		threshold, err := strconv.ParseFloat(c.Query("threshold", "0"), 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid threshold"})
		}
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid limit"})
		}

		entries, err := store.TopScores(c.Context(), c.Params("id"), threshold, limit)
		if errors.Is(err, rank.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(entries)
	})

	app.Get("/runs/:id/compare/:other", func(c fiber.Ctx) error {
		a, err := store.Scores(c.Context(), c.Params("id"))
		if errors.Is(err, rank.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		b, err := store.Scores(c.Context(), c.Params("other"))
		if errors.Is(err, rank.ErrRunNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "run not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{
			"l1_distance":  rank.Distance(a, b),
			"max_abs_diff": rank.MaxDiff(a, b),
		})
	})

	addr := os.Getenv("RANK_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	logger.Fatal().Err(app.Listen(addr)).Msg("server stopped")
}
