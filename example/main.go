package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meikuraledutech/rank"
	"github.com/meikuraledutech/rank/postgres"
)

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// Wire up the postgres implementation behind the Store interface.
	var store rank.Store = postgres.New(pool)

	// 1. Create tables
	if err := store.CreateSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}
	fmt.Println("schema created")

	// ── Load a small edge list ────────────────────────────────────────
	edges, err := rank.ReadEdgeList(strings.NewReader("1\t2\n2\t3\n3\t1\n3\t2\n"), "\t")
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	params := rank.DefaultParams()

	// ── Sparse computation ────────────────────────────────────────────
	res, err := rank.PageRank(edges, params)
	if err != nil {
		log.Fatalf("pagerank: %v", err)
	}
	fmt.Printf("sparse done in %d iterations (converged=%v)\n", res.Iterations, res.Converged)

	sparseRun, err := store.CreateRun(ctx, &rank.Run{
		Dataset:    "triangle",
		Algorithm:  rank.AlgorithmSparse,
		Params:     params,
		Vertices:   len(edges.Vertices()),
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}, res.Scores)
	if err != nil {
		log.Fatalf("create run: %v", err)
	}
	fmt.Printf("stored sparse run %s\n", sparseRun.ID)

	// ── Reference computation ─────────────────────────────────────────
	ref, err := rank.ReferencePageRank(edges, params)
	if err != nil {
		log.Fatalf("reference: %v", err)
	}

	refRun, err := store.CreateRun(ctx, &rank.Run{
		Dataset:   "triangle",
		Algorithm: rank.AlgorithmReference,
		Params:    params,
		Vertices:  len(edges.Vertices()),
		Converged: true,
	}, ref)
	if err != nil {
		log.Fatalf("create run: %v", err)
	}
	fmt.Printf("stored reference run %s\n", refRun.ID)

	// ── Compare in memory ─────────────────────────────────────────────
	fmt.Printf("l1 distance: %v, max abs diff: %v\n",
		rank.Distance(ref, res.Scores), rank.MaxDiff(ref, res.Scores))

	// ── Report from the store ─────────────────────────────────────────
	entries, err := store.TopScores(ctx, sparseRun.ID, 0, 3)
	if err != nil {
		log.Fatalf("top scores: %v", err)
	}
	for _, e := range entries {
		fmt.Printf("Best vertex is %d with score of %v\n", e.Vertex, e.Score)
	}

	// ── Cleanup ───────────────────────────────────────────────────────
	for _, id := range []string{sparseRun.ID, refRun.ID} {
		if err := store.DeleteRun(ctx, id); err != nil {
			log.Fatalf("delete: %v", err)
		}
	}
	fmt.Println("runs deleted")
}
