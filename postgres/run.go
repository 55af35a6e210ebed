package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/rank"
)

// CreateRun saves a run row plus its full score table in one
// transaction. A run without an ID gets an auto-generated UUID.
// Returns the run with the ID filled in.
func (s *PGStore) CreateRun(ctx context.Context, run *rank.Run, scores rank.ScoreTable) (*rank.Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO rank_runs (id, dataset, algorithm, damping, max_iter, tol, vertices, iterations, converged)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		run.ID, run.Dataset, run.Algorithm,
		run.Params.Damping, run.Params.MaxIter, run.Params.Tol,
		run.Vertices, run.Iterations, run.Converged,
	); err != nil {
		return nil, fmt.Errorf("rank: insert run: %w", err)
	}

	for vertex, score := range scores {
		if _, err := tx.Exec(ctx,
			`INSERT INTO rank_scores (run_id, vertex, score) VALUES ($1, $2, $3)`,
			run.ID, vertex, score,
		); err != nil {
			return nil, fmt.Errorf("rank: insert score for vertex %d: %w", vertex, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("rank: commit: %w", err)
	}

	return run, nil
}

// GetRun fetches a single run by its ID.
// Returns ErrRunNotFound if the run doesn't exist.
func (s *PGStore) GetRun(ctx context.Context, runID string) (*rank.Run, error) {
	var r rank.Run
	err := s.db.QueryRow(ctx,
		`SELECT id, dataset, algorithm, damping, max_iter, tol, vertices, iterations, converged, created_at
		 FROM rank_runs WHERE id = $1`, runID,
	).Scan(&r.ID, &r.Dataset, &r.Algorithm,
		&r.Params.Damping, &r.Params.MaxIter, &r.Params.Tol,
		&r.Vertices, &r.Iterations, &r.Converged, &r.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, rank.ErrRunNotFound
		}
		return nil, fmt.Errorf("rank: get run: %w", err)
	}

	return &r, nil
}

// ListRuns returns all runs for a dataset, ordered by created_at.
// An empty dataset lists every run. Returns an empty slice (not nil)
// if none found.
func (s *PGStore) ListRuns(ctx context.Context, dataset string) ([]rank.Run, error) {
	query := `SELECT id, dataset, algorithm, damping, max_iter, tol, vertices, iterations, converged, created_at
	          FROM rank_runs WHERE ($1 = '' OR dataset = $1) ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, dataset)
	if err != nil {
		return nil, fmt.Errorf("rank: list runs: %w", err)
	}
	defer rows.Close()

	runs := []rank.Run{}
	for rows.Next() {
		var r rank.Run
		if err := rows.Scan(&r.ID, &r.Dataset, &r.Algorithm,
			&r.Params.Damping, &r.Params.MaxIter, &r.Params.Tol,
			&r.Vertices, &r.Iterations, &r.Converged, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("rank: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rank: rows runs: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run and its scores (cascade-deleted by the DB).
// No error if the run doesn't exist.
func (s *PGStore) DeleteRun(ctx context.Context, runID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM rank_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("rank: delete run: %w", err)
	}
	return nil
}
