package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS rank_runs (
    id         TEXT PRIMARY KEY,
    dataset    TEXT NOT NULL,
    algorithm  TEXT NOT NULL,
    damping    DOUBLE PRECISION NOT NULL,
    max_iter   INTEGER NOT NULL,
    tol        DOUBLE PRECISION NOT NULL,
    vertices   INTEGER NOT NULL,
    iterations INTEGER NOT NULL DEFAULT 0,
    converged  BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS rank_scores (
    run_id TEXT NOT NULL REFERENCES rank_runs(id) ON DELETE CASCADE,
    vertex BIGINT NOT NULL,
    score  DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (run_id, vertex)
);

CREATE INDEX IF NOT EXISTS idx_rank_runs_dataset ON rank_runs(dataset);
CREATE INDEX IF NOT EXISTS idx_rank_scores_run   ON rank_scores(run_id, score DESC, vertex ASC);
`

// CreateSchema creates the rank_runs and rank_scores tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the rank_scores and rank_runs tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS rank_scores, rank_runs CASCADE;`)
	return err
}
