package postgres

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/rank"
)

// Scores returns the full score table of a run.
// Returns ErrRunNotFound if the run doesn't exist.
func (s *PGStore) Scores(ctx context.Context, runID string) (rank.ScoreTable, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT vertex, score FROM rank_scores WHERE run_id = $1`, runID)
	if err != nil {
		return nil, fmt.Errorf("rank: query scores: %w", err)
	}
	defer rows.Close()

	scores := rank.ScoreTable{}
	for rows.Next() {
		var vertex int64
		var score float64
		if err := rows.Scan(&vertex, &score); err != nil {
			return nil, fmt.Errorf("rank: scan score: %w", err)
		}
		scores[vertex] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rank: rows scores: %w", err)
	}

	return scores, nil
}

// TopScores returns up to limit entries with score >= threshold,
// ordered by descending score, ties by ascending vertex — the
// reporter ordering expressed in SQL. limit <= 0 means no limit.
// Returns ErrRunNotFound if the run doesn't exist.
func (s *PGStore) TopScores(ctx context.Context, runID string, threshold float64, limit int) ([]rank.Entry, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	query := `SELECT vertex, score FROM rank_scores
	          WHERE run_id = $1 AND score >= $2
	          ORDER BY score DESC, vertex ASC`
	args := []any{runID, threshold}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("rank: query top scores: %w", err)
	}
	defer rows.Close()

	entries := []rank.Entry{}
	for rows.Next() {
		var e rank.Entry
		if err := rows.Scan(&e.Vertex, &e.Score); err != nil {
			return nil, fmt.Errorf("rank: scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rank: rows entries: %w", err)
	}

	return entries, nil
}
