package rank

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDataFormat    = errors.New("rank: malformed edge list input")
	ErrConfiguration = errors.New("rank: invalid computation parameters")
	ErrRunNotFound   = errors.New("rank: run not found")
)

// Algorithm names as persisted in run rows.
const (
	AlgorithmReference = "reference"
	AlgorithmSparse    = "sparse"
)

// Run is one persisted computation: which dataset was ranked, with
// which algorithm and parameters, and how the iteration ended.
// Iterations is zero for reference runs, whose backing library runs to
// convergence without exposing a count.
type Run struct {
	ID         string    `json:"id,omitempty"`
	Dataset    string    `json:"dataset"`
	Algorithm  string    `json:"algorithm"`
	Params     Params    `json:"params"`
	Vertices   int       `json:"vertices"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Store defines the contract for persisting and retrieving runs and
// their score tables.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Runs
	CreateRun(ctx context.Context, run *Run, scores ScoreTable) (*Run, error)
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListRuns(ctx context.Context, dataset string) ([]Run, error)
	DeleteRun(ctx context.Context, runID string) error

	// Scores
	Scores(ctx context.Context, runID string) (ScoreTable, error)
	TopScores(ctx context.Context, runID string, threshold float64, limit int) ([]Entry, error)
}
