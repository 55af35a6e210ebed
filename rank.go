package rank

import (
	"fmt"
	"slices"
)

// Edge represents a directed connection between two vertices.
// Weight defaults to 1.0 when the input file carries no weight field.
type Edge struct {
	Src    int64   `json:"src"`
	Dst    int64   `json:"dst"`
	Weight float64 `json:"weight"`
}

// EdgeList is the raw input representation of a graph.
// Duplicates are permitted and no ordering is assumed.
type EdgeList []Edge

// Vertices returns the sorted set of distinct vertex ids appearing in
// the edge list, as either endpoint.
func (el EdgeList) Vertices() []int64 {
	seen := make(map[int64]struct{}, 2*len(el))
	for _, e := range el {
		seen[e.Src] = struct{}{}
		seen[e.Dst] = struct{}{}
	}
	out := make([]int64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// ScoreTable maps each distinct vertex of an edge list to its rank
// score. Tables are created fresh by each computation and only read
// afterwards.
type ScoreTable map[int64]float64

// Entry is one reporter output row.
type Entry struct {
	Vertex int64   `json:"vertex"`
	Score  float64 `json:"score"`
}

// Params holds the shared configuration of the reference and sparse
// computations.
type Params struct {
	Damping float64 `json:"damping"`
	MaxIter int     `json:"max_iter"`
	Tol     float64 `json:"tol"`
}

// DefaultParams returns damping=0.85, max_iter=100, tol=1e-5.
func DefaultParams() Params {
	return Params{Damping: 0.85, MaxIter: 100, Tol: 1e-5}
}

// Validate checks the params before any computation starts.
// Returns ErrConfiguration wrapped with the offending field.
func (p Params) Validate() error {
	if p.Damping <= 0 || p.Damping >= 1 {
		return fmt.Errorf("rank: damping %v out of (0, 1): %w", p.Damping, ErrConfiguration)
	}
	if p.MaxIter <= 0 {
		return fmt.Errorf("rank: max_iter %d is not positive: %w", p.MaxIter, ErrConfiguration)
	}
	if p.Tol <= 0 {
		return fmt.Errorf("rank: tol %v is not positive: %w", p.Tol, ErrConfiguration)
	}
	return nil
}

// Result is the output of the sparse computation.
// When Converged is false the scores are the partial result after
// MaxIter iterations, returned as-is.
type Result struct {
	Scores     ScoreTable `json:"scores"`
	Iterations int        `json:"iterations"`
	Converged  bool       `json:"converged"`
}
