package rank

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
)

// Top returns the entries with score >= threshold, ordered by
// descending score, ties broken by ascending vertex id.
func Top(scores ScoreTable, threshold float64) []Entry {
	entries := make([]Entry, 0, len(scores))
	for v, s := range scores {
		if s >= threshold {
			entries = append(entries, Entry{Vertex: v, Score: s})
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Vertex, b.Vertex)
	})
	return entries
}

// Above yields the same sequence as Top, lazily consumed.
func Above(scores ScoreTable, threshold float64) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range Top(scores, threshold) {
			if !yield(e) {
				return
			}
		}
	}
}

// Best returns the highest-scoring entry, ties broken by ascending
// vertex id. ok is false for an empty table.
func Best(scores ScoreTable) (best Entry, ok bool) {
	for v, s := range scores {
		if !ok || s > best.Score || (s == best.Score && v < best.Vertex) {
			best = Entry{Vertex: v, Score: s}
			ok = true
		}
	}
	return best, ok
}

// Report writes one line per entry at or above threshold, in Top
// order, and returns the number of lines written. Inputs are not
// mutated.
func Report(w io.Writer, scores ScoreTable, threshold float64) (int, error) {
	count := 0
	for e := range Above(scores, threshold) {
		if _, err := fmt.Fprintf(w, "Best vertex is %d with score of %v\n", e.Vertex, e.Score); err != nil {
			return count, fmt.Errorf("rank: write report: %w", err)
		}
		count++
	}
	return count, nil
}

// Distance returns the L1 distance between two score tables over the
// keys of a. Zero when a is empty.
func Distance(a, b ScoreTable) float64 {
	d := 0.0
	for v := range a {
		d += math.Abs(a[v] - b[v])
	}
	return d
}

// MaxDiff returns the largest absolute per-vertex difference over the
// shared keys of a and b.
func MaxDiff(a, b ScoreTable) float64 {
	max := 0.0
	for v, s := range a {
		if t, ok := b[v]; ok {
			if d := math.Abs(s - t); d > max {
				max = d
			}
		}
	}
	return max
}
