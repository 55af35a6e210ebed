package rank

import "math"

// csr is a compressed sparse row view of the edge list, rows keyed by
// source vertex in dense index space.
type csr struct {
	n       int
	indptr  []int
	indices []int
	weights []float64
	outW    []float64 // total outgoing weight per row
}

func newCSR(edges EdgeList, index map[int64]int) *csr {
	n := len(index)
	counts := make([]int, n)
	for _, e := range edges {
		counts[index[e.Src]]++
	}

	indptr := make([]int, n+1)
	for i := 0; i < n; i++ {
		indptr[i+1] = indptr[i] + counts[i]
	}

	indices := make([]int, len(edges))
	weights := make([]float64, len(edges))
	outW := make([]float64, n)
	next := make([]int, n)
	copy(next, indptr[:n])
	for _, e := range edges {
		row := index[e.Src]
		pos := next[row]
		next[row]++
		indices[pos] = index[e.Dst]
		weights[pos] = e.Weight
		outW[row] += e.Weight
	}

	return &csr{n: n, indptr: indptr, indices: indices, weights: weights, outW: outW}
}

// PageRank runs the sparse power-iteration ranking over the edge list.
// Rank is propagated proportionally to edge weight; the mass held by
// dangling vertices is redistributed uniformly each iteration.
// Iteration stops when the L1 difference between successive rank
// vectors drops below p.Tol, or after p.MaxIter iterations, in which
// case the partial result is returned with Converged=false.
func PageRank(edges EdgeList, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	vertices := edges.Vertices()
	n := len(vertices)
	if n == 0 {
		return &Result{Scores: ScoreTable{}, Converged: true}, nil
	}

	index := make(map[int64]int, n)
	for i, v := range vertices {
		index[v] = i
	}
	g := newCSR(edges, index)

	cur := make([]float64, n)
	nxt := make([]float64, n)
	for i := range cur {
		cur[i] = 1.0 / float64(n)
	}

	res := &Result{}
	for iter := 0; iter < p.MaxIter; iter++ {
		dangling := 0.0
		for i := 0; i < n; i++ {
			if g.outW[i] <= 0 {
				dangling += cur[i]
			}
		}

		base := (1-p.Damping)/float64(n) + p.Damping*dangling/float64(n)
		for i := range nxt {
			nxt[i] = base
		}
		for i := 0; i < n; i++ {
			if g.outW[i] <= 0 {
				continue
			}
			share := p.Damping * cur[i] / g.outW[i]
			for k := g.indptr[i]; k < g.indptr[i+1]; k++ {
				nxt[g.indices[k]] += share * g.weights[k]
			}
		}

		delta := 0.0
		for i := range nxt {
			delta += math.Abs(nxt[i] - cur[i])
		}
		cur, nxt = nxt, cur
		res.Iterations = iter + 1

		if delta < p.Tol {
			res.Converged = true
			break
		}
	}

	scores := make(ScoreTable, n)
	for i, v := range vertices {
		scores[v] = cur[i]
	}
	res.Scores = scores
	return res, nil
}
