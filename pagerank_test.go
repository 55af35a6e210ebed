package rank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadKarate(t *testing.T) EdgeList {
	t.Helper()
	edges, err := LoadEdgeList("testdata/karate.tsv", "\t")
	require.NoError(t, err)
	return edges
}

// undirected returns the edge list with every edge mirrored, so no
// vertex is dangling.
func undirected(edges EdgeList) EdgeList {
	out := make(EdgeList, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e, Edge{Src: e.Dst, Dst: e.Src, Weight: e.Weight})
	}
	return out
}

func TestPageRankChain(t *testing.T) {
	edges, err := ReadEdgeList(strings.NewReader("1\t2\n2\t3\n"), "\t")
	require.NoError(t, err)

	res, err := PageRank(edges, DefaultParams())
	require.NoError(t, err)
	require.True(t, res.Converged)

	require.Len(t, res.Scores, 3)
	sum := 0.0
	for _, v := range []int64{1, 2, 3} {
		score, ok := res.Scores[v]
		require.True(t, ok, "missing vertex %d", v)
		assert.Greater(t, score, 0.0)
		sum += score
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	// Rank accumulates down the chain.
	assert.Less(t, res.Scores[1], res.Scores[2])
	assert.Less(t, res.Scores[2], res.Scores[3])
}

func TestPageRankOneEntryPerVertex(t *testing.T) {
	edges := loadKarate(t)

	res, err := PageRank(edges, DefaultParams())
	require.NoError(t, err)

	vertices := edges.Vertices()
	require.Len(t, res.Scores, len(vertices))
	for _, v := range vertices {
		_, ok := res.Scores[v]
		assert.True(t, ok, "missing vertex %d", v)
	}
}

func TestPageRankDeterministic(t *testing.T) {
	edges := loadKarate(t)

	a, err := PageRank(edges, DefaultParams())
	require.NoError(t, err)
	b, err := PageRank(edges, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, a.Iterations, b.Iterations)
	assert.Equal(t, a.Scores, b.Scores)
}

func TestPageRankIterationCap(t *testing.T) {
	edges := loadKarate(t)

	p := DefaultParams()
	p.MaxIter = 1
	p.Tol = 1e-12

	res, err := PageRank(edges, p)
	require.NoError(t, err)

	// Non-convergence is not an error; the partial result comes back.
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Len(t, res.Scores, 34)
}

func TestPageRankDanglingMass(t *testing.T) {
	// Vertex 3 has no outgoing edges; total rank must still sum to 1.
	edges, err := ReadEdgeList(strings.NewReader("1\t2\n1\t3\n2\t3\n"), "\t")
	require.NoError(t, err)

	res, err := PageRank(edges, DefaultParams())
	require.NoError(t, err)

	sum := 0.0
	for _, score := range res.Scores {
		sum += score
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestPageRankWeighted(t *testing.T) {
	// Vertex 1 sends three times as much rank to 2 as to 3.
	edges, err := ReadEdgeList(strings.NewReader("1\t2\t3.0\n1\t3\t1.0\n2\t1\t1.0\n3\t1\t1.0\n"), "\t")
	require.NoError(t, err)

	res, err := PageRank(edges, DefaultParams())
	require.NoError(t, err)
	assert.Greater(t, res.Scores[2], res.Scores[3])
}

func TestPageRankEmpty(t *testing.T) {
	res, err := PageRank(EdgeList{}, DefaultParams())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Empty(t, res.Scores)
}

func TestParamsValidation(t *testing.T) {
	edges, err := ReadEdgeList(strings.NewReader("1\t2\n"), "\t")
	require.NoError(t, err)

	cases := []struct {
		name string
		p    Params
	}{
		{"zero damping", Params{Damping: 0, MaxIter: 100, Tol: 1e-5}},
		{"damping one", Params{Damping: 1, MaxIter: 100, Tol: 1e-5}},
		{"zero max iter", Params{Damping: 0.85, MaxIter: 0, Tol: 1e-5}},
		{"negative tol", Params{Damping: 0.85, MaxIter: 100, Tol: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PageRank(edges, tc.p)
			assert.ErrorIs(t, err, ErrConfiguration)

			_, err = ReferencePageRank(edges, tc.p)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestSparseMatchesReference(t *testing.T) {
	// Mirror the karate edges so neither engine sees dangling vertices,
	// then both fixed points must agree per vertex.
	edges := undirected(loadKarate(t))

	p := DefaultParams()
	p.Tol = 1e-9
	p.MaxIter = 500

	res, err := PageRank(edges, p)
	require.NoError(t, err)
	require.True(t, res.Converged)

	ref, err := ReferencePageRank(edges, p)
	require.NoError(t, err)
	require.Len(t, ref, len(res.Scores))

	assert.Less(t, MaxDiff(ref, res.Scores), 1e-3)
}
