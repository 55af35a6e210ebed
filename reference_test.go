package rank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferencePageRank(t *testing.T) {
	t.Run("symmetric cycle ranks uniformly", func(t *testing.T) {
		edges, err := ReadEdgeList(strings.NewReader("1\t2\n2\t3\n3\t1\n"), "\t")
		require.NoError(t, err)

		ref, err := ReferencePageRank(edges, DefaultParams())
		require.NoError(t, err)

		require.Len(t, ref, 3)
		for v, score := range ref {
			assert.InDelta(t, 1.0/3.0, score, 1e-3, "vertex %d", v)
		}
	})

	t.Run("self loops are ignored", func(t *testing.T) {
		edges, err := ReadEdgeList(strings.NewReader("1\t1\n1\t2\n2\t1\n"), "\t")
		require.NoError(t, err)

		ref, err := ReferencePageRank(edges, DefaultParams())
		require.NoError(t, err)
		assert.Len(t, ref, 2)
	})

	t.Run("deterministic", func(t *testing.T) {
		edges, err := LoadEdgeList("testdata/karate.tsv", "\t")
		require.NoError(t, err)
		edges = undirected(edges)

		a, err := ReferencePageRank(edges, DefaultParams())
		require.NoError(t, err)
		b, err := ReferencePageRank(edges, DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
