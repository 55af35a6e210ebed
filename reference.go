package rank

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
)

// ReferencePageRank ranks the edge list with gonum's CPU PageRank,
// the baseline the sparse computation is compared against.
// The gonum solver iterates to tolerance and exposes no iteration cap,
// so p.MaxIter is validated here but enforced only by PageRank.
// Self-loops and edge weights are ignored, matching the reference
// algorithm's unweighted simple-graph model.
func ReferencePageRank(edges EdgeList, p Params) (ScoreTable, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := simple.NewDirectedGraph()
	for _, v := range edges.Vertices() {
		if g.Node(v) == nil {
			g.AddNode(simple.Node(v))
		}
	}
	for _, e := range edges {
		if e.Src == e.Dst {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(e.Src), simple.Node(e.Dst)))
	}

	return ScoreTable(network.PageRank(g, p.Damping, p.Tol)), nil
}
