package chessnode

import (
	"math"
	"testing"

	"chessEval/heuristics"
	"chessEval/moveorder"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alphaBeta is a minimal host driver: it expands children, lets order
// arrange them and backs up static evaluations.
type alphaBeta struct {
	order   func([]*Node) []*Node
	visited int
}

func (s *alphaBeta) search(t *testing.T, n *Node, depth int, alpha, beta float64, maximizing bool) float64 {
	s.visited++
	children := n.Children()
	if depth == 0 || len(children) == 0 {
		score, err := heuristics.Evaluate(n)
		require.NoError(t, err)
		return score
	}
	children = s.order(children)

	if maximizing {
		best := -math.MaxFloat64
		for _, c := range children {
			best = math.Max(best, s.search(t, c, depth-1, alpha, beta, false))
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}
	best := math.MaxFloat64
	for _, c := range children {
		best = math.Min(best, s.search(t, c, depth-1, alpha, beta, true))
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

func TestOrderingKeepsSearchValue(t *testing.T) {
	root, err := FromFEN("4k3/8/2n5/3q4/4P3/5N2/8/4K3 w - - 0 1", chess.White)
	require.NoError(t, err)

	plain := &alphaBeta{order: func(c []*Node) []*Node { return c }}
	bucketed := &alphaBeta{order: moveorder.Buckets[*Node]}
	ranked := &alphaBeta{order: func(c []*Node) []*Node {
		nodes, err := moveorder.RankOrderer{Workers: 4}.Order(Nodes(c))
		require.NoError(t, err)
		res := make([]*Node, len(nodes))
		for i, n := range nodes {
			res[i] = n.(*Node)
		}
		return res
	}}

	want := plain.search(t, root, 2, -math.MaxFloat64, math.MaxFloat64, true)
	for name, s := range map[string]*alphaBeta{"buckets": bucketed, "ranked": ranked} {
		got := s.search(t, root, 2, -math.MaxFloat64, math.MaxFloat64, true)
		assert.InDelta(t, want, got, 1e-9, name)
		t.Logf("%s visited %d nodes, unordered %d", name, s.visited, plain.visited)
	}
}
