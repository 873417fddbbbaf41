package moveorder

import (
	"sort"

	"chessEval/heuristics"

	"golang.org/x/sync/errgroup"
)

// Orderer reorders the children of a search node. The result is always a
// permutation of the input.
type Orderer interface {
	Order(children []heuristics.Node) ([]heuristics.Node, error)
}

// BucketOrderer orders by move type only and never fails.
type BucketOrderer struct{}

func (BucketOrderer) Order(children []heuristics.Node) ([]heuristics.Node, error) {
	return Buckets(children), nil
}

// RankOrderer sorts children by their static evaluation, best first, keeping
// input order between equal scores. It costs one evaluation per child.
type RankOrderer struct {
	Evaluator *heuristics.Evaluator
	// Workers bounds the number of children evaluated concurrently.
	// Values below 2 evaluate sequentially.
	Workers int
}

func (o RankOrderer) Order(children []heuristics.Node) ([]heuristics.Node, error) {
	scores, err := o.scores(children)
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(children))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})
	res := make([]heuristics.Node, len(children))
	for i, k := range idx {
		res[i] = children[k]
	}
	return res, nil
}

func (o RankOrderer) scores(children []heuristics.Node) ([]float64, error) {
	eval := o.Evaluator
	if eval == nil {
		eval = heuristics.NewEvaluator()
	}
	scores := make([]float64, len(children))
	if o.Workers < 2 {
		for i, n := range children {
			s, err := eval.Evaluate(n)
			if err != nil {
				return nil, err
			}
			scores[i] = s
		}
		return scores, nil
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i, n := range children {
		i, n := i, n
		g.Go(func() error {
			s, err := eval.Evaluate(n)
			if err != nil {
				return err
			}
			scores[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
