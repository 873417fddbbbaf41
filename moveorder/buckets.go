// Package moveorder arranges the children of a search node so that the
// moves most likely to cause alpha-beta cutoffs are searched first.
package moveorder

import "chessEval/heuristics"

// Bucket is a move ordering priority group. Lower buckets are searched first.
type Bucket int8

const (
	BucketCapture Bucket = iota
	BucketPromotion
	BucketCenter
	BucketOther

	numBuckets = int(BucketOther) + 1
)

func (b Bucket) String() string {
	switch b {
	case BucketCapture:
		return "capture"
	case BucketPromotion:
		return "promotion"
	case BucketCenter:
		return "center"
	default:
		return "other"
	}
}

// Classify returns the bucket of m. A nil move (the search root), a capture
// whose victim is unknown and any unrecognised move fall into BucketOther.
func Classify(m heuristics.Move) Bucket {
	switch m := m.(type) {
	case heuristics.Capture:
		if _, ok := heuristics.Target(m); !ok {
			return BucketOther
		}
		return BucketCapture
	case heuristics.Promotion:
		return BucketPromotion
	case heuristics.Movement:
		if c, ok := heuristics.Target(m); ok && heuristics.IsCenter(c) {
			return BucketCenter
		}
		return BucketOther
	case heuristics.EnPassant, heuristics.Castle:
		return BucketOther
	}
	return BucketOther
}

// Buckets returns children reordered as captures, promotions, center moves
// and everything else. Order within a bucket is the input order. The input
// slice is not modified.
func Buckets[N heuristics.Node](children []N) []N {
	var buckets [numBuckets][]N
	for _, n := range children {
		b := Classify(n.Move())
		buckets[b] = append(buckets[b], n)
	}
	res := make([]N, 0, len(children))
	for _, b := range buckets {
		res = append(res, b...)
	}
	return res
}
