package heuristics

import (
	"log"

	"github.com/notnil/chess"
)

// Features holds the five feature differentials of a position, each computed
// as the Max quantity minus the Min quantity.
type Features struct {
	Material    float64
	Mobility    float64
	Center      float64
	Development float64
	Promotion   float64
}

// Score is the weighted sum of the differentials.
func (f Features) Score(w Weights) float64 {
	return w.Material*f.Material +
		w.Mobility*f.Mobility +
		w.Center*f.Center +
		w.Development*f.Development +
		w.Promotion*f.Promotion
}

// Evaluator is a static, one ply evaluation of search nodes. The zero value
// scores every feature with weight zero; use NewEvaluator for the defaults.
// An Evaluator holds no per-call state and may be shared between goroutines.
type Evaluator struct {
	Weights Weights
	// Logger, when set, receives the feature breakdown of every evaluation.
	Logger *log.Logger
}

func NewEvaluator() *Evaluator {
	return &Evaluator{Weights: DefaultWeights}
}

var defaultEvaluator = NewEvaluator()

// Evaluate scores node with DefaultWeights.
func Evaluate(node Node) (float64, error) {
	return defaultEvaluator.Evaluate(node)
}

// Evaluate returns how favourable node is for the Max player.
func (e *Evaluator) Evaluate(node Node) (float64, error) {
	f, err := e.Features(node)
	if err != nil {
		return 0, err
	}
	score := f.Score(e.Weights)
	if e.Logger != nil {
		e.Logger.Printf("eval %.3f (material %.2f, mobility %.2f, center %.2f, development %.2f, promotion %.2f)",
			score, f.Material, f.Mobility, f.Center, f.Development, f.Promotion)
	}
	return score, nil
}

// Features extracts the unweighted feature differentials of node.
func (e *Evaluator) Features(node Node) (Features, error) {
	var f Features
	g := node.Game()
	maxPlayer, minPlayer := MaxPlayer(g), MinPlayer(g)

	for _, side := range [...]struct {
		player chess.Color
		sign   float64
	}{{maxPlayer, 1}, {minPlayer, -1}} {
		material, err := materialScore(g, side.player)
		if err != nil {
			return Features{}, err
		}
		moves, err := g.LegalMoves(side.player)
		if err != nil {
			return Features{}, err
		}
		pieces, err := g.Pieces(side.player)
		if err != nil {
			return Features{}, err
		}
		promotions, err := promotionScore(g, pieces)
		if err != nil {
			return Features{}, err
		}
		f.Material += side.sign * material
		f.Mobility += side.sign * float64(len(moves))
		f.Center += side.sign * centerScore(side.player, pieces)
		f.Development += side.sign * developmentScore(pieces)
		f.Promotion += side.sign * promotions
	}
	return f, nil
}

func materialScore(g Game, c chess.Color) (float64, error) {
	var score float64
	for _, t := range PieceTypes {
		n, err := g.AlivePieces(c, t)
		if err != nil {
			return 0, err
		}
		score += float64(n) * PointValue(t)
	}
	return score, nil
}

// centerScore only looks at pieces owned by c, so the center band is shared
// but each side is credited for its own occupation.
func centerScore(c chess.Color, pieces []Piece) float64 {
	var score float64
	for _, pc := range pieces {
		if pc.Owner != c {
			continue
		}
		switch {
		case IsCenter(pc.At):
			if pc.Type == chess.Pawn {
				score += CenterPawnBonus
			} else {
				score += CenterPieceBonus
			}
		case IsCenterSupport(pc.At, c):
			score += CenterSupportBonus
		}
	}
	return score
}

func developmentScore(pieces []Piece) float64 {
	var score float64
	for _, pc := range pieces {
		switch pc.Type {
		case chess.Knight, chess.Bishop:
			if !onHomeSquare(pc) {
				score += MinorDevelopedBonus
			}
		case chess.Rook, chess.Queen:
			if !onHomeSquare(pc) {
				score += MajorDevelopedBonus
			}
		}
	}
	return score
}

// promotionScore counts the promotion moves available to the pawns in
// pieces. Nothing is applied to the position.
func promotionScore(g Game, pieces []Piece) (float64, error) {
	var n int
	for _, pc := range pieces {
		if pc.Type != chess.Pawn {
			continue
		}
		moves, err := g.PieceMoves(pc)
		if err != nil {
			return 0, err
		}
		for _, m := range moves {
			if IsPromotion(m) {
				n++
			}
		}
	}
	return float64(n), nil
}
