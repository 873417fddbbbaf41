package moveorder

import (
	"chessEval/heuristics"

	"github.com/notnil/chess"
)

// staticGame answers every query from a fixed piece list and has no legal
// moves.
type staticGame struct {
	pieces []heuristics.Piece
	err    error
}

func (g staticGame) MaxPlayer() chess.Color { return chess.White }

func (g staticGame) AlivePieces(c chess.Color, t chess.PieceType) (int, error) {
	if g.err != nil {
		return 0, g.err
	}
	n := 0
	for _, pc := range g.pieces {
		if pc.Owner == c && pc.Type == t {
			n++
		}
	}
	return n, nil
}

func (g staticGame) Pieces(c chess.Color) ([]heuristics.Piece, error) {
	var res []heuristics.Piece
	for _, pc := range g.pieces {
		if pc.Owner == c {
			res = append(res, pc)
		}
	}
	return res, nil
}

func (g staticGame) LegalMoves(chess.Color) ([]heuristics.Move, error)      { return nil, nil }
func (g staticGame) PieceMoves(heuristics.Piece) ([]heuristics.Move, error) { return nil, nil }

type testNode struct {
	name string
	move heuristics.Move
	game staticGame
}

func (n *testNode) Move() heuristics.Move { return n.move }
func (n *testNode) Game() heuristics.Game { return n.game }

func pawn(sq chess.Square) heuristics.Piece {
	return heuristics.Piece{Type: chess.Pawn, Owner: chess.White, At: sq}
}

func quiet(from, to chess.Square) heuristics.Move {
	return heuristics.Movement{Piece: pawn(from), To: to}
}

func names[N interface{ heuristics.Node }](nodes []N) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = any(n).(*testNode).name
	}
	return res
}
