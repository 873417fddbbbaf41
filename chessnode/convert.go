package chessnode

import (
	"chessEval/heuristics"

	"github.com/notnil/chess"
)

func pieceAt(board *chess.Board, sq chess.Square) (heuristics.Piece, bool) {
	p := board.Piece(sq)
	if p == chess.NoPiece {
		return heuristics.Piece{}, false
	}
	return heuristics.Piece{Type: p.Type(), Owner: p.Color(), At: sq}, true
}

// convertMove translates m, played on board, into the heuristics move type.
// Promotions that capture stay promotions.
func convertMove(board *chess.Board, m *chess.Move) heuristics.Move {
	mover, _ := pieceAt(board, m.S1())
	switch {
	case m.Promo() != chess.NoPieceType:
		return heuristics.Promotion{Pawn: mover, To: m.S2(), Into: m.Promo()}
	case m.HasTag(chess.EnPassant):
		return heuristics.EnPassant{
			Pawn:     mover,
			To:       m.S2(),
			Captured: chess.NewSquare(m.S2().File(), m.S1().Rank()),
		}
	case m.HasTag(chess.KingSideCastle):
		return heuristics.Castle{King: mover, To: m.S2(), Side: heuristics.KingSide}
	case m.HasTag(chess.QueenSideCastle):
		return heuristics.Castle{King: mover, To: m.S2(), Side: heuristics.QueenSide}
	case m.HasTag(chess.Capture):
		victim, ok := pieceAt(board, m.S2())
		if !ok {
			return heuristics.Capture{Piece: mover}
		}
		return heuristics.Capture{Piece: mover, Captured: &victim}
	}
	return heuristics.Movement{Piece: mover, To: m.S2()}
}
