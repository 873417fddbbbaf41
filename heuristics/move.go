package heuristics

import "github.com/notnil/chess"

// Move is the move that produced a search node. It is a closed sum type:
// Movement, Capture, Promotion, EnPassant and Castle are its only variants,
// and every switch over it lists all five.
type Move interface {
	isMove()
}

// Movement is a quiet move to an empty square.
type Movement struct {
	Piece Piece
	To    chess.Square
}

// Capture removes Captured from the board. Captured is nil when the host
// could not identify the victim.
type Capture struct {
	Piece    Piece
	Captured *Piece
}

// Promotion moves a pawn to the last rank, capturing or not.
type Promotion struct {
	Pawn Piece
	To   chess.Square
	Into chess.PieceType
}

type EnPassant struct {
	Pawn     Piece
	To       chess.Square
	Captured chess.Square
}

type CastleSide int8

const (
	KingSide CastleSide = iota
	QueenSide
)

// Castle carries the king's destination.
type Castle struct {
	King Piece
	To   chess.Square
	Side CastleSide
}

func (Movement) isMove()  {}
func (Capture) isMove()   {}
func (Promotion) isMove() {}
func (EnPassant) isMove() {}
func (Castle) isMove()    {}

// Target resolves the square a move acts on: the destination for movements,
// promotions, en-passant and castling, and the captured piece's square for
// captures. ok is false when the move is nil, malformed or points off the
// board.
func Target(m Move) (sq chess.Square, ok bool) {
	switch m := m.(type) {
	case Movement:
		sq = m.To
	case Capture:
		if m.Captured == nil {
			return chess.NoSquare, false
		}
		sq = m.Captured.At
	case Promotion:
		sq = m.To
	case EnPassant:
		sq = m.To
	case Castle:
		sq = m.To
	default:
		return chess.NoSquare, false
	}
	return sq, onBoard(sq)
}

// IsPromotion reports whether m promotes a pawn.
func IsPromotion(m Move) bool {
	_, ok := m.(Promotion)
	return ok
}
