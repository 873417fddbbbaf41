package heuristics

import (
	"fmt"

	"github.com/notnil/chess"
)

// PieceTypes lists every piece type in material order.
var PieceTypes = [...]chess.PieceType{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}

// PointValue is the material value of a piece type. Kings are never
// captured, so they add nothing to the material balance.
func PointValue(t chess.PieceType) float64 {
	switch t {
	case chess.Pawn:
		return 1
	case chess.Knight, chess.Bishop:
		return 3
	case chess.Rook:
		return 5
	case chess.Queen:
		return 9
	default:
		return 0
	}
}

// Piece is a snapshot of one piece at the time of the query.
type Piece struct {
	Type  chess.PieceType
	Owner chess.Color
	At    chess.Square
}

func (p Piece) String() string {
	return fmt.Sprintf("%v%v@%v", p.Owner, p.Type, p.At)
}

func onBoard(sq chess.Square) bool {
	return sq >= chess.A1 && sq <= chess.H8
}
