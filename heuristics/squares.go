package heuristics

import "github.com/notnil/chess"

func onCenterFiles(sq chess.Square) bool {
	return onBoard(sq) && sq.File() >= chess.FileD && sq.File() <= chess.FileE
}

// IsCenter reports whether sq is one of d4, e4, d5, e5. The band is the same
// for both sides.
func IsCenter(sq chess.Square) bool {
	return onCenterFiles(sq) && sq.Rank() >= chess.Rank4 && sq.Rank() <= chess.Rank5
}

// IsCenterSupport reports whether sq is on the center files one rank behind
// the center from c's point of view: d3/e3 for White, d6/e6 for Black.
func IsCenterSupport(sq chess.Square, c chess.Color) bool {
	if !onCenterFiles(sq) {
		return false
	}
	if c == chess.White {
		return sq.Rank() == chess.Rank3
	}
	return sq.Rank() == chess.Rank6
}

var homeSquares = map[chess.Color]map[chess.PieceType][]chess.Square{
	chess.White: {
		chess.Rook:   {chess.A1, chess.H1},
		chess.Knight: {chess.B1, chess.G1},
		chess.Bishop: {chess.C1, chess.F1},
		chess.Queen:  {chess.D1},
	},
	chess.Black: {
		chess.Rook:   {chess.A8, chess.H8},
		chess.Knight: {chess.B8, chess.G8},
		chess.Bishop: {chess.C8, chess.F8},
		chess.Queen:  {chess.D8},
	},
}

// HomeSquares returns the starting squares of c's pieces of type t. Pawns
// and the king have none, since they are not tracked for development.
func HomeSquares(c chess.Color, t chess.PieceType) []chess.Square {
	return homeSquares[c][t]
}

func onHomeSquare(pc Piece) bool {
	for _, sq := range HomeSquares(pc.Owner, pc.Type) {
		if sq == pc.At {
			return true
		}
	}
	return false
}
