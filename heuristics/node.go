package heuristics

import "github.com/notnil/chess"

// Game is the read-only view of a position supplied by the host engine.
// Implementations must not change observable state when queried; any error
// they return is passed through to the caller untouched.
type Game interface {
	// MaxPlayer is the fixed global maximizing player.
	MaxPlayer() chess.Color
	AlivePieces(c chess.Color, t chess.PieceType) (int, error)
	Pieces(c chess.Color) ([]Piece, error)
	// LegalMoves lists every legal move of c in the current position,
	// whether or not c is on move.
	LegalMoves(c chess.Color) ([]Move, error)
	// PieceMoves lists the legal moves of a single piece.
	PieceMoves(pc Piece) ([]Move, error)
}

// Node is a search node: the position reached by applying Move to the
// parent. Move returns nil at the root.
type Node interface {
	Move() Move
	Game() Game
}

// MaxPlayer returns the side the evaluation is computed for.
func MaxPlayer(g Game) chess.Color {
	return g.MaxPlayer()
}

// MinPlayer returns Max's opponent. It is derived on every call.
func MinPlayer(g Game) chess.Color {
	return g.MaxPlayer().Other()
}
