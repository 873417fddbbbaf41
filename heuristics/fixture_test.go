package heuristics

import "github.com/notnil/chess"

// fakeGame is an in-memory Game for tests. Legal moves are listed per colour
// and attributed to pieces by their mover.
type fakeGame struct {
	max    chess.Color
	pieces []Piece
	moves  map[chess.Color][]Move
	err    error

	legalCalls map[chess.Color]int
}

func (g *fakeGame) MaxPlayer() chess.Color { return g.max }

func (g *fakeGame) AlivePieces(c chess.Color, t chess.PieceType) (int, error) {
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

func (g *fakeGame) Pieces(c chess.Color) ([]Piece, error) {
	var res []Piece
	for _, pc := range g.pieces {
		if pc.Owner == c {
			res = append(res, pc)
		}
	}
	return res, nil
}

func (g *fakeGame) LegalMoves(c chess.Color) ([]Move, error) {
	if g.legalCalls == nil {
		g.legalCalls = make(map[chess.Color]int)
	}
	g.legalCalls[c]++
	return g.moves[c], nil
}

func (g *fakeGame) PieceMoves(pc Piece) ([]Move, error) {
	var res []Move
	for _, m := range g.moves[pc.Owner] {
		if mover(m) == pc {
			res = append(res, m)
		}
	}
	return res, nil
}

func mover(m Move) Piece {
	switch m := m.(type) {
	case Movement:
		return m.Piece
	case Capture:
		return m.Piece
	case Promotion:
		return m.Pawn
	case EnPassant:
		return m.Pawn
	case Castle:
		return m.King
	}
	return Piece{}
}

// swapped returns the same position evaluated for the other side.
func (g *fakeGame) swapped() *fakeGame {
	cp := *g
	cp.max = g.max.Other()
	cp.legalCalls = nil
	return &cp
}

type fakeNode struct {
	move Move
	game *fakeGame
}

func (n fakeNode) Move() Move { return n.move }
func (n fakeNode) Game() Game { return n.game }

func piece(owner chess.Color, t chess.PieceType, sq chess.Square) Piece {
	return Piece{Type: t, Owner: owner, At: sq}
}
