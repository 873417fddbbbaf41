package chessnode

import (
	"fmt"
	"strings"

	"chessEval/heuristics"

	"github.com/notnil/chess"
)

// Game is a heuristics.Game over a notnil/chess position. Pieces and legal
// moves are computed on first use and kept for the lifetime of the Game
// value, so a Game belongs to one evaluation and one goroutine. Legal moves
// are generated on a private copy of the position; the wrapped position is
// only read, which lets many Games share it.
type Game struct {
	pos *chess.Position
	max chess.Color

	scanned bool
	pieces  [3][]heuristics.Piece
	counts  [3][7]int

	moves [3][]*chess.Move
	board [3]*chess.Board
}

func NewGame(pos *chess.Position, max chess.Color) *Game {
	return &Game{pos: pos, max: max}
}

func (g *Game) MaxPlayer() chess.Color { return g.max }

func validColor(c chess.Color) bool {
	return c == chess.White || c == chess.Black
}

// scan walks the board once and records every piece and per type counts.
func (g *Game) scan() {
	if g.scanned {
		return
	}
	g.scanned = true
	board := g.pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		pc, ok := pieceAt(board, sq)
		if !ok || !validColor(pc.Owner) {
			continue
		}
		g.pieces[pc.Owner] = append(g.pieces[pc.Owner], pc)
		g.counts[pc.Owner][pc.Type]++
	}
}

func (g *Game) AlivePieces(c chess.Color, t chess.PieceType) (int, error) {
	if !validColor(c) || t <= chess.NoPieceType || t > chess.Pawn {
		return 0, nil
	}
	g.scan()
	return g.counts[c][t], nil
}

func (g *Game) Pieces(c chess.Color) ([]heuristics.Piece, error) {
	if !validColor(c) {
		return nil, nil
	}
	g.scan()
	return g.pieces[c], nil
}

func (g *Game) LegalMoves(c chess.Color) ([]heuristics.Move, error) {
	moves, board, err := g.legal(c)
	if err != nil {
		return nil, err
	}
	res := make([]heuristics.Move, len(moves))
	for i, m := range moves {
		res[i] = convertMove(board, m)
	}
	return res, nil
}

func (g *Game) PieceMoves(pc heuristics.Piece) ([]heuristics.Move, error) {
	moves, board, err := g.legal(pc.Owner)
	if err != nil {
		return nil, err
	}
	var res []heuristics.Move
	for _, m := range moves {
		if m.S1() == pc.At {
			res = append(res, convertMove(board, m))
		}
	}
	return res, nil
}

// legal returns c's legal moves and the board they are played on.
func (g *Game) legal(c chess.Color) ([]*chess.Move, *chess.Board, error) {
	if !validColor(c) {
		return nil, nil, fmt.Errorf("chessnode: no moves for colour %v", c)
	}
	if g.board[c] != nil {
		return g.moves[c], g.board[c], nil
	}
	pos, err := withTurn(g.pos, c)
	if err != nil {
		return nil, nil, err
	}
	board := pos.Board()
	var moves []*chess.Move
	for _, m := range pos.ValidMoves() {
		// reachable only when c was handed the move while its opponent is
		// in check
		if board.Piece(m.S2()).Type() == chess.King {
			continue
		}
		moves = append(moves, m)
	}
	g.moves[c] = moves
	g.board[c] = board
	return moves, board, nil
}

// withTurn rebuilds pos from its FEN with c on move. notnil/chess caches
// generated moves inside a position, so move generation never runs on the
// shared one. The en-passant square is dropped when the turn changes since
// it only belongs to the side that was on move.
func withTurn(pos *chess.Position, c chess.Color) (*chess.Position, error) {
	fen := pos.String()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("chessnode: malformed fen %q", fen)
	}
	if pos.Turn() != c {
		if c == chess.White {
			fields[1] = "w"
		} else {
			fields[1] = "b"
		}
		fields[3] = "-"
	}
	opt, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return nil, fmt.Errorf("chessnode: rebuild position: %w", err)
	}
	return chess.NewGame(opt).Position(), nil
}
