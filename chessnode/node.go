// Package chessnode exposes notnil/chess positions as search nodes for the
// heuristics and moveorder packages.
package chessnode

import (
	"fmt"

	"chessEval/heuristics"

	"github.com/notnil/chess"
)

// Node is the position reached by playing move on parent. The root has
// neither.
type Node struct {
	parent *chess.Position
	move   *chess.Move
	pos    *chess.Position
	max    chess.Color
}

// Root wraps pos as a search root evaluated for max.
func Root(pos *chess.Position, max chess.Color) *Node {
	return &Node{pos: pos, max: max}
}

// ParseFEN decodes fen into a position.
func ParseFEN(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("chessnode: %w", err)
	}
	return chess.NewGame(opt).Position(), nil
}

// FromFEN parses fen and returns it as a search root.
func FromFEN(fen string, max chess.Color) (*Node, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return Root(pos, max), nil
}

func (n *Node) Move() heuristics.Move {
	if n.move == nil || n.parent == nil {
		return nil
	}
	return convertMove(n.parent.Board(), n.move)
}

// Game returns a new query view of the node's position. Views are not safe
// for concurrent use; nodes are, as long as Children is not called at the
// same time.
func (n *Node) Game() heuristics.Game {
	return NewGame(n.pos, n.max)
}

func (n *Node) ChessMove() *chess.Move    { return n.move }
func (n *Node) Position() *chess.Position { return n.pos }

func (n *Node) String() string {
	if n.move == nil {
		return "root"
	}
	return n.move.String()
}

// Children expands every legal move of the side to move.
func (n *Node) Children() []*Node {
	moves := n.pos.ValidMoves()
	res := make([]*Node, 0, len(moves))
	for _, m := range moves {
		res = append(res, &Node{parent: n.pos, move: m, pos: n.pos.Update(m), max: n.max})
	}
	return res
}

// Nodes converts children for APIs taking heuristics.Node slices.
func Nodes(children []*Node) []heuristics.Node {
	res := make([]heuristics.Node, len(children))
	for i, c := range children {
		res[i] = c
	}
	return res
}
