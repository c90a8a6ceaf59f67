package game

import "fmt"

// MoveIsValid checks a move proposed by a caller: a single diagonal step onto an empty playable
// cell in a direction the piece may move, or a capture.
func MoveIsValid(p *Position, from, to Coord) bool {
	if !p.Board.InBounds(from) || !p.Board.InBounds(to) {
		return false
	}
	if !p.Board.At(from).Holds(p.CurrentPlayer) {
		return false
	}

	if abs(to.Row-from.Row) == 1 {
		return isStep(p.Board, from, to) && !(p.rules().ForcedCapture() && p.hasCapture())
	}
	return IsCaptureMove(p.Board, from, to)
}

// MovePiece applies a move proposed by a caller. A capture landing on to is completed along the
// first available chain when the rules chain captures.
func MovePiece(p *Position, from, to Coord) (*Position, error) {
	ply, err := ResolveMove(p, from, to)
	if err != nil {
		return nil, err
	}
	return ply.Result, nil
}

// ResolveMove is MovePiece returning the full move played, whose destination differs from to when
// a capture chain was completed.
func ResolveMove(p *Position, from, to Coord) (Ply, error) {
	if !MoveIsValid(p, from, to) {
		return Ply{}, fmt.Errorf("%w: %v to %v", ErrInvalidMove, from, to)
	}

	move := Move{{To: to}}
	if IsCaptureMove(p.Board, from, to) {
		move = Move{{To: to, Capture: true}}
		if p.rules().ChainCaptures() {
			for _, chain := range p.MoveList(from) {
				if chain.IsCapture() && chain[0].To == to {
					move = chain
					break
				}
			}
		}
	}

	next, err := p.PositionFromMove(from, move)
	if err != nil {
		return Ply{}, err
	}
	return Ply{From: from, Move: move, Result: next}, nil
}
