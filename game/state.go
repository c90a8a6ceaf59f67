package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Position is the board, the player to move and the number of pieces each player has taken.
// Transitions never modify a position; they return a new one with its own board.
type Position struct {
	Board         Board
	CurrentPlayer Player
	Captures      [2]int // Pieces taken by PlayerOne and PlayerTwo, indexed by Player.Index
	Rules         Rules
}

// NewPosition starts a game on board with PlayerOne to move. Nil rules select the reference rules.
func NewPosition(board Board, rules Rules) *Position {
	if rules == nil {
		rules = NewReferenceRules()
	}
	return &Position{
		Board:         board,
		CurrentPlayer: PlayerOne,
		Rules:         rules,
	}
}

func (p *Position) rules() Rules {
	if p.Rules == nil {
		return NewReferenceRules()
	}
	return p.Rules
}

// Copy returns a position that shares no board cells with p.
func (p *Position) Copy() *Position {
	return &Position{
		Board:         p.Board.Copy(),
		CurrentPlayer: p.CurrentPlayer,
		Captures:      p.Captures,
		Rules:         p.Rules, // Rules are immutable
	}
}

// PositionFromMove applies move to the piece on from and flips the player to move. Every step is
// checked against the board as it stands before the step; a malformed move returns ErrInvalidMove.
func (p *Position) PositionFromMove(from Coord, move Move) (*Position, error) {
	if !p.Board.At(from).Holds(p.CurrentPlayer) {
		return nil, fmt.Errorf("%w: %v does not hold a piece of %v", ErrInvalidMove, from, p.CurrentPlayer)
	}
	if len(move) == 0 {
		return nil, fmt.Errorf("%w: empty move from %v", ErrInvalidMove, from)
	}

	next := p.Copy()
	if move.IsCapture() {
		if err := next.positionFromCaptureMove(from, move); err != nil {
			return nil, err
		}
	} else {
		if len(move) != 1 || !isStep(p.Board, from, move[0].To) {
			return nil, fmt.Errorf("%w: %v to %v is not a simple step", ErrInvalidMove, from, move)
		}
		next.relocate(from, move[0].To)
	}
	next.CurrentPlayer = p.CurrentPlayer.Opponent()
	return next, nil
}

// positionFromCaptureMove consumes one jump per call. The player to move is left unchanged.
func (p *Position) positionFromCaptureMove(from Coord, steps Move) error {
	if len(steps) == 0 {
		return nil
	}
	landing := steps[0].To
	if !steps[0].Capture || !IsCaptureMove(p.Board, from, landing) {
		return fmt.Errorf("%w: %v to %v is not a capture", ErrInvalidMove, from, landing)
	}
	p.relocate(from, landing)
	p.Board.Clear(Coord{Row: (from.Row + landing.Row) / 2, Col: (from.Col + landing.Col) / 2})
	p.Captures[p.CurrentPlayer.Index()]++

	if len(steps) > 1 && !p.rules().ChainCaptures() {
		return fmt.Errorf("%w: captures do not chain", ErrInvalidMove)
	}
	return p.positionFromCaptureMove(landing, steps[1:])
}

// relocate moves the piece on from to to, crowning it on its promotion row.
func (p *Position) relocate(from, to Coord) {
	piece := p.Board.At(from).Piece
	if to.Row == p.rules().PromotionRow(p.Board.Rows, piece.Owner) {
		piece.King = true
	}
	p.Board.Clear(from)
	p.Board.Place(to, piece)
}

// LegalMoves enumerates every move of the player to move, scanning the board row by row, and the
// position each produces.
func (p *Position) LegalMoves() []Ply {
	var plies []Ply
	capturing := false
	for row := 0; row < p.Board.Rows; row++ {
		for col := 0; col < p.Board.Cols; col++ {
			from := Coord{Row: row, Col: col}
			if !p.Board.At(from).Holds(p.CurrentPlayer) {
				continue
			}
			for _, move := range p.MoveList(from) {
				next, err := p.PositionFromMove(from, move)
				if err != nil {
					panic(fmt.Sprintf("generated move %v from %v was rejected: %v", move, from, err))
				}
				plies = append(plies, Ply{From: from, Move: move, Result: next})
				capturing = capturing || move.IsCapture()
			}
		}
	}

	if capturing && p.rules().ForcedCapture() {
		captures := plies[:0]
		for _, ply := range plies {
			if ply.Move.IsCapture() {
				captures = append(captures, ply)
			}
		}
		plies = captures
	}
	return plies
}

// LegalPositionsFrom returns the positions reachable in one ply, in LegalMoves order.
func (p *Position) LegalPositionsFrom() []*Position {
	plies := p.LegalMoves()
	positions := make([]*Position, len(plies))
	for i, ply := range plies {
		positions[i] = ply.Result
	}
	return positions
}

// hasCapture reports whether any piece of the player to move can capture.
func (p *Position) hasCapture() bool {
	for row := 0; row < p.Board.Rows; row++ {
		for col := 0; col < p.Board.Cols; col++ {
			from := Coord{Row: row, Col: col}
			if !p.Board.At(from).Holds(p.CurrentPlayer) {
				continue
			}
			for _, move := range FindMoveList(p.Board, from) {
				if move.IsCapture() {
					return true
				}
			}
		}
	}
	return false
}

// CaptureLimitReached reports whether either player has taken enough pieces to win.
func (p *Position) CaptureLimitReached() bool {
	limit := p.rules().CaptureLimit()
	return p.Captures[0] >= limit || p.Captures[1] >= limit
}

// Winner returns the player who reached the capture limit, or the opponent of a player to move
// who has no legal move.
func (p *Position) Winner() (Player, bool) {
	limit := p.rules().CaptureLimit()
	switch {
	case p.Captures[PlayerOne.Index()] >= limit:
		return PlayerOne, true
	case p.Captures[PlayerTwo.Index()] >= limit:
		return PlayerTwo, true
	case len(p.LegalMoves()) == 0:
		return p.CurrentPlayer.Opponent(), true
	}
	return 0, false
}

func (p *Position) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, int8(p.CurrentPlayer))

	// Hash captures
	for _, count := range p.Captures {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}

	// Hash cells
	for _, cell := range p.Board.Cells {
		var king int8
		if cell.Piece.King {
			king = 1
		}
		binary.Write(hasher, binary.LittleEndian, []int8{int8(cell.State), int8(cell.Piece.Owner), king})
	}

	return StateHash(hasher.Sum64())
}
