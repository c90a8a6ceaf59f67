package game

// MoveStep is one landing of a move. Capture steps land two cells away and remove the piece
// in between.
type MoveStep struct {
	To      Coord
	Capture bool
}

// Move is a non-empty sequence of steps: a single simple step, or one or more capture steps.
type Move []MoveStep

func (m Move) IsCapture() bool {
	return len(m) > 0 && m[0].Capture
}

// Destination is the cell the piece ends on.
func (m Move) Destination() Coord {
	return m[len(m)-1].To
}

// Ply is a move of the piece on From together with the position it produces.
type Ply struct {
	From   Coord
	Move   Move
	Result *Position
}
