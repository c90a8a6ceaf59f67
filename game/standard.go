package game

// ReferenceRules is the default variant: both players are crowned on the last row,
// captures are single jumps and capturing is optional.
type ReferenceRules struct {
	Pieces int
}

func NewReferenceRules() *ReferenceRules {
	return &ReferenceRules{
		Pieces: 12,
	}
}

func (rr *ReferenceRules) PromotionRow(rows int, player Player) int {
	return rows - 1
}

func (rr *ReferenceRules) CaptureLimit() int {
	return rr.Pieces
}

func (rr *ReferenceRules) ChainCaptures() bool {
	return false
}

func (rr *ReferenceRules) ForcedCapture() bool {
	return false
}

// StandardRules crowns each player on the opponent's home row, chains jumps to completion and
// forces captures.
type StandardRules struct {
	Pieces int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Pieces: 12,
	}
}

func (sr *StandardRules) PromotionRow(rows int, player Player) int {
	if player == PlayerOne {
		return rows - 1
	}
	return 0
}

func (sr *StandardRules) CaptureLimit() int {
	return sr.Pieces
}

func (sr *StandardRules) ChainCaptures() bool {
	return true
}

func (sr *StandardRules) ForcedCapture() bool {
	return true
}
