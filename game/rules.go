package game

// Rules holds the variant choices that differ between ReferenceRules and standard checkers.
type Rules interface {
	// PromotionRow is the row on which a man of the given player is crowned.
	PromotionRow(rows int, player Player) int
	// CaptureLimit is the number of captures that wins the game.
	CaptureLimit() int
	// ChainCaptures extends a capture from its landing cell while further captures exist.
	ChainCaptures() bool
	// ForcedCapture drops simple moves whenever the side to move has a capture.
	ForcedCapture() bool
}
