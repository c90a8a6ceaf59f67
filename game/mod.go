package game

import "errors"

var (
	// ErrInvalidBoard is returned when a board layout cannot be generated.
	ErrInvalidBoard = errors.New("invalid board")
	// ErrInvalidMove is returned when a move is rejected instead of silently ignored.
	ErrInvalidMove = errors.New("invalid move")
)

type StateHash uint64

// Evaluate scores a position from the perspective of the player to move at that position.
type Evaluate func(*Position) float64
