package game

import "fmt"

// Player identifies a side. Its value doubles as the row direction its men move in.
type Player int8

const (
	PlayerOne Player = 1  // Starts on the low rows, moves towards higher rows
	PlayerTwo Player = -1 // Starts on the high rows, moves towards lower rows
)

// Direction returns the row offset of a forward step.
func (p Player) Direction() int {
	return int(p)
}

func (p Player) Opponent() Player {
	return -p
}

// Index returns the slot of the player in Position.Captures.
func (p Player) Index() int {
	if p == PlayerOne {
		return 0
	}
	return 1
}

func (p Player) String() string {
	if p == PlayerOne {
		return "Player1"
	}
	return "Player2"
}

// Piece is a man or, once crowned, a king.
type Piece struct {
	Owner Player
	King  bool
}

// CellState tells whether a cell is part of the playing pattern and whether it is occupied.
type CellState int8

const (
	Blocked CellState = iota
	Empty
	Occupied
)

type Cell struct {
	State CellState
	Piece Piece // Only meaningful when State == Occupied
}

func (c Cell) Playable() bool {
	return c.State != Blocked
}

func (c Cell) IsEmpty() bool {
	return c.State == Empty
}

// Holds reports whether the cell is occupied by a piece of the given player.
func (c Cell) Holds(player Player) bool {
	return c.State == Occupied && c.Piece.Owner == player
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// towards returns the cell reached by applying the offset from c to other, times scale.
func (c Coord) towards(other Coord, scale int) Coord {
	return Coord{
		Row: c.Row + scale*(other.Row-c.Row),
		Col: c.Col + scale*(other.Col-c.Col),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
