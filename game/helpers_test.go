package game

import "testing"

var (
	man1  = Piece{Owner: PlayerOne}
	king1 = Piece{Owner: PlayerOne, King: true}
	man2  = Piece{Owner: PlayerTwo}
	king2 = Piece{Owner: PlayerTwo, King: true}
)

// setup places pieces on an empty 8x8 board.
func setup(t *testing.T, rules Rules, toMove Player, pieces map[Coord]Piece) *Position {
	t.Helper()
	board := NewEmptyBoard(8, 8)
	for c, piece := range pieces {
		board.Place(c, piece)
	}
	p := NewPosition(board, rules)
	p.CurrentPlayer = toMove
	return p
}

func initial(t *testing.T) *Position {
	t.Helper()
	board, err := GenerateBoard(8, 8, 12)
	if err != nil {
		t.Fatalf("generating board: %v", err)
	}
	return NewPosition(board, nil)
}
