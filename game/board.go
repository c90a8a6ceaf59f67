package game

import (
	"fmt"
	"strings"
)

// Board is a rows x cols grid of cells stored row-major.
type Board struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// GenerateBoard builds the initial layout: playable cells follow the (row+col) even pattern,
// PlayerOne men fill the first pieceCount*2/rows rows and PlayerTwo men fill the same number of
// rows at the opposite end.
func GenerateBoard(rows, cols, pieceCount int) (Board, error) {
	if rows <= 0 || cols <= 0 || pieceCount <= 0 {
		return Board{}, fmt.Errorf("%w: rows=%d cols=%d pieces=%d must be positive", ErrInvalidBoard, rows, cols, pieceCount)
	}
	if pieceCount*2%rows != 0 {
		return Board{}, fmt.Errorf("%w: %d pieces per player cannot fill whole rows of a %d-row board", ErrInvalidBoard, pieceCount, rows)
	}
	filledRows := pieceCount * 2 / rows
	if 2*filledRows > rows {
		return Board{}, fmt.Errorf("%w: %d filled rows per player overlap on a %d-row board", ErrInvalidBoard, filledRows, rows)
	}

	b := Board{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}
	placed := [2]int{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if (row+col)%2 != 0 {
				continue // Blocked is the zero value
			}
			cell := Cell{State: Empty}
			if row < filledRows {
				cell = Cell{State: Occupied, Piece: Piece{Owner: PlayerOne}}
				placed[PlayerOne.Index()]++
			} else if row >= rows-filledRows {
				cell = Cell{State: Occupied, Piece: Piece{Owner: PlayerTwo}}
				placed[PlayerTwo.Index()]++
			}
			b.Cells[row*cols+col] = cell
		}
	}

	if placed[0] != pieceCount || placed[1] != pieceCount {
		return Board{}, fmt.Errorf("%w: layout holds %d and %d pieces, want %d each", ErrInvalidBoard, placed[0], placed[1], pieceCount)
	}
	return b, nil
}

// NewEmptyBoard returns a board with the playable pattern and no pieces.
func NewEmptyBoard(rows, cols int) Board {
	b := Board{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if (row+col)%2 == 0 {
				b.Cells[row*cols+col] = Cell{State: Empty}
			}
		}
	}
	return b
}

func (b Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// At returns the cell at c. Out of bounds coordinates read as blocked.
func (b Board) At(c Coord) Cell {
	if !b.InBounds(c) {
		return Cell{}
	}
	return b.Cells[c.Row*b.Cols+c.Col]
}

// Place puts a piece on a playable cell. It panics on blocked or out of bounds cells.
func (b Board) Place(c Coord, piece Piece) {
	if !b.At(c).Playable() {
		panic(fmt.Sprintf("cannot place a piece on blocked cell %v", c))
	}
	b.Cells[c.Row*b.Cols+c.Col] = Cell{State: Occupied, Piece: piece}
}

// Clear empties a playable cell.
func (b Board) Clear(c Coord) {
	if !b.At(c).Playable() {
		panic(fmt.Sprintf("cannot clear blocked cell %v", c))
	}
	b.Cells[c.Row*b.Cols+c.Col] = Cell{State: Empty}
}

// Copy returns a board that shares no cells with b.
func (b Board) Copy() Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return Board{Rows: b.Rows, Cols: b.Cols, Cells: cells}
}

// Count returns the number of men and kings owned by player.
func (b Board) Count(player Player) (men, kings int) {
	for _, cell := range b.Cells {
		if !cell.Holds(player) {
			continue
		}
		if cell.Piece.King {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// String renders the board with row 0 on top: '#' blocked, '.' empty, x/X PlayerOne, o/O PlayerTwo.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			sb.WriteByte(cellChar(b.Cells[row*b.Cols+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellChar(c Cell) byte {
	switch c.State {
	case Blocked:
		return '#'
	case Empty:
		return '.'
	}
	ch := byte('x')
	if c.Piece.Owner == PlayerTwo {
		ch = 'o'
	}
	if c.Piece.King {
		ch -= 'a' - 'A'
	}
	return ch
}
