package game

// CandidateDestinations returns the diagonal neighbours the piece on from may step to: the two
// forward cells, plus the two backward cells for a king. Only bounds are checked.
func CandidateDestinations(board Board, from Coord) []Coord {
	cell := board.At(from)
	if cell.State != Occupied {
		return nil
	}
	dir := cell.Piece.Owner.Direction()
	rows := []int{from.Row + dir}
	if cell.Piece.King {
		rows = append(rows, from.Row-dir)
	}

	candidates := make([]Coord, 0, 4)
	for _, row := range rows {
		for _, col := range []int{from.Col - 1, from.Col + 1} {
			c := Coord{Row: row, Col: col}
			if board.InBounds(c) {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// IsCaptureMove reports whether the piece on from can jump to to: to is an empty playable cell two
// diagonal steps forward and the cell in between holds an opposing piece. Kings jump forward only.
func IsCaptureMove(board Board, from, to Coord) bool {
	src := board.At(from)
	if src.State != Occupied || !board.At(to).IsEmpty() {
		return false
	}
	player := src.Piece.Owner
	if to.Row != from.Row+2*player.Direction() || abs(to.Col-from.Col) != 2 {
		return false
	}
	mid := Coord{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
	return board.At(mid).Holds(player.Opponent())
}

// isStep reports whether the piece on from may step to to: a diagonal neighbour that is empty and
// playable, forward unless the piece is a king.
func isStep(board Board, from, to Coord) bool {
	src := board.At(from)
	if src.State != Occupied || !board.At(to).IsEmpty() {
		return false
	}
	if abs(to.Row-from.Row) != 1 || abs(to.Col-from.Col) != 1 {
		return false
	}
	return src.Piece.King || to.Row-from.Row == src.Piece.Owner.Direction()
}

// FindMoveList lists the single-step moves of the piece on from, in candidate order. A candidate
// holding an opponent that can be jumped yields a capture to the landing cell; an empty candidate
// yields a simple move.
func FindMoveList(board Board, from Coord) []Move {
	if board.At(from).State != Occupied {
		return nil
	}
	var moves []Move
	for _, candidate := range CandidateDestinations(board, from) {
		landing := from.towards(candidate, 2)
		if IsCaptureMove(board, from, landing) {
			moves = append(moves, Move{{To: landing, Capture: true}})
		}
		if board.At(candidate).IsEmpty() {
			moves = append(moves, Move{{To: candidate}})
		}
	}
	return moves
}

// MoveList lists the moves of the piece on from under the position's rules. Forced capture is a
// property of the whole side and is applied by LegalMoves and MoveIsValid, not here.
func (p *Position) MoveList(from Coord) []Move {
	moves := FindMoveList(p.Board, from)
	rules := p.rules()
	if !rules.ChainCaptures() {
		return moves
	}

	extended := make([]Move, 0, len(moves))
	for _, move := range moves {
		if !move.IsCapture() {
			extended = append(extended, move)
			continue
		}
		extended = append(extended, captureChains(p.Board, from, move[0], rules)...)
	}
	return extended
}

// captureChains follows a jump from its landing cell and returns every maximal chain that starts
// with step. A man crowned by a jump stops there.
func captureChains(board Board, from Coord, step MoveStep, rules Rules) []Move {
	next := board.Copy()
	piece := next.At(from).Piece
	next.Clear(from)
	next.Clear(Coord{Row: (from.Row + step.To.Row) / 2, Col: (from.Col + step.To.Col) / 2})
	crowned := !piece.King && step.To.Row == rules.PromotionRow(board.Rows, piece.Owner)
	next.Place(step.To, piece)

	var chains []Move
	if !crowned {
		for _, candidate := range CandidateDestinations(next, step.To) {
			landing := step.To.towards(candidate, 2)
			if !IsCaptureMove(next, step.To, landing) {
				continue
			}
			for _, tail := range captureChains(next, step.To, MoveStep{To: landing, Capture: true}, rules) {
				chains = append(chains, append(Move{step}, tail...))
			}
		}
	}
	if len(chains) == 0 {
		return []Move{{step}}
	}
	return chains
}
