package game

const (
	KingValue = 5
	ManValue  = 3
)

// EvaluateMaterial sums piece values from the perspective of the player to move: own kings and men
// count positive, the opponent's count negative.
func EvaluateMaterial(p *Position) float64 {
	value := 0
	for _, cell := range p.Board.Cells {
		if cell.State != Occupied {
			continue
		}
		worth := ManValue
		if cell.Piece.King {
			worth = KingValue
		}
		if cell.Piece.Owner == p.CurrentPlayer {
			value += worth
		} else {
			value -= worth
		}
	}
	return float64(value)
}
