package searcher

import (
	"context"
	"errors"

	"checkers/experiments/metrics"
	"checkers/game"
)

// ErrNoLegalMoves is returned when the player to move has no move to choose from.
var ErrNoLegalMoves = errors.New("no legal moves")

type Searcher interface {
	// BestMove returns the move chosen for the player to move and the metrics of the search
	BestMove(ctx context.Context, position *game.Position) (game.Ply, metrics.SearchMetric, error)
}
