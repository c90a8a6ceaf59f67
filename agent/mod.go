package agent

import (
	"context"

	"checkers/experiments/metrics"
	"checkers/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from finding it
	FindMove(ctx context.Context, position *game.Position) (game.Ply, metrics.SearchMetric, error)
}
