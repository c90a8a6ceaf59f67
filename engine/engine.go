package engine

import (
	"context"

	"checkers/experiments/metrics"
	"checkers/meta"
)

const MaxTurns = meta.MaxTurns

// RepetitionLimit is the number of times a position may occur before the game is drawn.
const RepetitionLimit = 3

type Engine interface {
	// Run plays a game till there's a winner, a draw or a max number of turns is reached
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
