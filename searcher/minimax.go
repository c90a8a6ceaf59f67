package searcher

import (
	"math"

	"checkers/experiments/metrics"
	"checkers/game"
)

type minimax struct {
	maxDepth  int
	evaluate  game.Evaluate
	reference bool
	metrics   metrics.Collector
}

func (m *minimax) terminal(position *game.Position, depth int) bool {
	return depth >= m.maxDepth || position.CaptureLimitReached()
}

// frame converts a value scored for the player to move at position into the maximizing player's
// perspective. The reference frame leaves values relative to the player to move.
func (m *minimax) frame(position *game.Position, maximizing game.Player, value float64) float64 {
	if m.reference || position.CurrentPlayer == maximizing {
		return value
	}
	return -value
}

// minMax backs up values with alpha-beta pruning. Depth counts plies from the root successor.
func (m *minimax) minMax(position *game.Position, alpha, beta float64, maximizing game.Player, depth int) float64 {
	m.metrics.AddNode()

	if m.terminal(position, depth) {
		return m.frame(position, maximizing, m.evaluate(position))
	}

	successors := position.LegalPositionsFrom()
	if len(successors) == 0 {
		return m.frame(position, maximizing, LossScore)
	}

	if position.CurrentPlayer == maximizing {
		for _, successor := range successors {
			alpha = math.Max(alpha, m.minMax(successor, alpha, beta, maximizing, depth+1))
			if alpha >= beta {
				m.metrics.AddCutoff()
				break
			}
		}
		return alpha
	}

	for _, successor := range successors {
		beta = math.Min(beta, m.minMax(successor, alpha, beta, maximizing, depth+1))
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return beta
}
