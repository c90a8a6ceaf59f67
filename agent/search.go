package agent

import (
	"context"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(ctx context.Context, position *game.Position) (game.Ply, metrics.SearchMetric, error) {
	return a.searcher.BestMove(ctx, position)
}
