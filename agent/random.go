package agent

import (
	"context"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, position *game.Position) (game.Ply, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.Ply{}, metrics.SearchMetric{}, err
	}
	plies := position.LegalMoves()
	if len(plies) == 0 {
		return game.Ply{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return plies[a.rng.Intn(len(plies))], metrics.SearchMetric{Successors: len(plies)}, nil
}
