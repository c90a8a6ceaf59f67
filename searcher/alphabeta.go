package searcher

import (
	"context"
	"fmt"
	"math"

	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(a *AlphaBeta)

type AlphaBeta struct {
	goroutines int
	maxDepth   int
	evaluate   game.Evaluate
	reference  bool
	metrics    metrics.Collector
}

func WithMaxDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

// WithReferenceFrame scores every node relative to its own player to move and searches each
// root successor for the player to move there.
func WithReferenceFrame() Option {
	return func(a *AlphaBeta) {
		a.reference = true
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

// NewAlphaBeta returns a searcher that spreads root successors over goroutines. A searcher runs
// one search at a time.
//
// By default every value is read from the root mover's perspective. This differs from the
// reference selection, which searches each root successor for its own player to
// move and compares raw evaluations; WithReferenceFrame restores that selection.
func NewAlphaBeta(goroutines int, options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		goroutines: goroutines,
		maxDepth:   MaxDepth,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	if a.goroutines < 1 {
		panic("Must search with at least one goroutine")
	}
	return a
}

// BestMove searches every root successor with fresh bounds and returns the one with the strictly
// highest value, the first in move order on ties.
func (a *AlphaBeta) BestMove(ctx context.Context, position *game.Position) (game.Ply, metrics.SearchMetric, error) {
	plies := position.LegalMoves()
	if len(plies) == 0 {
		return game.Ply{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	a.metrics.Start(a.goroutines, a.maxDepth)
	search := &minimax{
		maxDepth:  a.maxDepth,
		evaluate:  a.evaluate,
		reference: a.reference,
		metrics:   a.metrics,
	}

	// Each successor owns its board, so branches share nothing but the collector
	values := make([]float64, len(plies))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.goroutines)
	for i, ply := range plies {
		i, ply := i, ply
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			maximizing := position.CurrentPlayer
			if a.reference {
				maximizing = ply.Result.CurrentPlayer
			}
			values[i] = search.minMax(ply.Result, math.Inf(-1), math.Inf(1), maximizing, 0)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return game.Ply{}, metrics.SearchMetric{}, fmt.Errorf("search aborted: %w", err)
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}

	metric := a.metrics.Complete(len(plies), values[best])
	log.Debug().Msgf("%v chose %v from %v with value %v among %d moves", position.CurrentPlayer, plies[best].Move, plies[best].From, values[best], len(plies))
	return plies[best], metric, nil
}

// ChosenPosition returns the position produced by the best move for the player to move.
func (a *AlphaBeta) ChosenPosition(ctx context.Context, position *game.Position) (*game.Position, error) {
	ply, _, err := a.BestMove(ctx, position)
	if err != nil {
		return nil, err
	}
	return ply.Result, nil
}
