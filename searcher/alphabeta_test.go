package searcher

import (
	"context"
	"math"
	"testing"

	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, toMove game.Player, pieces map[game.Coord]game.Piece) *game.Position {
	t.Helper()
	board := game.NewEmptyBoard(8, 8)
	for c, piece := range pieces {
		board.Place(c, piece)
	}
	p := game.NewPosition(board, game.NewReferenceRules())
	p.CurrentPlayer = toMove
	return p
}

func initial(t *testing.T) *game.Position {
	t.Helper()
	board, err := game.GenerateBoard(8, 8, 12)
	require.NoError(t, err)
	return game.NewPosition(board, nil)
}

var (
	man1 = game.Piece{Owner: game.PlayerOne}
	man2 = game.Piece{Owner: game.PlayerTwo}
)

func TestNewAlphaBeta(t *testing.T) {
	t.Run("panics without goroutines", func(t *testing.T) {
		require.Panics(t, func() { NewAlphaBeta(0) })
	})

	t.Run("ignores invalid options", func(t *testing.T) {
		a := NewAlphaBeta(1, WithMaxDepth(0), WithEvaluationFn(nil))
		require.Equal(t, MaxDepth, a.maxDepth)
		require.NotNil(t, a.evaluate)
	})
}

func TestBestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("no legal moves", func(t *testing.T) {
		p := setup(t, game.PlayerOne, map[game.Coord]game.Piece{{Row: 5, Col: 5}: man2})

		_, _, err := NewAlphaBeta(1).BestMove(ctx, p)
		require.ErrorIs(t, err, ErrNoLegalMoves)

		chosen, err := NewAlphaBeta(1).ChosenPosition(ctx, p)
		require.ErrorIs(t, err, ErrNoLegalMoves)
		require.Nil(t, chosen)
	})

	t.Run("takes the winning capture", func(t *testing.T) {
		p := setup(t, game.PlayerOne, map[game.Coord]game.Piece{{Row: 2, Col: 2}: man1, {Row: 3, Col: 3}: man2})
		p.Captures = [2]int{11, 0}

		chosen, err := NewAlphaBeta(2, WithMaxDepth(1)).ChosenPosition(ctx, p)

		require.NoError(t, err)
		require.Equal(t, [2]int{12, 0}, chosen.Captures)
		winner, ok := chosen.Winner()
		require.True(t, ok)
		require.Equal(t, game.PlayerOne, winner)
	})

	t.Run("prefers leaving the opponent without moves", func(t *testing.T) {
		p := setup(t, game.PlayerOne, map[game.Coord]game.Piece{
			{Row: 0, Col: 0}: man1, {Row: 0, Col: 2}: man1, {Row: 2, Col: 0}: man1, {Row: 2, Col: 2}: man1,
			{Row: 1, Col: 1}: man2,
		})

		ply, metric, err := NewAlphaBeta(1, WithMaxDepth(1), WithMetrics()).BestMove(ctx, p)

		require.NoError(t, err)
		require.Equal(t, game.Coord{Row: 2, Col: 0}, ply.From, "First move that keeps the opponent blocked")
		require.Equal(t, -LossScore, metric.Value)
		require.Equal(t, 4, metric.Successors)
	})
}

func TestFrames(t *testing.T) {
	ctx := context.Background()
	pieces := map[game.Coord]game.Piece{{Row: 2, Col: 2}: man1, {Row: 3, Col: 3}: man2, {Row: 7, Col: 7}: man2}
	capture := game.Move{{To: game.Coord{Row: 4, Col: 4}, Capture: true}}
	retreat := game.Move{{To: game.Coord{Row: 3, Col: 1}}}

	t.Run("player frame captures", func(t *testing.T) {
		for _, depth := range []int{1, 2} {
			ply, _, err := NewAlphaBeta(1, WithMaxDepth(depth)).BestMove(ctx, setup(t, game.PlayerOne, pieces))
			require.NoError(t, err)
			require.Equal(t, capture, ply.Move, "depth %d", depth)
		}
	})

	t.Run("reference frame at odd depth captures", func(t *testing.T) {
		ply, _, err := NewAlphaBeta(1, WithMaxDepth(1), WithReferenceFrame()).BestMove(ctx, setup(t, game.PlayerOne, pieces))
		require.NoError(t, err)
		require.Equal(t, capture, ply.Move)
	})

	t.Run("reference frame at even depth scores for the opponent", func(t *testing.T) {
		ply, metric, err := NewAlphaBeta(1, WithMaxDepth(2), WithReferenceFrame(), WithMetrics()).BestMove(ctx, setup(t, game.PlayerOne, pieces))
		require.NoError(t, err)
		require.Equal(t, retreat, ply.Move)
		require.Equal(t, 3.0, metric.Value)
	})
}

func TestParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	p := initial(t)

	sequential, _, err := NewAlphaBeta(1, WithMaxDepth(4)).BestMove(ctx, p)
	require.NoError(t, err)
	parallel, _, err := NewAlphaBeta(8, WithMaxDepth(4)).BestMove(ctx, p)
	require.NoError(t, err)

	require.Equal(t, sequential.From, parallel.From)
	require.Equal(t, sequential.Move, parallel.Move)
	require.Equal(t, sequential.Result, parallel.Result)
}

func TestCancelledSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewAlphaBeta(4).BestMove(ctx, initial(t))

	require.ErrorIs(t, err, context.Canceled)
}

func TestSearchLeavesInputUntouched(t *testing.T) {
	p := initial(t)
	before := p.Copy()

	_, err := NewAlphaBeta(4, WithMaxDepth(3)).ChosenPosition(context.Background(), p)

	require.NoError(t, err)
	require.Equal(t, before, p)
}

// plainMinMax is minMax without pruning.
func plainMinMax(m *minimax, position *game.Position, maximizing game.Player, depth int) float64 {
	if m.terminal(position, depth) {
		return m.frame(position, maximizing, m.evaluate(position))
	}
	successors := position.LegalPositionsFrom()
	if len(successors) == 0 {
		return m.frame(position, maximizing, LossScore)
	}
	best := math.Inf(-1)
	if position.CurrentPlayer != maximizing {
		best = math.Inf(1)
	}
	for _, successor := range successors {
		value := plainMinMax(m, successor, maximizing, depth+1)
		if position.CurrentPlayer == maximizing {
			best = math.Max(best, value)
		} else {
			best = math.Min(best, value)
		}
	}
	return best
}

func TestPruningKeepsMinimaxValue(t *testing.T) {
	collector := metrics.NewCollector()
	collector.Start(1, 4)
	m := &minimax{maxDepth: 4, evaluate: game.EvaluateMaterial, metrics: collector}
	p := initial(t)

	for _, successor := range p.LegalPositionsFrom() {
		pruned := m.minMax(successor, math.Inf(-1), math.Inf(1), game.PlayerOne, 0)
		require.Equal(t, plainMinMax(m, successor, game.PlayerOne, 0), pruned)
	}

	metric := collector.Complete(0, 0)
	require.Positive(t, metric.Cutoffs, "Alpha-beta should prune some branches")
	require.Positive(t, metric.Nodes)
}
