package gamemaster

import (
	"context"
	"testing"

	"checkers/game"
	"checkers/searcher"

	"github.com/stretchr/testify/require"
)

func newEngine() *localEngine {
	return NewLocalEngine(searcher.NewAlphaBeta(2, searcher.WithMaxDepth(1)))
}

func TestLocalEngineInit(t *testing.T) {
	engine := newEngine()
	position, getUpdate, err := engine.Init(nil)
	require.NoError(t, err)

	board, err := game.GenerateBoard(8, 8, 12)
	require.NoError(t, err)
	require.Equal(t, board, position.Board)
	require.Equal(t, game.PlayerOne, position.CurrentPlayer)
	require.NotEmpty(t, engine.ID())

	_, ok := getUpdate()
	require.False(t, ok, "No update before the first move")

	t.Run("returned position is a copy", func(t *testing.T) {
		position.Board.Clear(game.Coord{Row: 2, Col: 0})
		require.True(t, engine.state.Board.At(game.Coord{Row: 2, Col: 0}).Holds(game.PlayerOne))
	})

	t.Run("sessions get distinct ids", func(t *testing.T) {
		other := newEngine()
		_, _, err := other.Init(nil)
		require.NoError(t, err)
		require.NotEqual(t, engine.ID(), other.ID())
	})
}

func TestLocalEnginePlay(t *testing.T) {
	ctx := context.Background()

	t.Run("before init", func(t *testing.T) {
		err := newEngine().Play(ctx, game.Coord{Row: 2, Col: 0}, game.Coord{Row: 3, Col: 1})
		require.ErrorIs(t, err, ErrNotStarted)
	})

	t.Run("valid move gets a reply", func(t *testing.T) {
		engine := newEngine()
		_, getUpdate, err := engine.Init(nil)
		require.NoError(t, err)

		err = engine.Play(ctx, game.Coord{Row: 2, Col: 0}, game.Coord{Row: 3, Col: 1})
		require.NoError(t, err)

		human, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.PlayerOne, human.Player)
		require.Equal(t, game.Coord{Row: 2, Col: 0}, human.From)
		require.Equal(t, game.Coord{Row: 3, Col: 1}, human.To)
		require.Equal(t, game.PlayerTwo, human.Position.CurrentPlayer)
		require.True(t, human.Position.Board.At(game.Coord{Row: 3, Col: 1}).Holds(game.PlayerOne))
		require.Empty(t, human.Winner)

		reply, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.PlayerTwo, reply.Player)
		require.True(t, reply.Position.Board.At(reply.To).Holds(game.PlayerTwo))
		require.Equal(t, game.PlayerOne, reply.Position.CurrentPlayer)

		_, ok = getUpdate()
		require.False(t, ok)
	})

	t.Run("invalid move", func(t *testing.T) {
		engine := newEngine()
		_, getUpdate, err := engine.Init(nil)
		require.NoError(t, err)

		err = engine.Play(ctx, game.Coord{Row: 2, Col: 0}, game.Coord{Row: 4, Col: 2})
		require.ErrorIs(t, err, game.ErrInvalidMove)

		err = engine.Play(ctx, game.Coord{Row: 5, Col: 1}, game.Coord{Row: 4, Col: 0})
		require.ErrorIs(t, err, game.ErrInvalidMove, "Opponent pieces cannot be moved")

		_, ok := getUpdate()
		require.False(t, ok)
		require.Equal(t, game.PlayerOne, engine.state.CurrentPlayer)
	})

	t.Run("game over", func(t *testing.T) {
		engine := newEngine()
		_, getUpdate, err := engine.Init(nil)
		require.NoError(t, err)

		board := game.NewEmptyBoard(8, 8)
		board.Place(game.Coord{Row: 2, Col: 2}, game.Piece{Owner: game.PlayerOne})
		board.Place(game.Coord{Row: 3, Col: 3}, game.Piece{Owner: game.PlayerTwo})
		board.Place(game.Coord{Row: 7, Col: 7}, game.Piece{Owner: game.PlayerTwo})
		position := game.NewPosition(board, nil)
		position.Captures = [2]int{11, 0}
		engine.state = position // force internal state

		err = engine.Play(ctx, game.Coord{Row: 2, Col: 2}, game.Coord{Row: 4, Col: 4})
		require.NoError(t, err)

		final, ok := getUpdate()
		require.True(t, ok, "Final update before the channel closes")
		require.Equal(t, "Player1", final.Winner)
		require.Equal(t, 12, final.Position.Captures[0])

		_, ok = getUpdate()
		require.False(t, ok)

		err = engine.Play(ctx, game.Coord{Row: 4, Col: 4}, game.Coord{Row: 5, Col: 5})
		require.ErrorIs(t, err, ErrGameOver)
		require.ErrorIs(t, engine.Reply(ctx), ErrGameOver)
	})

	t.Run("chained capture publishes the final landing", func(t *testing.T) {
		engine := newEngine()
		_, getUpdate, err := engine.Init(game.NewStandardRules())
		require.NoError(t, err)

		board := game.NewEmptyBoard(8, 8)
		board.Place(game.Coord{Row: 2, Col: 2}, game.Piece{Owner: game.PlayerOne})
		board.Place(game.Coord{Row: 3, Col: 3}, game.Piece{Owner: game.PlayerTwo})
		board.Place(game.Coord{Row: 5, Col: 5}, game.Piece{Owner: game.PlayerTwo})
		board.Place(game.Coord{Row: 7, Col: 1}, game.Piece{Owner: game.PlayerTwo})
		engine.state = game.NewPosition(board, game.NewStandardRules()) // force internal state

		err = engine.Play(ctx, game.Coord{Row: 2, Col: 2}, game.Coord{Row: 4, Col: 4})
		require.NoError(t, err)

		human, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.Coord{Row: 6, Col: 6}, human.To)
		require.Equal(t, 2, human.Position.Captures[0])

		reply, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.Coord{Row: 7, Col: 1}, reply.From)
		require.True(t, reply.Position.Board.At(reply.To).Holds(game.PlayerTwo))
	})

	t.Run("failed reply can be retried", func(t *testing.T) {
		engine := newEngine()
		_, getUpdate, err := engine.Init(nil)
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err = engine.Play(cancelled, game.Coord{Row: 2, Col: 0}, game.Coord{Row: 3, Col: 1})
		require.ErrorIs(t, err, context.Canceled)

		err = engine.Play(ctx, game.Coord{Row: 2, Col: 2}, game.Coord{Row: 3, Col: 3})
		require.ErrorIs(t, err, ErrNotYourTurn)

		require.NoError(t, engine.Reply(ctx))
		require.Equal(t, game.PlayerOne, engine.state.CurrentPlayer)
		require.NoError(t, engine.Reply(ctx), "Nothing to do on the human's turn")

		for _, player := range []game.Player{game.PlayerOne, game.PlayerTwo} {
			u, ok := getUpdate()
			require.True(t, ok)
			require.Equal(t, player, u.Player)
		}
	})

	t.Run("lagging caller sees the latest updates", func(t *testing.T) {
		engine := newEngine()
		_, getUpdate, err := engine.Init(nil)
		require.NoError(t, err)

		require.NoError(t, engine.Play(ctx, game.Coord{Row: 2, Col: 0}, game.Coord{Row: 3, Col: 1}))
		from := game.Coord{Row: 2, Col: 4}
		require.NoError(t, engine.Play(ctx, from, game.Coord{Row: 3, Col: 5}))

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, from, u.From)
		require.Equal(t, game.PlayerOne, u.Player)
	})
}
