package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("waiting for the engine to reply")
	ErrNotStarted  = errors.New("game has not been initialised")
)

// Update is published for every move played in a session.
type Update struct {
	Player   game.Player
	From     game.Coord
	To       game.Coord
	Position *game.Position
	Winner   string // Set on the final update only
}

// UpdateGetter returns the next update without blocking. ok is false when there is none yet or
// the game is over and every update was consumed.
type UpdateGetter func() (u Update, ok bool)

type Engine interface {
	Init(rules game.Rules) (*game.Position, UpdateGetter, error)
	Play(ctx context.Context, from, to game.Coord) error
	Reply(ctx context.Context) error
}

// updateBuffer holds the human move and the engine reply of one Play.
const updateBuffer = 2

type localEngine struct {
	mu       sync.Mutex
	id       string
	human    game.Player
	searcher searcher.Searcher
	state    *game.Position
	updateCh chan Update
	gameOver bool
}

// NewLocalEngine returns a session in which a human plays PlayerOne against the searcher.
func NewLocalEngine(s searcher.Searcher) *localEngine {
	return &localEngine{searcher: s, human: game.PlayerOne}
}

func (e *localEngine) ID() string {
	return e.id
}

// Init starts a new game on the reference board. A nil rules selects the reference rules.
func (e *localEngine) Init(rules game.Rules) (*game.Position, UpdateGetter, error) {
	board, err := game.GenerateBoard(meta.Rows, meta.Cols, meta.Pieces)
	if err != nil {
		return nil, nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = uuid.NewString()
	e.state = game.NewPosition(board, rules)
	e.gameOver = false
	updateCh := make(chan Update, updateBuffer)
	e.updateCh = updateCh

	log.Info().Msgf("session %s: started", e.id)

	return e.state.Copy(), func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			u.Position = u.Position.Copy()
			return u, true
		default:
			return Update{}, false
		}
	}, nil
}

// Play applies the human move, then lets the searcher reply.
func (e *localEngine) Play(ctx context.Context, from, to game.Coord) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.check(); err != nil {
		return err
	}
	if e.state.CurrentPlayer != e.human {
		return ErrNotYourTurn
	}

	ply, err := game.ResolveMove(e.state, from, to)
	if err != nil {
		return err
	}
	e.advance(ply.From, ply.Move.Destination(), ply.Result)
	if e.gameOver {
		return nil
	}
	return e.reply(ctx)
}

// Reply retries the searcher's move after a Play whose reply failed.
func (e *localEngine) Reply(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.check(); err != nil {
		return err
	}
	if e.state.CurrentPlayer == e.human {
		return nil
	}
	return e.reply(ctx)
}

func (e *localEngine) check() error {
	if e.state == nil {
		return ErrNotStarted
	}
	if e.gameOver {
		return ErrGameOver
	}
	return nil
}

func (e *localEngine) reply(ctx context.Context) error {
	ply, metric, err := e.searcher.BestMove(ctx, e.state)
	if err != nil {
		return fmt.Errorf("session %s: %w", e.id, err)
	}
	log.Debug().Msgf("session %s: engine replied %v to %v with value %v", e.id, ply.From, ply.Move.Destination(), metric.Value)
	e.advance(ply.From, ply.Move.Destination(), ply.Result)
	return nil
}

// advance publishes the move and closes the update channel once the game is decided
func (e *localEngine) advance(from, to game.Coord, next *game.Position) {
	u := Update{Player: e.state.CurrentPlayer, From: from, To: to, Position: next}
	e.state = next

	winner, over := next.Winner()
	if over {
		u.Winner = winner.String()
	}
	e.publish(u)
	if over {
		e.gameOver = true
		close(e.updateCh)
		log.Info().Msgf("session %s: %s wins", e.id, u.Winner)
	}
}

// publish never blocks. When the caller lags behind, the oldest update is dropped.
func (e *localEngine) publish(u Update) {
	for {
		select {
		case e.updateCh <- u:
			return
		default:
			select {
			case <-e.updateCh:
			default:
			}
		}
	}
}
