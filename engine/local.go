package engine

import (
	"context"
	"fmt"
	"time"

	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	ID       string
	State    *game.Position
	Agents   []agent.Agent // Indexed by game.Player.Index
	MaxTurns int
}

// NewLocalEngine sets up a game from position between the agents of PlayerOne and PlayerTwo.
func NewLocalEngine(agents []agent.Agent, position *game.Position) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &LocalEngine{
		ID:       uuid.NewString(),
		State:    position,
		Agents:   agents,
		MaxTurns: MaxTurns,
	}
}

// Run executes the game loop until a winner is found, a position repeats RepetitionLimit times or
// MaxTurns moves have been played.
func (e *LocalEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		GameID:         e.ID,
		StartingPlayer: int(e.State.CurrentPlayer),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %v is starting", e.ID, e.State.CurrentPlayer)

	seen := map[game.StateHash]int{e.State.Hash(): 1}
	winner := ""
	for turn := 1; turn <= e.MaxTurns; turn++ {
		if player, ok := e.State.Winner(); ok {
			winner = player.String()
			break
		}

		player := e.State.CurrentPlayer
		ply, metric, err := e.Agents[player.Index()].FindMove(ctx, e.State)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("game %s turn %d: %w", e.ID, turn, err)
		}
		log.Debug().Msgf("game %s turn %d: %v moved %v to %v", e.ID, turn, player, ply.From, ply.Move.Destination())

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			SearchMetric: metric,
		})
		e.State = ply.Result

		hash := e.State.Hash()
		seen[hash]++
		if seen[hash] >= RepetitionLimit {
			log.Info().Msgf("game %s: drawn by repetition after %d turns", e.ID, turn)
			break
		}
	}
	// A winning move on the last allowed turn still decides the game
	if winner == "" && len(moveMetrics) == e.MaxTurns {
		if player, ok := e.State.Winner(); ok {
			winner = player.String()
		}
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == "" {
		log.Info().Msgf("game %s: no winner after %d moves", e.ID, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game %s: %s wins after %d moves", e.ID, winner, gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}
