package experiments

import (
	"context"
	"fmt"

	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

// OutputDir is where experiment results are written.
var OutputDir = "experiments"

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: meta.Goroutines, MaxDepth: 2},
	{ID: 2, Goroutines: meta.Goroutines, MaxDepth: 4},
	{ID: 3, Goroutines: meta.Goroutines, MaxDepth: 6},
	{ID: 4, Goroutines: meta.Goroutines, MaxDepth: meta.MaxDepth},
}

// RunDepthExperiment pairs a random baseline against searchers of increasing depth.
func RunDepthExperiment(ctx context.Context) error {
	baseline := metrics.AgentConfig{ID: 0, Random: true, Seed: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, "depth", NumGames, append(depthConfigs, baseline), matchUps)
}

// RunFrameExperiment plays the reference evaluation frame against the corrected one at equal depth.
func RunFrameExperiment(ctx context.Context) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Goroutines: meta.Goroutines, MaxDepth: 4, Reference: true},
		{ID: 2, Goroutines: meta.Goroutines, MaxDepth: 4},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
	}
	return runExperiment(ctx, "frame", NumGames, configs, matchUps)
}

func runExperiment(ctx context.Context, name string, numGames int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			winner, gameMetric, moveMetrics, err := runGame(ctx, config1, config2, uint64(i))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, configs, gameRecords, moveRecords)
}

func store(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(OutputDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())
	return nil
}

// runGame plays a single game between two agents on the reference board
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, round uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.GenerateBoard(meta.Rows, meta.Cols, meta.Pieces)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agents := []agent.Agent{
		createAgent(config1, round),
		createAgent(config2, round),
	}
	e := engine.NewLocalEngine(agents, game.NewPosition(board, game.NewReferenceRules()))
	e.MaxTurns = meta.MaxTurns
	return e.Run(ctx)
}

// createAgent offsets random seeds by the game number so games of a matchup differ
func createAgent(config metrics.AgentConfig, offset uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(config.Seed + offset)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.Reference {
		options = append(options, searcher.WithReferenceFrame())
	}
	goroutines := config.Goroutines
	if goroutines < 1 {
		goroutines = 1
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(goroutines, options...))
}
