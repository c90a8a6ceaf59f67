package metrics

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID         int
	Goroutines int
	MaxDepth   int
	Reference  bool   // Search in the reference evaluation frame
	Random     bool   // Play uniformly random moves instead of searching
	Seed       uint64 // Random agents only
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
