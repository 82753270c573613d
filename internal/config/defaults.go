package config

import (
	_ "embed"
)

//go:embed defaults/agents.yaml
var defaultAgentsYAML []byte

// Default returns the built-in agent tuning.
func Default() Config {
	return Config{
		RandomTree: RandomTreeConfig{
			SimCount: 1000,
			Metric:   "score",
			Parallel: true,
		},
		Expectimax: ExpectimaxConfig{
			Depth:         3,
			SampleTiles:   4,
			HeuristicSims: 10,
			MaxEvals:      10000,
			WeightEmpty:   true,
		},
	}
}
