// Package config provides YAML-based tuning for the search agents.
package config

// Config bundles the tunable parameters for all agents.
type Config struct {
	RandomTree RandomTreeConfig `yaml:"random_tree"`
	Expectimax ExpectimaxConfig `yaml:"expectimax"`
}

// RandomTreeConfig tunes the Monte-Carlo rollout evaluator.
type RandomTreeConfig struct {
	// SimCount is the number of rollouts per candidate direction.
	SimCount int `yaml:"sim_count"`
	// Metric selects what a rollout is judged by: "score" or "moves".
	Metric string `yaml:"metric"`
	// Parallel runs each direction's rollouts concurrently.
	Parallel bool `yaml:"parallel"`
}

// ExpectimaxConfig tunes the expectimax search.
type ExpectimaxConfig struct {
	// Depth bounds the recursion.
	Depth int `yaml:"depth"`
	// SampleTiles caps how many empty cells the chance layer samples.
	SampleTiles int `yaml:"sample_tiles"`
	// HeuristicSims is the rollout count for the leaf heuristic.
	HeuristicSims int `yaml:"heuristic_sims"`
	// MaxEvals bounds the total node expansions per decision.
	MaxEvals int `yaml:"max_evals"`
	// WeightEmpty scales the leaf heuristic by the empty-cell count,
	// rewarding open boards.
	WeightEmpty bool `yaml:"weight_empty"`
}

// Sanitize clamps misconfigured values so downstream averaging never
// divides by zero and the search always has at least one sample.
func (c *Config) Sanitize() {
	if c.RandomTree.SimCount < 1 {
		c.RandomTree.SimCount = 1
	}
	if c.RandomTree.Metric != "moves" {
		c.RandomTree.Metric = "score"
	}
	if c.Expectimax.Depth < 1 {
		c.Expectimax.Depth = 1
	}
	if c.Expectimax.SampleTiles < 1 {
		c.Expectimax.SampleTiles = 1
	}
	if c.Expectimax.HeuristicSims < 1 {
		c.Expectimax.HeuristicSims = 1
	}
	if c.Expectimax.MaxEvals < 1 {
		c.Expectimax.MaxEvals = 1
	}
}
