package registry

import (
	"github.com/vovakirdan/twenty48/internal/agent"
	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
)

func init() {
	Register("user", "Keyboard play", func(b game.Board, _ config.Config, seed int64) agent.Agent {
		return agent.NewUserAgent(b, seed)
	})
	Register("random", "Random moves", func(b game.Board, _ config.Config, seed int64) agent.Agent {
		return agent.NewRandomAgent(b, seed)
	})
	Register("rollout", "Random tree search", func(b game.Board, cfg config.Config, seed int64) agent.Agent {
		return agent.NewRandomTree(b, cfg.RandomTree, seed)
	})
	Register("expectimax", "Expectimax search", func(b game.Board, cfg config.Config, seed int64) agent.Agent {
		return agent.NewExpectimax(b, cfg.Expectimax, seed)
	})
}
