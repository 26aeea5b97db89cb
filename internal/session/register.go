package session

import "github.com/jakobmina/quasar-pro/internal/registry"

// Register the modes with the registry
func init() {
	registry.Register("story", "Combat run: missions, golden hubs and an escalating swarm", func() registry.Game {
		return NewStory()
	})
	registry.Register("openworld", "Exploration sandbox: gravity wells, wormholes and fog of war", func() registry.Game {
		return NewOpenWorld()
	})
}
