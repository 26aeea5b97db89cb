package sim

import (
	"math"

	"github.com/jakobmina/quasar-pro/internal/core"
)

type chunk struct{ x, y int }

// Fog tracks which world chunks the ship has seen.
type Fog struct {
	size     float64
	explored map[chunk]struct{}
}

// NewFog creates an empty fog over chunks of the given size.
func NewFog(chunkSize float64) *Fog {
	if chunkSize <= 0 {
		chunkSize = 2000
	}
	return &Fog{size: chunkSize, explored: make(map[chunk]struct{})}
}

func (f *Fog) chunkOf(p core.Vec2) chunk {
	return chunk{int(math.Floor(p.X / f.size)), int(math.Floor(p.Y / f.size))}
}

// Explore reveals the chunk under p and its eight neighbours.
func (f *Fog) Explore(p core.Vec2) {
	c := f.chunkOf(p)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			f.explored[chunk{c.x + dx, c.y + dy}] = struct{}{}
		}
	}
}

// Explored reports whether the chunk under p has been revealed.
func (f *Fog) Explored(p core.Vec2) bool {
	_, ok := f.explored[f.chunkOf(p)]
	return ok
}

// Count returns the number of revealed chunks.
func (f *Fog) Count() int {
	return len(f.explored)
}
