package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Obstacle is one half of a pipe pair.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Upper  bool   // Anchored at the top edge; false for the lower half
	Scored bool   // Set on the lower half once the body has passed it
	Pair   uint64 // Shared by both halves of a pair
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// ObstacleGenerator emits pipe pairs every SpawnDistance units of scrolled distance.
type ObstacleGenerator struct {
	rng      *rand.Rand
	pipes    config.FlappyPipes
	spawnX   float64
	groundY  float64
	minTop   int
	maxTop   int
	since    float64 // Distance scrolled since the last spawn
	nextPair uint64
}

// NewObstacleGenerator creates a generator for a validated configuration.
func NewObstacleGenerator(cfg config.FlappyConfig, rng *rand.Rand) *ObstacleGenerator {
	lo, hi := cfg.TopHeightRange()
	if hi < lo {
		hi = lo
	}
	return &ObstacleGenerator{
		rng:     rng,
		pipes:   cfg.Pipes,
		spawnX:  cfg.Playfield.Width,
		groundY: cfg.Playfield.GroundY(),
		minTop:  lo,
		maxTop:  hi,
	}
}

// MaybeSpawn accounts for distance scrolled this tick and returns a new pair
// once the spawn distance has been reached, or nil.
// The overshoot is carried into the next interval.
func (g *ObstacleGenerator) MaybeSpawn(distance float64) []Obstacle {
	g.since += distance
	if g.since < g.pipes.SpawnDistance {
		return nil
	}
	g.since -= g.pipes.SpawnDistance

	top := g.minTop + g.rng.Intn(g.maxTop-g.minTop+1)
	pair := g.SpawnPair(top)
	return pair[:]
}

// SpawnPair builds a pair at the right edge with the given upper height.
func (g *ObstacleGenerator) SpawnPair(topHeight int) [2]Obstacle {
	g.nextPair++
	top := float64(max(topHeight, g.minTop))
	bottomY := top + g.pipes.Gap

	return [2]Obstacle{
		{X: g.spawnX, Y: 0, W: g.pipes.Width, H: top, Upper: true, Pair: g.nextPair},
		{X: g.spawnX, Y: bottomY, W: g.pipes.Width, H: g.groundY - bottomY, Pair: g.nextPair},
	}
}

// Since returns the distance scrolled since the last spawn.
func (g *ObstacleGenerator) Since() float64 {
	return g.since
}
