package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Coin is a bonus item. A collected or blocked coin keeps scrolling
// until it leaves the playfield but is no longer drawn or collectable.
type Coin struct {
	X, Y      float64
	W, H      float64
	Collected bool // The body touched it
	Blocked   bool // An obstacle covers it
}

// Box returns the coin's collision box.
func (c Coin) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// Live reports whether the coin can still be collected.
func (c Coin) Live() bool {
	return !c.Collected && !c.Blocked
}

// CoinSpawner emits a coin every SpawnDistance units of scrolled distance,
// as long as no other coin is live.
type CoinSpawner struct {
	coins  config.FlappyCoins
	spawnX float64
	spawnY float64
	since  float64
}

// NewCoinSpawner returns nil when coins are disabled.
func NewCoinSpawner(cfg config.FlappyConfig) *CoinSpawner {
	if !cfg.Coins.Enabled() {
		return nil
	}
	return &CoinSpawner{
		coins:  cfg.Coins,
		spawnX: cfg.Playfield.Width,
		spawnY: (cfg.Playfield.GroundY() - cfg.Coins.Height) / 2,
	}
}

// MaybeSpawn accounts for distance scrolled this tick. When the spawn
// distance is reached the interval restarts; a coin is emitted only if
// liveCoin is false.
func (s *CoinSpawner) MaybeSpawn(distance float64, liveCoin bool) (Coin, bool) {
	s.since += distance
	if s.since < s.coins.SpawnDistance {
		return Coin{}, false
	}
	s.since -= s.coins.SpawnDistance
	if liveCoin {
		return Coin{}, false
	}
	return Coin{X: s.spawnX, Y: s.spawnY, W: s.coins.Width, H: s.coins.Height}, true
}
