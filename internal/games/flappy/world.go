package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// World owns the scrolling entities and the shared scroll speed.
// Speed is written only by the Session: set at start, zeroed on impact.
type World struct {
	Speed     float64
	Distance  float64 // Total distance scrolled this run
	Obstacles []Obstacle
	Coins     []Coin

	// Parallax offsets, each in [0, wrap).
	Background float64
	Ground     float64

	backgroundRatio float64
	backgroundWrap  float64
	groundWrap      float64
}

// NewWorld creates an empty world scrolling at the configured speed.
func NewWorld(cfg config.FlappyConfig) *World {
	return &World{
		Speed:           cfg.Scroll.Speed,
		Obstacles:       make([]Obstacle, 0, 8),
		Coins:           make([]Coin, 0, 2),
		backgroundRatio: cfg.Scroll.BackgroundRatio,
		backgroundWrap:  cfg.Scroll.BackgroundWrap,
		groundWrap:      cfg.Scroll.GroundWrap,
	}
}

// Advance returns the distance covered in the given number of frames
// and adds it to the total.
func (w *World) Advance(frames float64) float64 {
	d := w.Speed * frames
	w.Distance += d
	return d
}

// Scroll moves every entity left by distance, prunes the ones whose right
// edge has left the playfield and advances the parallax layers.
func (w *World) Scroll(distance float64) {
	if distance == 0 {
		return
	}

	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		o.X -= distance
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	w.Obstacles = kept

	coins := w.Coins[:0]
	for _, c := range w.Coins {
		c.X -= distance
		if c.X+c.W >= 0 {
			coins = append(coins, c)
		}
	}
	w.Coins = coins

	w.Background = math.Mod(w.Background+distance*w.backgroundRatio, w.backgroundWrap)
	w.Ground = math.Mod(w.Ground+distance, w.groundWrap)
}

// LiveCoin reports whether a collectable coin is on the playfield.
func (w *World) LiveCoin() bool {
	for _, c := range w.Coins {
		if c.Live() {
			return true
		}
	}
	return false
}
