package flappy

import (
	"slices"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase  Phase
	Paused bool
	Impact bool
	Ended  bool
	Score  int
	Best   int

	Body     core.Box
	Rotation float64

	Obstacles []Obstacle // Both halves, Upper tells the role
	Coins     []Coin     // Live coins only

	Background float64 // Parallax offset of the background layer
	Ground     float64 // Parallax offset of the ground band

	Width   float64 // Playfield width
	Height  float64 // Playfield height
	GroundY float64 // Ground line
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		Paused:     s.paused,
		Impact:     s.impact,
		Ended:      s.ended,
		Score:      s.score,
		Best:       s.best,
		Body:       s.body.Box(),
		Rotation:   s.body.Rotation,
		Obstacles:  slices.Clone(s.world.Obstacles),
		Background: s.world.Background,
		Ground:     s.world.Ground,
		Width:      s.cfg.Playfield.Width,
		Height:     s.cfg.Playfield.Height,
		GroundY:    s.cfg.Playfield.GroundY(),
	}
	for _, c := range s.world.Coins {
		if c.Live() {
			snap.Coins = append(snap.Coins, c)
		}
	}
	return snap
}
