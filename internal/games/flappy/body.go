package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Body is the player-controlled sprite. X never changes; the world scrolls instead.
type Body struct {
	X, Y     float64
	W, H     float64
	Velocity float64 // Positive = falling
	Rotation float64 // Degrees, visual only

	gravity float64
	impulse float64
	ceiling float64
	rotMin  float64
	rotMax  float64
	rotStep float64
}

// NewBody creates a body at the configured start position at rest.
func NewBody(cfg config.FlappyConfig) *Body {
	return &Body{
		X:        cfg.Body.X,
		Y:        cfg.Body.Y,
		W:        cfg.Body.Width,
		H:        cfg.Body.Height,
		Rotation: core.Clamp(0, cfg.Body.RotationMin, cfg.Body.RotationMax),
		gravity:  cfg.Physics.Gravity,
		impulse:  cfg.Physics.JumpImpulse,
		ceiling:  cfg.Physics.CeilingMargin,
		rotMin:   cfg.Body.RotationMin,
		rotMax:   cfg.Body.RotationMax,
		rotStep:  cfg.Body.RotationStep,
	}
}

// Box returns the body's collision box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Integrate advances the body by the given number of reference frames.
func (b *Body) Integrate(frames float64) {
	b.Velocity += b.gravity * frames
	b.Y += b.Velocity * frames

	if b.Velocity < 0 {
		b.Rotation = b.rotMin
		return
	}
	b.Rotation = core.Clamp(b.Rotation+b.rotStep*frames, b.rotMin, b.rotMax)
}

// Jump replaces the current velocity with the jump impulse.
func (b *Body) Jump() {
	b.Velocity = b.impulse
}

// HitsFloor reports whether the bottom edge reached the ground line.
func (b *Body) HitsFloor(groundY float64) bool {
	return b.Y+b.H >= groundY
}

// HitsCeiling reports whether the top edge reached the ceiling margin.
func (b *Body) HitsCeiling() bool {
	return b.Y <= b.ceiling
}

// landOn places the body on the ground line and stops it.
func (b *Body) landOn(groundY float64) {
	b.Y = groundY - b.H
	b.Velocity = 0
}

// clampToCeiling keeps the body inside the playfield and cancels upward motion.
func (b *Body) clampToCeiling() {
	if b.Y < 0 {
		b.Y = 0
	}
	if b.Velocity < 0 {
		b.Velocity = 0
	}
}
