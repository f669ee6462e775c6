package config

import (
	"fmt"
	"math"
	"slices"
)

// ConfigurationError reports a configuration that cannot produce a playable game.
type ConfigurationError struct {
	Field  string // YAML path of the offending value, e.g. "pipes.gap"
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// TopHeightRange returns the inclusive integer range the upper pipe height is drawn from.
// The range may be empty (hi < lo) for an invalid configuration.
func (c FlappyConfig) TopHeightRange() (lo, hi int) {
	lo = int(math.Ceil(c.Pipes.MinHeight))
	hi = int(math.Floor(c.Playfield.GroundY() - c.Pipes.Gap - c.Pipes.MinHeight - c.Pipes.Margin))
	return lo, hi
}

// Validate checks that the configuration yields strictly positive pipe halves,
// a gap the body fits through and a selectable scroll speed.
// It returns a *ConfigurationError describing the first problem found.
func (c FlappyConfig) Validate() error {
	pf := c.Playfield
	switch {
	case pf.Width <= 0:
		return invalid("playfield.width", "must be positive, got %v", pf.Width)
	case pf.Height <= 0:
		return invalid("playfield.height", "must be positive, got %v", pf.Height)
	case pf.GroundHeight < 0 || pf.GroundHeight >= pf.Height:
		return invalid("playfield.ground_height", "must be in [0, %v), got %v", pf.Height, pf.GroundHeight)
	}

	if c.Physics.Gravity <= 0 {
		return invalid("physics.gravity", "must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return invalid("physics.jump_impulse", "must be negative (upward), got %v", c.Physics.JumpImpulse)
	}

	b := c.Body
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return invalid("body", "size must be positive, got %vx%v", b.Width, b.Height)
	case b.X < 0 || b.X+b.Width > pf.Width:
		return invalid("body.x", "body must fit horizontally in the playfield")
	case b.Y < 0 || b.Y+b.Height >= pf.GroundY():
		return invalid("body.y", "body must start above the ground line %v", pf.GroundY())
	case b.RotationMin > b.RotationMax:
		return invalid("body.rotation_min", "%v exceeds rotation_max %v", b.RotationMin, b.RotationMax)
	case b.RotationStep < 0:
		return invalid("body.rotation_step", "must not be negative, got %v", b.RotationStep)
	}

	p := c.Pipes
	switch {
	case p.Width <= 0:
		return invalid("pipes.width", "must be positive, got %v", p.Width)
	case p.MinHeight <= 0:
		return invalid("pipes.min_height", "must be positive, got %v", p.MinHeight)
	case p.Margin < 0:
		return invalid("pipes.margin", "must not be negative, got %v", p.Margin)
	case p.Gap < b.Height+p.Clearance:
		return invalid("pipes.gap", "%v is not traversable by a body of height %v with clearance %v", p.Gap, b.Height, p.Clearance)
	case p.SpawnDistance <= p.Width:
		return invalid("pipes.spawn_distance", "must exceed pipe width %v, got %v", p.Width, p.SpawnDistance)
	}

	lo, hi := c.TopHeightRange()
	if hi < lo {
		return invalid("pipes.gap", "no room for pipes: top height range [%d, %d] is empty", lo, hi)
	}
	if lower := pf.GroundY() - float64(hi) - p.Gap; lower <= 0 {
		return invalid("pipes.margin", "lower pipe height %v must be positive", lower)
	}

	if c.Coins.Enabled() {
		switch {
		case c.Coins.Width <= 0 || c.Coins.Height <= 0:
			return invalid("coins", "size must be positive, got %vx%v", c.Coins.Width, c.Coins.Height)
		case c.Coins.Height >= pf.GroundY():
			return invalid("coins.height", "coin does not fit above the ground")
		case c.Coins.Bonus <= 0:
			return invalid("coins.bonus", "must be positive, got %d", c.Coins.Bonus)
		case c.Coins.SpawnDistance <= p.SpawnDistance:
			return invalid("coins.spawn_distance", "must exceed pipes.spawn_distance %v, got %v", p.SpawnDistance, c.Coins.SpawnDistance)
		}
	} else if c.Coins.SpawnDistance < 0 {
		return invalid("coins.spawn_distance", "must not be negative, got %v", c.Coins.SpawnDistance)
	}

	s := c.Scroll
	switch {
	case s.Speed <= 0:
		return invalid("scroll.speed", "must be positive, got %v", s.Speed)
	case len(s.Speeds) > 0 && !slices.Contains(s.Speeds, s.Speed):
		return invalid("scroll.speed", "%v is not one of the selectable speeds %v", s.Speed, s.Speeds)
	case s.BackgroundRatio < 0:
		return invalid("scroll.background_ratio", "must not be negative, got %v", s.BackgroundRatio)
	case s.BackgroundWrap <= 0 || s.GroundWrap <= 0:
		return invalid("scroll", "wrap widths must be positive")
	}

	return nil
}
