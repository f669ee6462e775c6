// Package config provides YAML-based game configuration loading, validation
// and the speed/skin presets offered before a run.
package config

// FlappyConfig contains all tunables of the flappy simulation.
// Geometry is expressed in world units; y grows downward.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Body      FlappyBody      `yaml:"body"`
	Pipes     FlappyPipes     `yaml:"pipes"`
	Coins     FlappyCoins     `yaml:"coins"`
	Scroll    FlappyScroll    `yaml:"scroll"`
}

// FlappyPlayfield defines the size of the world.
type FlappyPlayfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Ground band at the bottom of the playfield
}

// GroundY returns the y coordinate of the ground line.
func (p FlappyPlayfield) GroundY() float64 {
	return p.Height - p.GroundHeight
}

// FlappyPhysics defines per-frame physics constants.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // Added to velocity every frame
	JumpImpulse   float64 `yaml:"jump_impulse"`   // Velocity set by a jump (negative = up)
	CeilingMargin float64 `yaml:"ceiling_margin"` // Top edge at or above this counts as ceiling contact
}

// FlappyBody defines the player sprite.
type FlappyBody struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	RotationMin  float64 `yaml:"rotation_min"`  // Nose-up angle in degrees
	RotationMax  float64 `yaml:"rotation_max"`  // Nose-down cap in degrees
	RotationStep float64 `yaml:"rotation_step"` // Degrees added per frame while falling
}

// FlappyPipes defines obstacle pair generation.
type FlappyPipes struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`            // Vertical opening between the halves
	MinHeight     float64 `yaml:"min_height"`     // Minimum height of either half
	Margin        float64 `yaml:"margin"`         // Extra room kept above the lower minimum
	Clearance     float64 `yaml:"clearance"`      // Gap must exceed body height by at least this much
	SpawnDistance float64 `yaml:"spawn_distance"` // Scrolled distance between pairs
}

// FlappyCoins defines collectible generation. SpawnDistance 0 disables coins.
type FlappyCoins struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Bonus         int     `yaml:"bonus"`
	SpawnDistance float64 `yaml:"spawn_distance"`
}

// Enabled reports whether coins are spawned at all.
func (c FlappyCoins) Enabled() bool {
	return c.SpawnDistance > 0
}

// FlappyScroll defines world scrolling and the decorative parallax layers.
type FlappyScroll struct {
	Speed           float64   `yaml:"speed"`            // World units per frame
	Speeds          []float64 `yaml:"speeds"`           // Selectable speeds
	BackgroundRatio float64   `yaml:"background_ratio"` // Background layer speed relative to Speed
	BackgroundWrap  float64   `yaml:"background_wrap"`
	GroundWrap      float64   `yaml:"ground_wrap"`
}
