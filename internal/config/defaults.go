package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:        500,
			Height:       750,
			GroundHeight: 95,
		},
		Physics: FlappyPhysics{
			Gravity:       0.3,
			JumpImpulse:   -6.4,
			CeilingMargin: 0,
		},
		Body: FlappyBody{
			X:            171,
			Y:            174,
			Width:        50,
			Height:       40,
			RotationMin:  -25,
			RotationMax:  90,
			RotationStep: 3,
		},
		Pipes: FlappyPipes{
			Width:         85,
			Gap:           150,
			MinHeight:     50,
			Margin:        10,
			Clearance:     40,
			SpawnDistance: 300,
		},
		Coins: FlappyCoins{
			Width:         40,
			Height:        40,
			Bonus:         3,
			SpawnDistance: 750,
		},
		Scroll: FlappyScroll{
			Speed:           3,
			Speeds:          []float64{2, 3, 4},
			BackgroundRatio: 0.25,
			BackgroundWrap:  500,
			GroundWrap:      48,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
