package config

import (
	"fmt"
	"slices"
)

// SpeedPreset names one of the selectable scroll speeds.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// SpeedPresets lists the presets in ascending order.
var SpeedPresets = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast}

// ApplySpeedPreset selects a scroll speed from cfg.Scroll.Speeds by preset name.
// Slow is the first entry, fast the last and normal the middle one.
func ApplySpeedPreset(cfg *FlappyConfig, preset SpeedPreset) error {
	speeds := slices.Clone(cfg.Scroll.Speeds)
	if len(speeds) == 0 {
		return invalid("scroll.speeds", "no selectable speeds configured")
	}
	slices.Sort(speeds)

	switch preset {
	case SpeedSlow:
		cfg.Scroll.Speed = speeds[0]
	case SpeedNormal:
		cfg.Scroll.Speed = speeds[len(speeds)/2]
	case SpeedFast:
		cfg.Scroll.Speed = speeds[len(speeds)-1]
	default:
		return fmt.Errorf("config: unknown speed preset %q", preset)
	}
	return nil
}

// Skin is a selectable character. Skins differ in hitbox size.
type Skin struct {
	Name   string
	Width  float64
	Height float64
}

// Skins lists the selectable characters; the first one is the default.
var Skins = []Skin{
	{Name: "yellow", Width: 50, Height: 40},
	{Name: "blue", Width: 46, Height: 36},
	{Name: "green", Width: 54, Height: 42},
	{Name: "owl", Width: 56, Height: 46},
	{Name: "bat", Width: 48, Height: 30},
}

// SkinByName looks up a skin.
func SkinByName(name string) (Skin, bool) {
	for _, s := range Skins {
		if s.Name == name {
			return s, true
		}
	}
	return Skin{}, false
}

// ApplySkin resizes the body to the named skin.
func ApplySkin(cfg *FlappyConfig, name string) error {
	skin, ok := SkinByName(name)
	if !ok {
		return fmt.Errorf("config: unknown skin %q", name)
	}
	cfg.Body.Width = skin.Width
	cfg.Body.Height = skin.Height
	return nil
}

// Selection bundles the pre-run choices a player makes.
type Selection struct {
	Speed SpeedPreset
	Skin  string
}

// Apply applies every non-empty choice to cfg and validates the result.
func (s Selection) Apply(cfg *FlappyConfig) error {
	if s.Speed != "" {
		if err := ApplySpeedPreset(cfg, s.Speed); err != nil {
			return err
		}
	}
	if s.Skin != "" {
		if err := ApplySkin(cfg, s.Skin); err != nil {
			return err
		}
	}
	return cfg.Validate()
}
