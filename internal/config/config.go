// Package config provides YAML-based game configuration loading and
// difficulty presets for Alien Invasion.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// InvasionConfig contains all static configuration for the game.
// Sizes and speeds are in logical pixels; speeds are per tick.
type InvasionConfig struct {
	Screen      ScreenConfig                     `yaml:"screen"`
	Ship        ShipConfig                       `yaml:"ship"`
	Bullet      BulletConfig                     `yaml:"bullet"`
	Alien       AlienConfig                      `yaml:"alien"`
	Progression ProgressionConfig                `yaml:"progression"`
	Gameplay    GameplayConfig                   `yaml:"gameplay"`
	Colors      ColorConfig                      `yaml:"colors"`
	Presets     map[DifficultyPreset]PresetConfig `yaml:"presets"`
}

// ScreenConfig defines the logical play area.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Limit  int     `yaml:"limit"` // Ships per game, including the one in play
}

// BulletConfig defines the player's projectiles.
type BulletConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Allowed int     `yaml:"allowed"` // Max bullets on screen at once
}

// AlienConfig defines a single alien's size.
type AlienConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ProgressionConfig defines how the game speeds up per level.
type ProgressionConfig struct {
	SpeedupScale float64 `yaml:"speedup_scale"`
}

// GameplayConfig holds timing and menu defaults.
type GameplayConfig struct {
	HitPauseMS        int              `yaml:"hit_pause_ms"`
	DefaultDifficulty DifficultyPreset `yaml:"default_difficulty"`
}

// ColorConfig holds hex colors (#RRGGBB) for the window frontend.
type ColorConfig struct {
	Background  string `yaml:"background"`
	Ship        string `yaml:"ship"`
	Bullet      string `yaml:"bullet"`
	Alien       string `yaml:"alien"`
	Text        string `yaml:"text"`
	PlayButton  string `yaml:"play_button"`
	EasyButton  string `yaml:"easy_button"`
	HardButton  string `yaml:"hard_button"`
	ScoreBanner string `yaml:"score_banner"`
}

// PresetConfig defines the dynamic settings a difficulty starts from.
type PresetConfig struct {
	ShipSpeed      float64 `yaml:"ship_speed"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	AlienSpeed     float64 `yaml:"alien_speed"`
	FleetDropSpeed float64 `yaml:"fleet_drop_speed"`
	AlienPoints    int     `yaml:"alien_points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

// Difficulty presets selectable from the pre-game menu.
const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// ParseDifficulty converts a user-supplied name into a preset.
// An empty name returns the empty preset, meaning "use the config default".
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy or hard)", name)
	}
}

// PresetNames returns the configured preset names in sorted order.
func (c InvasionConfig) PresetNames() []DifficultyPreset {
	names := make([]DifficultyPreset, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Validate checks that the configuration can produce a playable game.
func (c InvasionConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height))
	}
	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		errs = append(errs, errors.New("ship size must be positive"))
	}
	if c.Ship.Limit < 1 {
		errs = append(errs, fmt.Errorf("ship limit must be at least 1, got %d", c.Ship.Limit))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, errors.New("bullet size must be positive"))
	}
	if c.Bullet.Allowed < 1 {
		errs = append(errs, fmt.Errorf("bullets allowed must be at least 1, got %d", c.Bullet.Allowed))
	}
	if c.Alien.Width <= 0 || c.Alien.Height <= 0 {
		errs = append(errs, errors.New("alien size must be positive"))
	}
	if c.Alien.Width > 0 && c.Alien.Height > 0 {
		cols, rows := core.FleetLayout(c.Screen.Width, c.Screen.Height, c.Alien.Width, c.Alien.Height, c.Ship.Height)
		if cols < 1 || rows < 1 {
			errs = append(errs, fmt.Errorf("screen too small for a fleet of %vx%v aliens", c.Alien.Width, c.Alien.Height))
		}
	}
	if c.Progression.SpeedupScale < 1 {
		errs = append(errs, fmt.Errorf("speedup scale must be >= 1, got %v", c.Progression.SpeedupScale))
	}
	if c.Gameplay.HitPauseMS < 0 {
		errs = append(errs, errors.New("hit pause must not be negative"))
	}

	for _, name := range []DifficultyPreset{DifficultyEasy, DifficultyHard} {
		p, ok := c.Presets[name]
		if !ok {
			errs = append(errs, fmt.Errorf("missing %q preset", name))
			continue
		}
		if p.ShipSpeed <= 0 || p.BulletSpeed <= 0 || p.AlienSpeed <= 0 {
			errs = append(errs, fmt.Errorf("preset %q: speeds must be positive", name))
		}
		if p.FleetDropSpeed < 0 || p.AlienPoints < 0 {
			errs = append(errs, fmt.Errorf("preset %q: drop speed and points must not be negative", name))
		}
	}
	errs = append(errs, c.Colors.validate()...)

	if _, ok := c.Presets[c.Gameplay.DefaultDifficulty]; !ok {
		errs = append(errs, fmt.Errorf("default difficulty %q has no preset", c.Gameplay.DefaultDifficulty))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
