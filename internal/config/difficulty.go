package config

import "fmt"

// Settings is the mutable runtime view of the configuration.
// Static values come from the loaded config; the dynamic ones start from a
// difficulty preset and grow with every level through IncreaseSpeed.
type Settings struct {
	cfg    InvasionConfig
	preset DifficultyPreset

	ShipSpeed      float64
	BulletSpeed    float64
	AlienSpeed     float64
	FleetDropSpeed float64
	AlienPoints    int
}

// NewSettings creates settings initialized with the config's default preset.
func NewSettings(cfg InvasionConfig) *Settings {
	s := &Settings{cfg: cfg}
	if err := s.ApplyPreset(cfg.Gameplay.DefaultDifficulty); err != nil {
		s.ApplyPreset(DifficultyEasy) //nolint:errcheck // validated configs always carry easy
	}
	return s
}

// Config returns the static configuration.
func (s *Settings) Config() InvasionConfig {
	return s.cfg
}

// Preset returns the difficulty the dynamic settings were last reset to.
func (s *Settings) Preset() DifficultyPreset {
	return s.preset
}

// ApplyPreset resets the dynamic settings to the named difficulty.
func (s *Settings) ApplyPreset(name DifficultyPreset) error {
	p, ok := s.cfg.Presets[name]
	if !ok {
		return fmt.Errorf("config: unknown difficulty preset %q", name)
	}
	s.preset = name
	s.ShipSpeed = p.ShipSpeed
	s.BulletSpeed = p.BulletSpeed
	s.AlienSpeed = p.AlienSpeed
	s.FleetDropSpeed = p.FleetDropSpeed
	s.AlienPoints = p.AlienPoints
	return nil
}

// Reset re-applies the current preset, undoing any level speedups.
func (s *Settings) Reset() {
	s.ApplyPreset(s.preset) //nolint:errcheck // preset was accepted before
}

// IncreaseSpeed scales ship, bullet and alien speeds for the next level.
// Point values stay flat.
func (s *Settings) IncreaseSpeed() {
	scale := s.cfg.Progression.SpeedupScale
	s.ShipSpeed *= scale
	s.BulletSpeed *= scale
	s.AlienSpeed *= scale
}
