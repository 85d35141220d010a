package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the hardcoded default configuration.
// It mirrors defaults/invasion.yaml and is used if the embedded file fails to parse.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
		},
		Ship: ShipConfig{
			Width:  60,
			Height: 48,
			Limit:  3,
		},
		Bullet: BulletConfig{
			Width:   3,
			Height:  15,
			Allowed: 3,
		},
		Alien: AlienConfig{
			Width:  60,
			Height: 58,
		},
		Progression: ProgressionConfig{
			SpeedupScale: 1.1,
		},
		Gameplay: GameplayConfig{
			HitPauseMS:        500,
			DefaultDifficulty: DifficultyEasy,
		},
		Colors: ColorConfig{
			Background:  "#E6E6E6",
			Ship:        "#2F4F9F",
			Bullet:      "#3C3C3C",
			Alien:       "#3A9D23",
			Text:        "#FFFFFF",
			PlayButton:  "#00A000",
			EasyButton:  "#0078D7",
			HardButton:  "#C42B1C",
			ScoreBanner: "#1E1E1E",
		},
		Presets: map[DifficultyPreset]PresetConfig{
			DifficultyEasy: {
				ShipSpeed:      6.0,
				BulletSpeed:    10.0,
				AlienSpeed:     2.0,
				FleetDropSpeed: 10,
				AlienPoints:    50,
			},
			DifficultyHard: {
				ShipSpeed:      8.0,
				BulletSpeed:    12.0,
				AlienSpeed:     4.0,
				FleetDropSpeed: 20,
				AlienPoints:    100,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
