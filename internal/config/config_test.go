package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultInvasionConfig()
	if cfg.Screen != def.Screen {
		t.Errorf("screen = %+v, expected %+v", cfg.Screen, def.Screen)
	}
	if cfg.Ship != def.Ship || cfg.Bullet != def.Bullet || cfg.Alien != def.Alien {
		t.Error("entity sizes differ between embedded YAML and DefaultInvasionConfig")
	}
	for _, name := range []DifficultyPreset{DifficultyEasy, DifficultyHard} {
		if cfg.Presets[name] != def.Presets[name] {
			t.Errorf("preset %q = %+v, expected %+v", name, cfg.Presets[name], def.Presets[name])
		}
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultInvasionConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvasionConfig)
		want   string
	}{
		{"zero screen", func(c *InvasionConfig) { c.Screen.Width = 0 }, "screen size"},
		{"no ships", func(c *InvasionConfig) { c.Ship.Limit = 0 }, "ship limit"},
		{"no bullets", func(c *InvasionConfig) { c.Bullet.Allowed = 0 }, "bullets allowed"},
		{"slowdown", func(c *InvasionConfig) { c.Progression.SpeedupScale = 0.5 }, "speedup scale"},
		{"missing hard", func(c *InvasionConfig) { delete(c.Presets, DifficultyHard) }, `missing "hard"`},
		{"bad default", func(c *InvasionConfig) { c.Gameplay.DefaultDifficulty = "insane" }, "default difficulty"},
		{"bad color", func(c *InvasionConfig) { c.Colors.Alien = "green" }, "colors.alien"},
		{"tiny screen", func(c *InvasionConfig) { c.Screen.Width = 100 }, "screen too small"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvasionConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
screen:
  width: 800
presets:
  hard:
    ship_speed: 9
    bullet_speed: 14
    alien_speed: 5
    fleet_drop_speed: 25
    alien_points: 150
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Screen.Width != 800 {
		t.Errorf("Screen.Width = %v, expected 800", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 800 {
		t.Errorf("Screen.Height should keep default 800, got %v", cfg.Screen.Height)
	}
	if cfg.Presets[DifficultyHard].AlienPoints != 150 {
		t.Errorf("hard points = %d, expected 150", cfg.Presets[DifficultyHard].AlienPoints)
	}
	if cfg.Presets[DifficultyEasy].AlienPoints != 50 {
		t.Errorf("easy preset should keep defaults, got %+v", cfg.Presets[DifficultyEasy])
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("ship:\n  limit: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Ship.Limit != 5 {
		t.Errorf("Ship.Limit = %d, expected 5", cfg.Ship.Limit)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("screen: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(broken); err == nil {
		t.Error("Load() with unparsable custom file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultInvasionConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "speedup_scale: 1.1") {
		t.Errorf("marshalled YAML should use yaml tags, got:\n%s", data)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("marshalled YAML should parse back: %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"normal", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := DefaultInvasionConfig().PresetNames()
	if len(names) != 2 || names[0] != DifficultyEasy || names[1] != DifficultyHard {
		t.Errorf("PresetNames() = %v, expected [easy hard]", names)
	}
}
