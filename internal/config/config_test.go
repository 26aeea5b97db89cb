package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SimConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultSimConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSimConfig():\n yaml=%+v\n code=%+v", fromYAML, DefaultSimConfig())
	}
}

func TestLoadSimCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  max_enemies: 7\nphysics:\n  turn_speed: 0.1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSim(path)
	if err != nil {
		t.Fatalf("LoadSim() error = %v", err)
	}
	if cfg.Spawn.MaxEnemies != 7 {
		t.Errorf("Spawn.MaxEnemies = %d, expected 7", cfg.Spawn.MaxEnemies)
	}
	if cfg.Physics.TurnSpeed != 0.1 {
		t.Errorf("Physics.TurnSpeed = %v, expected 0.1", cfg.Physics.TurnSpeed)
	}
	if cfg.Physics.Friction != 0.985 {
		t.Errorf("untouched key Physics.Friction = %v, expected default 0.985", cfg.Physics.Friction)
	}
}

func TestLoadSimMissingCustomPath(t *testing.T) {
	cfg, err := LoadSim(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadSim() with missing file should return an error")
	}
	if cfg.World.StorySize != 12000 {
		t.Errorf("fallback config StorySize = %v, expected 12000", cfg.World.StorySize)
	}
}

func TestLoadSimInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawn: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSim(path); err == nil {
		t.Error("LoadSim() with invalid YAML should return an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		level      float64
		maxEnemies int
	}{
		{DifficultyEasy, true, 0.0, 15},
		{DifficultyNormal, true, 0.3, 25},
		{DifficultyHard, true, 0.7, 35},
		{DifficultyFixed, false, 0.0, 25},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSimConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Spawn.MaxEnemies != tc.maxEnemies {
				t.Errorf("MaxEnemies = %d, expected %d", cfg.Spawn.MaxEnemies, tc.maxEnemies)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v; expected normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DefaultSimConfig().Difficulty
	cfg.InitialLevel = 0.2
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		name     string
		distance float64
		expected float64
	}{
		{"start", 0, 0.2},
		{"halfway", 10000, 0.6},
		{"max", 20000, 1.0},
		{"beyond max", 90000, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dm.Level(tc.distance, 0); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level(%v) = %v, expected %v", tc.distance, got, tc.expected)
			}
		})
	}
}

func TestDifficultyManagerScaling(t *testing.T) {
	cfg := DefaultSimConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.SpawnStep(400, 0, 0); got != 400 {
		t.Errorf("SpawnStep at start = %v, expected 400", got)
	}
	if got := dm.SpawnStep(400, 20000, 0); got != 200 {
		t.Errorf("SpawnStep at max = %v, expected 200", got)
	}
	if got := dm.EnemyCap(25, 20000, 0); got != 35 {
		t.Errorf("EnemyCap at max = %d, expected 35", got)
	}
	if got := dm.Speed(4, 20000, 0); got != 6 {
		t.Errorf("Speed at max = %v, expected 6", got)
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	fixed := NewDifficultyManager(cfg)
	if got := fixed.Level(20000, 100000); got != 0.5 {
		t.Errorf("disabled Level() = %v, expected initial 0.5", got)
	}
}

func TestDifficultyManagerTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	}
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(0, 300); got != 0.5 {
		t.Errorf("Level(ticks=300) = %v, expected 0.5", got)
	}
}
