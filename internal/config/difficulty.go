package config

import "math"

// DifficultyManager calculates dynamic spawn parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the
// exploration distance or the tick count, depending on progression type.
func (d *DifficultyManager) Level(distance float64, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance":
		progress = distance / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an enemy base speed up to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(base, distance float64, ticks int) float64 {
	return base * (1.0 + d.Level(distance, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnStep shrinks the distance between spawn slots as difficulty rises.
// It never drops below a fifth of the base step.
func (d *DifficultyManager) SpawnStep(base, distance float64, ticks int) float64 {
	step := base * (1.0 - d.Level(distance, ticks)*d.cfg.Scaling.SpawnStepFraction)
	return math.Max(step, base*0.2)
}

// EnemyCap raises the number of simultaneous enemies as difficulty rises.
func (d *DifficultyManager) EnemyCap(base int, distance float64, ticks int) int {
	return base + int(d.Level(distance, ticks)*float64(d.cfg.Scaling.EnemyCapBonus))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
