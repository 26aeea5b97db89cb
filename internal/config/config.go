// Package config provides YAML-based simulation configuration loading and
// difficulty management.
package config

// SimConfig contains every tunable of the simulation.
type SimConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Camera     CameraConfig     `yaml:"camera"`
	Combat     CombatConfig     `yaml:"combat"`
	Beam       BeamConfig       `yaml:"beam"`
	Special    SpecialConfig    `yaml:"special"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Mission    MissionConfig    `yaml:"mission"`
	Companion  CompanionConfig  `yaml:"companion"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Drift      DriftConfig      `yaml:"drift"`
	Advisor    AdvisorConfig    `yaml:"advisor"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the size and population of both world modes.
type WorldConfig struct {
	StorySize        float64 `yaml:"story_size"`
	OpenWorldSize    float64 `yaml:"open_world_size"`
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	ChunkSize        float64 `yaml:"chunk_size"`
	VisibilityRadius float64 `yaml:"visibility_radius"`
	Megastructures   int     `yaml:"megastructures"`     // open world ring
	RingMin          float64 `yaml:"ring_min"`           // distance from world center
	RingMax          float64 `yaml:"ring_max"`           // distance from world center
	StoryStructures  int     `yaml:"story_structures"`   // megastructures in story mode
	Formations       int     `yaml:"crystal_formations"` // story mode
	Debris           int     `yaml:"debris"`             // story mode
	DiscoverFactor   float64 `yaml:"discover_factor"`    // structures discovered within r * factor
}

// PhysicsConfig defines ship flight parameters.
type PhysicsConfig struct {
	TurnSpeed         float64 `yaml:"turn_speed"`
	Friction          float64 `yaml:"friction"`
	OpenWorldFriction float64 `yaml:"open_world_friction"`
	OpenWorldThrust   float64 `yaml:"open_world_thrust"`
	ThrustSensitivity float64 `yaml:"thrust_sensitivity"`
	TurnSensitivity   float64 `yaml:"turn_sensitivity"`
	ReverseFactor     float64 `yaml:"reverse_factor"`
	ExplorationScale  float64 `yaml:"exploration_scale"` // distance credited per unit of speed
	StickDeadZone     float64 `yaml:"stick_dead_zone"`
	GravityConstant   float64 `yaml:"gravity_constant"`
	GravityScale      float64 `yaml:"gravity_scale"`
	GravityMinDist    float64 `yaml:"gravity_min_dist"`
}

// CameraConfig defines follow and shake behavior.
type CameraConfig struct {
	FollowGain float64 `yaml:"follow_gain"`
	ShakeDecay float64 `yaml:"shake_decay"`
	Zoom       float64 `yaml:"zoom"`
}

// CombatConfig defines projectile, contact and pickup rules.
type CombatConfig struct {
	LaserSpeed           float64 `yaml:"laser_speed"`
	LaserDecay           float64 `yaml:"laser_decay"`
	EnemyHitPad          float64 `yaml:"enemy_hit_pad"`
	StructureHitPad      float64 `yaml:"structure_hit_pad"`
	EnemyHitTimer        int     `yaml:"enemy_hit_timer"`
	ContactLives         int     `yaml:"contact_lives"`
	ContactCorruption    float64 `yaml:"contact_corruption"`
	ContactIntegrity     float64 `yaml:"contact_integrity"`
	ContactShake         float64 `yaml:"contact_shake"`
	ContactHitTimer      int     `yaml:"contact_hit_timer"`
	ContactFlash         int     `yaml:"contact_flash"`
	ContactBurst         int     `yaml:"contact_burst"`
	DeathBurst           int     `yaml:"death_burst"`
	KillCharge           float64 `yaml:"kill_charge"`
	ShardDropChance      float64 `yaml:"shard_drop_chance"`
	ShardFriction        float64 `yaml:"shard_friction"`
	PickupRadius         float64 `yaml:"pickup_radius"`
	ShardIntegrity       float64 `yaml:"shard_integrity"`
	ShardCorruption      float64 `yaml:"shard_corruption"`
	ShardScore           int     `yaml:"shard_score"`
	ShardUpgradeChance   float64 `yaml:"shard_upgrade_chance"`
	TreasureScore        int     `yaml:"treasure_score"`
	TreasureMaxIntegrity float64 `yaml:"treasure_max_integrity"`
	TreasureWeaponLevel  int     `yaml:"treasure_weapon_level"`
	ParticleLimit        int     `yaml:"particle_limit"`
}

// BeamConfig defines the continuous beam weapon and its heat model.
type BeamConfig struct {
	Range        float64 `yaml:"range"`
	Cone         float64 `yaml:"cone"`
	DamageGrowth float64 `yaml:"damage_growth"` // extra damage per frame held
	HeatRate     float64 `yaml:"heat_rate"`
	CoolRate     float64 `yaml:"cool_rate"`
	Lockout      float64 `yaml:"lockout"`
	Resume       float64 `yaml:"resume"`
	KillCharge   float64 `yaml:"kill_charge"`
	KillBurst    int     `yaml:"kill_burst"`
	KillShake    float64 `yaml:"kill_shake"`
	SparkChance  float64 `yaml:"spark_chance"`
}

// SpecialConfig defines the quantum purge.
type SpecialConfig struct {
	Cost             float64 `yaml:"cost"`
	Radius           float64 `yaml:"radius"`
	CorruptionRelief float64 `yaml:"corruption_relief"`
	Shake            float64 `yaml:"shake"`
	WaveGrowth       float64 `yaml:"wave_growth"`
	WaveDecay        float64 `yaml:"wave_decay"`
}

// SpawnConfig defines the distance-indexed enemy director.
type SpawnConfig struct {
	Step                float64 `yaml:"step"` // exploration distance per spawn slot
	MaxEnemies          int     `yaml:"max_enemies"`
	Distance            float64 `yaml:"distance"`
	MothershipThreshold float64 `yaml:"mothership_threshold"`
	KamikazeThreshold   float64 `yaml:"kamikaze_threshold"`
	ScoutThreshold      float64 `yaml:"scout_threshold"`
	BroodIntervalMs     float64 `yaml:"brood_interval_ms"`
	BroodOffset         float64 `yaml:"brood_offset"`
}

// MissionConfig defines the mission chain.
type MissionConfig struct {
	CheckIntervalMs float64 `yaml:"check_interval_ms"`
	ExploreGoal     float64 `yaml:"explore_goal"`
	HubGoal         int     `yaml:"hub_goal"`
	HubSpacing      float64 `yaml:"hub_spacing"` // hub index = distance / spacing
	HubRadius       float64 `yaml:"hub_radius"`
	Treasures       int     `yaml:"treasures"`
	TreasureSpread  float64 `yaml:"treasure_spread"`
}

// CompanionConfig defines the AI wingman.
type CompanionConfig struct {
	ThreatRadius float64 `yaml:"threat_radius"`
	ScoutRadius  float64 `yaml:"scout_radius"`
	OrbitRadius  float64 `yaml:"orbit_radius"`
	OrbitSpeed   float64 `yaml:"orbit_speed"`
	DefendOffset float64 `yaml:"defend_offset"`
	ScoutOffset  float64 `yaml:"scout_offset"`
	Gain         float64 `yaml:"gain"`
	Damping      float64 `yaml:"damping"`
	MessageGapMs float64 `yaml:"message_gap_ms"`
	MaxMessages  int     `yaml:"max_messages"`
	AttackAlert  float64 `yaml:"attack_alert"`
	RamDamage    float64 `yaml:"ram_damage"`
	Radius       float64 `yaml:"radius"`
}

// HazardConfig defines blackholes and warp traversal.
type HazardConfig struct {
	BlackholeRadius float64 `yaml:"blackhole_radius"`
	BlackholeMass   float64 `yaml:"blackhole_mass"`
	HorizonFactor   float64 `yaml:"horizon_factor"`
	CaptureFactor   float64 `yaml:"capture_factor"` // gravity reaches radius * factor
	DiscoverFactor  float64 `yaml:"discover_factor"`
	WarpFrames      int     `yaml:"warp_frames"`
	LandJitter      float64 `yaml:"land_jitter"`
	ExitDamping     float64 `yaml:"exit_damping"`
	StoryPairs      int     `yaml:"story_pairs"`
	OpenWorldPairs  int     `yaml:"open_world_pairs"`
	Margin          float64 `yaml:"margin"`
}

// DriftConfig defines the passive corruption drift while running.
type DriftConfig struct {
	IntervalMs float64 `yaml:"interval_ms"`
	Corruption float64 `yaml:"corruption"`
	Integrity  float64 `yaml:"integrity"`
}

// AdvisorConfig defines the advisory service and its buffs.
type AdvisorConfig struct {
	Endpoint            string  `yaml:"endpoint"`
	TimeoutMs           int     `yaml:"timeout_ms"`
	CoherenceIntegrity  float64 `yaml:"coherence_integrity"`
	CoherenceCorruption float64 `yaml:"coherence_corruption"`
	FieldClearRadius    float64 `yaml:"field_clear_radius"`
	SpeedSyncFactor     float64 `yaml:"speed_sync_factor"`
	SpeedSyncFrames     int     `yaml:"speed_sync_frames"`
}

// RenderConfig defines how world space maps onto the character grid.
type RenderConfig struct {
	CellSize    float64 `yaml:"cell_size"` // world units per terminal column
	StarDensity float64 `yaml:"star_density"`
	HUD         bool    `yaml:"hud"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // distance or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`    // added to enemy speed at max difficulty
	SpawnStepFraction float64 `yaml:"spawn_step_fraction"` // spawn step shrinks by this fraction at max
	EnemyCapBonus     int     `yaml:"enemy_cap_bonus"`     // extra enemies allowed at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
