package config

import (
	_ "embed"
)

//go:embed defaults/quasar.yaml
var defaultSimYAML []byte

// DefaultSimConfig returns the hardcoded simulation configuration.
// The embedded defaults/quasar.yaml mirrors these values.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		World: WorldConfig{
			StorySize:        12000,
			OpenWorldSize:    50000,
			StartX:           6000,
			StartY:           6000,
			ChunkSize:        2000,
			VisibilityRadius: 1500,
			Megastructures:   30,
			RingMin:          5000,
			RingMax:          20000,
			StoryStructures:  5,
			Formations:       20,
			Debris:           50,
			DiscoverFactor:   3,
		},
		Physics: PhysicsConfig{
			TurnSpeed:         0.08,
			Friction:          0.985,
			OpenWorldFriction: 0.99,
			OpenWorldThrust:   0.4,
			ThrustSensitivity: 1.2,
			TurnSensitivity:   1.0,
			ReverseFactor:     0.5,
			ExplorationScale:  0.1,
			StickDeadZone:     0.1,
			GravityConstant:   100,
			GravityScale:      0.01,
			GravityMinDist:    10,
		},
		Camera: CameraConfig{
			FollowGain: 0.1,
			ShakeDecay: 0.92,
			Zoom:       0.45,
		},
		Combat: CombatConfig{
			LaserSpeed:           25,
			LaserDecay:           0.02,
			EnemyHitPad:          15,
			StructureHitPad:      10,
			EnemyHitTimer:        5,
			ContactLives:         1,
			ContactCorruption:    12,
			ContactIntegrity:     5,
			ContactShake:         45,
			ContactHitTimer:      60,
			ContactFlash:         15,
			ContactBurst:         35,
			DeathBurst:           40,
			KillCharge:           3,
			ShardDropChance:      0.35,
			ShardFriction:        0.96,
			PickupRadius:         80,
			ShardIntegrity:       4,
			ShardCorruption:      1.2,
			ShardScore:           150,
			ShardUpgradeChance:   0.3,
			TreasureScore:        5000,
			TreasureMaxIntegrity: 20,
			TreasureWeaponLevel:  2,
			ParticleLimit:        4000,
		},
		Beam: BeamConfig{
			Range:        1200,
			Cone:         0.12,
			DamageGrowth: 0.015,
			HeatRate:     0.8,
			CoolRate:     0.5,
			Lockout:      100,
			Resume:       30,
			KillCharge:   2,
			KillBurst:    30,
			KillShake:    15,
			SparkChance:  0.2,
		},
		Special: SpecialConfig{
			Cost:             100,
			Radius:           1500,
			CorruptionRelief: 30,
			Shake:            60,
			WaveGrowth:       35,
			WaveDecay:        0.015,
		},
		Spawn: SpawnConfig{
			Step:                400,
			MaxEnemies:          25,
			Distance:            2200,
			MothershipThreshold: 0.85,
			KamikazeThreshold:   0.45,
			ScoutThreshold:      -0.25,
			BroodIntervalMs:     4000,
			BroodOffset:         100,
		},
		Mission: MissionConfig{
			CheckIntervalMs: 1000,
			ExploreGoal:     1000,
			HubGoal:         5,
			HubSpacing:      1000,
			HubRadius:       1000,
			Treasures:       3,
			TreasureSpread:  400,
		},
		Companion: CompanionConfig{
			ThreatRadius: 600,
			ScoutRadius:  1000,
			OrbitRadius:  150,
			OrbitSpeed:   0.02,
			DefendOffset: 100,
			ScoutOffset:  300,
			Gain:         0.01,
			Damping:      0.9,
			MessageGapMs: 3000,
			MaxMessages:  3,
			AttackAlert:  60,
			RamDamage:    0.5,
			Radius:       8,
		},
		Hazards: HazardConfig{
			BlackholeRadius: 400,
			BlackholeMass:   5000,
			HorizonFactor:   0.3,
			CaptureFactor:   5,
			DiscoverFactor:  2,
			WarpFrames:      90,
			LandJitter:      100,
			ExitDamping:     0.3,
			StoryPairs:      2,
			OpenWorldPairs:  5,
			Margin:          5000,
		},
		Drift: DriftConfig{
			IntervalMs: 1000,
			Corruption: 0.15,
			Integrity:  0.1,
		},
		Advisor: AdvisorConfig{
			Endpoint:            "",
			TimeoutMs:           8000,
			CoherenceIntegrity:  25,
			CoherenceCorruption: 10,
			FieldClearRadius:    800,
			SpeedSyncFactor:     1.5,
			SpeedSyncFrames:     600,
		},
		Render: RenderConfig{
			CellSize:    40,
			StarDensity: 0.03,
			HUD:         true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				SpawnStepFraction: 0.5,
				EnemyCapBonus:     10,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSimYAML
}
