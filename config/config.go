package config

import "time"

// CharacterConfig contains values shared by every character
type CharacterConfig struct {
	// Attributes
	MaxHealth   float64 `yaml:"max_health"`
	AttackPower float64 `yaml:"attack_power"`
	Stamina     float64 `yaml:"stamina"`

	// Movement
	WalkSpeed    float64 `yaml:"walk_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`

	// Facing
	LateralThreshold float64 `yaml:"lateral_threshold"` // Cardinal/diagonal split for direction resolution

	// Gates
	AttackDuration time.Duration `yaml:"attack_duration"` // Punch cooldown before the gate reopens

	// Dimensions
	CapsuleRadius float64 `yaml:"capsule_radius"`

	Lives int `yaml:"lives"` // Respawns a player gets before removal
}

// CombatConfig contains melee tuning
type CombatConfig struct {
	AttackForce  float64 `yaml:"attack_force"`  // Knockback launch magnitude
	AttackRadius float64 `yaml:"attack_radius"` // Overlap radius around the attack origin
	PunchDamage  float64 `yaml:"punch_damage"`
}

// MovementConfig contains jump and gravity tuning
type MovementConfig struct {
	Gravity          float64       `yaml:"gravity"`            // World gravity before scaling
	GravityScale     float64       `yaml:"gravity_scale"`      // Scale while grounded or rising
	ApexGravityScale float64       `yaml:"apex_gravity_scale"` // Scale once a jump passes its apex
	JumpPowerLevels  []float64     `yaml:"jump_power_levels"`  // Launch speed for consecutive jumps
	JumpReset        time.Duration `yaml:"jump_reset"`         // Grounded time before the chain resets
}

// EnemyConfig contains enemy-specific values
type EnemyConfig struct {
	MaxHealth       float64       `yaml:"max_health"`
	ChaseSpeed      float64       `yaml:"chase_speed"`
	AttackRange     float64       `yaml:"attack_range"`
	VelocityToKill  float64       `yaml:"velocity_to_kill"` // Normalized downward speed that squashes
	TimeTillDestroy time.Duration `yaml:"time_till_destroy"`
	SquashOffset    float64       `yaml:"squash_offset"` // Sprite drop while squashed
	Count           int           `yaml:"count"`         // Enemies spawned when the arena has no spawn points
}

// PerceptionConfig contains sight ranges used by enemy perception
type PerceptionConfig struct {
	SightRadius     float64 `yaml:"sight_radius"`
	LoseSightRadius float64 `yaml:"lose_sight_radius"`
}

// SimConfig contains simulation loop values
type SimConfig struct {
	TickRate    int     `yaml:"tick_rate"`
	ArenaWidth  int     `yaml:"arena_width"`
	ArenaHeight int     `yaml:"arena_height"`
	CellSize    int     `yaml:"cell_size"`
	DeathDelay  float64 `yaml:"death_delay"` // Seconds a dead character lingers before removal or respawn
}

// LoggingConfig selects the zap level and encoder
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Global configuration instances
var Character CharacterConfig
var Combat CombatConfig
var Movement MovementConfig
var Enemy EnemyConfig
var Perception PerceptionConfig
var Sim SimConfig
var Logging LoggingConfig

func init() {
	Reset()
}

// Reset restores every global to its default.
func Reset() {
	Character = CharacterConfig{
		MaxHealth:        100,
		AttackPower:      10,
		Stamina:          100,
		WalkSpeed:        600,
		Acceleration:     2400,
		Friction:         2000,
		LateralThreshold: 0.5,
		AttackDuration:   300 * time.Millisecond,
		CapsuleRadius:    70,
		Lives:            3,
	}

	Combat = CombatConfig{
		AttackForce:  750,
		AttackRadius: 150,
		PunchDamage:  35,
	}

	Movement = MovementConfig{
		Gravity:          980,
		GravityScale:     2.8,
		ApexGravityScale: 5,
		JumpPowerLevels:  []float64{1200, 1400, 1800},
		JumpReset:        200 * time.Millisecond,
	}

	Enemy = EnemyConfig{
		MaxHealth:       70,
		ChaseSpeed:      350,
		AttackRange:     140,
		VelocityToKill:  0,
		TimeTillDestroy: time.Second,
		SquashOffset:    -55,
		Count:           3,
	}

	Perception = PerceptionConfig{
		SightRadius:     1500,
		LoseSightRadius: 2000,
	}

	Sim = SimConfig{
		TickRate:    60,
		ArenaWidth:  3200,
		ArenaHeight: 3200,
		CellSize:    64,
		DeathDelay:  1,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}
}
