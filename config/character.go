package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpindashStyle selects which spindash variant the character can perform.
type SpindashStyle string

const (
	SpindashNone    SpindashStyle = "none"
	SpindashGenesis SpindashStyle = "genesis"
	SpindashCD      SpindashStyle = "cd"
)

// MidAirAction selects the move performed by pressing jump in the air.
type MidAirAction string

const (
	MidAirNone        MidAirAction = "none"
	MidAirDropDash    MidAirAction = "drop_dash"
	MidAirInstaShield MidAirAction = "insta_shield"
)

// CharacterConfig contains every tunable of the character physics.
// Speeds are in pixels per tick, accelerations in pixels per tick squared.
type CharacterConfig struct {
	// Dimensions
	WidthRadius  float64 `yaml:"width_radius"`
	HeightRadius float64 `yaml:"height_radius"`
	PushRadius   float64 `yaml:"push_radius"`
	// Radii used in ball states
	BallWidthRadius  float64 `yaml:"ball_width_radius"`
	BallHeightRadius float64 `yaml:"ball_height_radius"`

	// Ground movement
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	Friction     float64 `yaml:"friction"`
	TopSpeed     float64 `yaml:"top_speed"` // Also caps air speed

	// Slopes
	SlopeFactorNormal   float64 `yaml:"slope_factor_normal"`
	SlopeFactorRollup   float64 `yaml:"slope_factor_rollup"`
	SlopeFactorRolldown float64 `yaml:"slope_factor_rolldown"`

	// Rolling
	RollFriction     float64 `yaml:"roll_friction"`
	RollDeceleration float64 `yaml:"roll_deceleration"`
	RollTopSpeed     float64 `yaml:"roll_top_speed"`

	// Air
	JumpForce       float64 `yaml:"jump_force"`
	AirAcceleration float64 `yaml:"air_acceleration"`
	Gravity         float64 `yaml:"gravity"`

	// Hurt
	HurtXForce  float64 `yaml:"hurt_x_force"`
	HurtYForce  float64 `yaml:"hurt_y_force"`
	HurtGravity float64 `yaml:"hurt_gravity"`

	// Special moves
	SpindashStyle      SpindashStyle `yaml:"spindash_style"`
	VariableCDSpindash bool          `yaml:"variable_cd_spindash"`
	SuperPeelOut       bool          `yaml:"super_peel_out"`
	VariablePeelOut    bool          `yaml:"variable_peel_out"`
	MidAirAction       MidAirAction  `yaml:"mid_air_action"`
	DropDashSpeed      float64       `yaml:"drop_dash_speed"`
	DropDashMaxSpeed   float64       `yaml:"drop_dash_max_speed"`

	// FixDelta steps the simulation by exactly one tick per update.
	FixDelta bool `yaml:"fix_delta"`
}

// DefaultCharacter returns the Sonic tuning.
func DefaultCharacter() CharacterConfig {
	return CharacterConfig{
		WidthRadius:      9,
		HeightRadius:     19,
		PushRadius:       10,
		BallWidthRadius:  7,
		BallHeightRadius: 14,

		Acceleration: 0.046875,
		Deceleration: 0.5,
		Friction:     0.046875,
		TopSpeed:     6,

		SlopeFactorNormal:   0.125,
		SlopeFactorRollup:   0.078125,
		SlopeFactorRolldown: 0.3125,

		RollFriction:     0.0234375,
		RollDeceleration: 0.125,
		RollTopSpeed:     16,

		JumpForce:       6.5,
		AirAcceleration: 0.09375,
		Gravity:         0.21875,

		HurtXForce:  2,
		HurtYForce:  -4,
		HurtGravity: 0.1875,

		SpindashStyle:    SpindashGenesis,
		SuperPeelOut:     false,
		MidAirAction:     MidAirDropDash,
		DropDashSpeed:    8,
		DropDashMaxSpeed: 12,

		FixDelta: true,
	}
}

// Validate checks the values that would break the integrator.
func (c *CharacterConfig) Validate() error {
	if c.WidthRadius <= 0 || c.HeightRadius <= 0 || c.PushRadius <= 0 {
		return fmt.Errorf("radii must be positive (width %.2f, height %.2f, push %.2f)",
			c.WidthRadius, c.HeightRadius, c.PushRadius)
	}
	if c.BallWidthRadius <= 0 || c.BallHeightRadius <= 0 {
		return fmt.Errorf("ball radii must be positive (width %.2f, height %.2f)",
			c.BallWidthRadius, c.BallHeightRadius)
	}
	if c.BallHeightRadius > c.HeightRadius {
		return fmt.Errorf("ball height radius %.2f exceeds height radius %.2f", c.BallHeightRadius, c.HeightRadius)
	}
	if c.TopSpeed <= 0 || c.RollTopSpeed <= 0 {
		return fmt.Errorf("top speeds must be positive (top %.2f, roll %.2f)", c.TopSpeed, c.RollTopSpeed)
	}
	if c.Gravity < 0 || c.HurtGravity < 0 {
		return fmt.Errorf("gravity must not be negative (gravity %.4f, hurt %.4f)", c.Gravity, c.HurtGravity)
	}
	switch c.SpindashStyle {
	case SpindashNone, SpindashGenesis, SpindashCD:
	default:
		return fmt.Errorf("unknown spindash style %q", c.SpindashStyle)
	}
	switch c.MidAirAction {
	case MidAirNone, MidAirDropDash, MidAirInstaShield:
	default:
		return fmt.Errorf("unknown mid-air action %q", c.MidAirAction)
	}
	return nil
}

// LoadCharacterConfig reads a YAML tuning file. Fields missing from the file
// keep their DefaultCharacter values.
func LoadCharacterConfig(path string) (CharacterConfig, error) {
	cfg := DefaultCharacter()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read character config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse character config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid character config %s: %w", path, err)
	}
	return cfg, nil
}
