package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	// TPS is the fixed simulation rate.
	TPS int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled     bool // Show the debug overlay on start
	DrawSensors bool // Draw the six character sensors and their last hits
	DrawTerrain bool // Outline every terrain polygon
	DrawHitbox  bool // Draw the character and solid object boxes
	// CharacterFile overrides the tuning with a YAML file when set.
	CharacterFile string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast camera follows the character (0.0-1.0)
	LookAheadDistanceX float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64 // How fast look-ahead offset changes (0.0-1.0)
	LookUpOffset       float64 // Vertical shift while looking up or crouching
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	FontSize   float64
	Margin     float64
	TextColor  color.RGBA
	ShadowText color.RGBA
	// RingFlashFrames is how long the ring counter flashes after it hits zero.
	RingFlashFrames int
}

// DebugColorsConfig contains the colors of the debug overlays
type DebugColorsConfig struct {
	Terrain       color.RGBA
	OneWay        color.RGBA
	SensorFloor   color.RGBA
	SensorCeiling color.RGBA
	SensorPush    color.RGBA
	SensorHit     color.RGBA
	Hitbox        color.RGBA
	Attacking     color.RGBA
	Solid         color.RGBA
	Switcher      color.RGBA
	Ring          color.RGBA
}

// RingConfig contains ring pickup and scatter tuning
type RingConfig struct {
	Radius         float64
	ScatterLife    int     // Frames a scattered ring lives
	ScatterGravity float64 // Added to scattered ring velocity.y each frame
	BounceFactor   float64 // Velocity kept after bouncing off the floor
}

// Global configuration instances
var C *Config
var Debug DebugConfig
var Camera CameraConfig
var HUD HUDConfig
var DebugColors DebugColorsConfig
var Ring RingConfig
var Character CharacterConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  424,
		Height: 240,
		TPS:    60,
	}

	Debug = DebugConfig{
		DrawSensors: true,
		DrawTerrain: true,
		DrawHitbox:  false,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.2,
		LookAheadDistanceX: 32.0,
		LookAheadSmoothing: 0.05,
		LookUpOffset:       64.0,
	}

	HUD = HUDConfig{
		FontSize:        10,
		Margin:          8,
		TextColor:       White,
		ShadowText:      Black,
		RingFlashFrames: 16,
	}

	DebugColors = DebugColorsConfig{
		Terrain:       color.RGBA{R: 120, G: 200, B: 120, A: 255},
		OneWay:        color.RGBA{R: 200, G: 200, B: 80, A: 255},
		SensorFloor:   Green,
		SensorCeiling: LightBlue,
		SensorPush:    Magenta,
		SensorHit:     Red,
		Hitbox:        color.RGBA{R: 0, G: 0, B: 255, A: 60},
		Attacking:     color.RGBA{R: 255, G: 0, B: 0, A: 60},
		Solid:         Orange,
		Switcher:      color.RGBA{R: 160, G: 80, B: 255, A: 255},
		Ring:          Yellow,
	}

	Ring = RingConfig{
		Radius:         8,
		ScatterLife:    256,
		ScatterGravity: 0.09375,
		BounceFactor:   -0.75,
	}

	Character = DefaultCharacter()
}
