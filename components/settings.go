package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles changed at runtime and persisted between runs.
type SettingsData struct {
	Debug       bool
	DrawSensors bool
	DrawTerrain bool
	DrawHitbox  bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// HUDData holds HUD animation state.
type HUDData struct {
	RingFlash int // Position in the flash cycle while holding no rings
	Ticks     int // Frames since the level started
	Record    int // Saved best ring count for the level
}

var HUD = donburi.NewComponentType[HUDData]()
