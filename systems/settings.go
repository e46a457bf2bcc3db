package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/yohamta/donburi/ecs"
)

func defaultSettings() components.SettingsData {
	return components.SettingsData{
		Debug:       cfg.Debug.Enabled,
		DrawSensors: cfg.Debug.DrawSensors,
		DrawTerrain: cfg.Debug.DrawTerrain,
		DrawHitbox:  cfg.Debug.DrawHitbox,
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	GetOrCreatePause(ecs)
	entry, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(entry)
}

// UpdateSettings handles the pause and debug keys. It runs even when paused.
//
//	P, Esc   pause / resume
//	N        step one frame while paused
//	F1       debug overlay
//	F2       sensors
//	F3       terrain outlines
//	F4       hitboxes
//	H        hurt the character (debug only)
//	K        kill the character (debug only)
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	pause := GetOrCreatePause(ecs)
	pause.Step = false

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			SavePlayerRecord(ecs)
		}
	}
	if pause.IsPaused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		pause.Step = true
	}

	changed := toggle(ebiten.KeyF1, &settings.Debug)
	changed = toggle(ebiten.KeyF2, &settings.DrawSensors) || changed
	changed = toggle(ebiten.KeyF3, &settings.DrawTerrain) || changed
	changed = toggle(ebiten.KeyF4, &settings.DrawHitbox) || changed
	if changed {
		SaveCurrentSettings(settings)
	}

	if !settings.Debug || pause.IsPaused {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		HurtPlayer(ecs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		if c := playerCharacter(ecs); c != nil {
			c.Die()
		}
	}
}

func toggle(key ebiten.Key, flag *bool) bool {
	if !inpututil.IsKeyJustPressed(key) {
		return false
	}
	*flag = !*flag
	return true
}
