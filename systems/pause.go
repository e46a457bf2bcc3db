package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lmsonic/sonicmaker/archetypes"
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	x := int((width - float64(len(title))*12) / 2)
	text.Draw(screen, title, fonts.HUDLarge.Get(), x, int(height/2), cfg.HUD.TextColor)

	hint := "P: Resume   N: Step one frame"
	hintX := int((width - float64(len(hint))*7) / 2)
	text.Draw(screen, hint, fonts.HUDSmall.Get(), hintX, int(height)-12, cfg.HUD.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused. A paused game
// still runs the frame requested with the step key.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.Step {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		components.Settings.SetValue(entry, defaultSettings())
	}
	return components.Pause.Get(entry)
}
