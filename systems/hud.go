package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/lmsonic/sonicmaker/components"
	cfg "github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/fonts"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 14

func getOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	GetOrCreatePause(ecs)
	entry, _ := components.HUD.First(ecs.World)
	return components.HUD.Get(entry)
}

// UpdateHUD advances the level timer and the empty ring counter flash.
func UpdateHUD(ecs *ecs.ECS) {
	hud := getOrCreateHUD(ecs)
	hud.Ticks++

	c := playerCharacter(ecs)
	if c == nil || c.Rings() > 0 {
		hud.RingFlash = 0
		return
	}
	hud.RingFlash = (hud.RingFlash + 1) % (cfg.HUD.RingFlashFrames * 2)
}

// DrawHUD renders rings, time and the ring record in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getPlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	hud := getOrCreateHUD(ecs)
	face := fonts.HUD.Get()

	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + hudLineHeight/2

	seconds := hud.Ticks / cfg.C.TPS
	drawHUDText(screen, face, fmt.Sprintf("TIME %d:%02d", seconds/60, seconds%60), x, y, cfg.HUD.TextColor)

	ringColor := cfg.HUD.TextColor
	if hud.RingFlash >= cfg.HUD.RingFlashFrames {
		ringColor = cfg.Red
	}
	drawHUDText(screen, face, fmt.Sprintf("RINGS %d", player.Character.Rings()), x, y+hudLineHeight, ringColor)
	drawHUDText(screen, face, fmt.Sprintf("BEST %d", max(player.BestRings, hud.Record)), x, y+2*hudLineHeight, cfg.HUD.TextColor)
}

func drawHUDText(screen *ebiten.Image, face fonts.Face, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowText)
	text.Draw(screen, s, face, x, y, clr)
}
