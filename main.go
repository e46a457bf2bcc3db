package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/fonts"
	"github.com/lmsonic/sonicmaker/scenes"
	"github.com/lmsonic/sonicmaker/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelIndex int) *Game {
	for name, size := range map[fonts.FontName]float64{
		fonts.HUD:      config.HUD.FontSize,
		fonts.HUDLarge: 20,
		fonts.HUDSmall: 8,
	} {
		if err := fonts.LoadFontWithSize(name, goregular.TTF, size); err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, levelIndex)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelIndex := flag.Int("level", 0, "index of the level to start on")
	characterFile := flag.String("character", "", "YAML file overriding the character tuning")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	config.Debug.CharacterFile = *characterFile
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *debug {
		config.Debug.Enabled = true
	}

	if path := config.Debug.CharacterFile; path != "" {
		character, err := config.LoadCharacterConfig(path)
		if err != nil {
			log.Printf("Warning: Could not load character config %s, using defaults: %v", path, err)
			config.Debug.CharacterFile = ""
		} else {
			config.Character = character
			log.Printf("Loaded character config from %s", path)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("sonicmaker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(*levelIndex)); err != nil {
		log.Fatal(err)
	}
}
