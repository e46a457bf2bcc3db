package scenes

import (
	"errors"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lmsonic/sonicmaker/archetypes"
	"github.com/lmsonic/sonicmaker/components"
	"github.com/lmsonic/sonicmaker/sensor"
	"github.com/lmsonic/sonicmaker/systems"
	factory2 "github.com/lmsonic/sonicmaker/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a scene playing the level at levelIndex.
func NewPlatformerScene(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// Tab cycles through the levels.
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		systems.SavePlayerRecord(ps.ecs)
		if entry, ok := components.Level.First(ps.ecs.World); ok {
			level := components.Level.Get(entry)
			next := (level.LevelIndex + 1) % len(level.Levels)
			ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, next))
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause checks, in simulation order
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacter))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSolids))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSlopedSolids))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSprings))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLayerSwitchers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRings))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))

	// Add renderers
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawSolids)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawRings)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawCharacter)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawForeground)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawPause)

	ps.ecs = ecs

	if err := Populate(ps.ecs, ps.levelIndex); err != nil {
		panic(err)
	}
	systems.GetOrCreateSettings(ps.ecs)

	// Show the saved ring record for this level.
	levelEntry, _ := components.Level.First(ps.ecs.World)
	hudEntry, _ := components.HUD.First(ps.ecs.World)
	name := components.Level.Get(levelEntry).CurrentLevel.Name
	components.HUD.Get(hudEntry).Record = systems.LoadRecords()[name]
}

// Populate creates the level, its objects and the player in e.
func Populate(e *ecs.ECS, levelIndex int) error {
	// Create the level entity and load level data FIRST.
	level := factory2.CreateLevelAtIndex(e, levelIndex)
	levelData := components.Level.Get(level)
	current := levelData.CurrentLevel

	if len(current.PlayerSpawns) == 0 {
		return errors.New("no player spawn points defined in Map")
	}

	// Now create the space for ring pickups using the level's dimensions.
	spaceEntry := factory2.CreateSpace(e,
		max(current.Width, 1),
		max(current.Height, 1),
		int(sensor.TileSize), int(sensor.TileSize),
	)
	space := components.Space.Get(spaceEntry)

	for _, s := range current.Solids {
		factory2.CreateSolid(e, s)
	}
	for _, s := range current.SlopedSolids {
		factory2.CreateSlopedSolid(e, s)
	}
	for _, s := range current.Springs {
		factory2.CreateSpring(e, s)
	}
	for _, s := range current.LayerSwitchers {
		factory2.CreateLayerSwitcher(e, s)
	}
	for _, r := range current.Rings {
		factory2.CreateRing(e, space, math.Vec2{X: r.X, Y: r.Y}, math.Vec2{}, false)
	}

	spawn := current.PlayerSpawns[0]
	spawnPos := math.Vec2{X: spawn.X, Y: spawn.Y}
	player := factory2.CreatePlayer(e, spawnPos, levelData.Terrain)
	space.Add(components.Object.Get(player).Object)

	// Snap camera to the start position to prevent panning from (0,0)
	factory2.CreateCamera(e, spawnPos)

	log.Printf("Loaded level %s: %d shapes, %d solids, %d rings",
		current.Name, len(levelData.Terrain.Shapes()), len(current.Solids), len(current.Rings))
	return nil
}
