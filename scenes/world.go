package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/archive"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/events"
	"github.com/hollowmoor/echoes/leveldata"
	"github.com/hollowmoor/echoes/systems"
	"github.com/hollowmoor/echoes/systems/factory"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs one puzzle level: the live player, the clone population
// and the loop cadence.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	store        *archive.Store
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, level *leveldata.Level, store *archive.Store) *WorldScene {
	return &WorldScene{sceneChanger: sc, level: level, store: store}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
	events.ProcessAll(ws.ecs.World)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Audio runs first, even when paused, for menu sounds.
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Fixed-timestep gameplay, in dependency order: the coordinator
	// settles the clock, controllers apply intent, physics integrates,
	// collision resolves, then the recorder samples the settled state.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLoop))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateClones))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFloatingPlatforms))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCarry))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRecording))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSwitches))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateGoals))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateState))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.UpdateTransition)
	e.AddSystem(systems.UpdateLevelComplete)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHitboxes)
	e.AddRenderer(cfg.Default, systems.DrawTransition)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)
	e.AddRenderer(cfg.HUD, systems.DrawPause)

	ws.ecs = e

	// Build the world: level geometry, player at the anchor, loop state.
	factory.CreateLevel(e, ws.level)
	anchorX, anchorY := ws.level.Anchor.X, ws.level.Anchor.Y
	factory.CreateLoopState(e, anchorX, anchorY)
	factory.CreatePlayer(e, anchorX, anchorY)
	factory.CreateCamera(e)
	factory.CreateTransition(e)

	systems.SubscribeLevelComplete(e, ws.store)

	events.CloneStuck.Subscribe(e.World, func(w donburi.World, ev events.CloneStuckData) {
		log.Printf("echo %d went stuck", ev.Identity)
		systems.PlaySFX(e, cfg.SoundCloneStuck)
	})

	systems.SetPauseActions(systems.PauseActions{
		Retry: func() {
			ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.level, ws.store))
		},
		Exit: func() {
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.store))
		},
	})

	systems.PlayMusic(cfg.Sound.LevelMusic)
}
