package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoor/echoes/archive"
	"github.com/hollowmoor/echoes/assets"
	"github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/fonts"
	"github.com/hollowmoor/echoes/scenes"
	"github.com/hollowmoor/echoes/systems"
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
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the menu and start the first level")
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", false, "draw collision outlines")
	archivePath := flag.String("archive", "echoes_runs.db", "path to the run archive database")
	flag.Parse()

	fonts.LoadAll("assets/fonts/hud.ttf")

	if err := systems.InitPersistence(); err == nil {
		saved, _ := systems.LoadSettings()
		systems.ApplySavedSettings(saved)
	}

	store, err := archive.New(*archivePath)
	if err != nil {
		log.Printf("Warning: run archive unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	g := &Game{}
	if config.Debug.SkipMenu {
		levels, names, err := assets.LoadLevels()
		if err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
		g.scene = scenes.NewWorldScene(g, levels[names[0]], store)
	} else {
		g.scene = scenes.NewMenuScene(g, store)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
