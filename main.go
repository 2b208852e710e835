package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/arena-survival/components"
	"github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/fonts"
	"github.com/automoto/arena-survival/scenes"
	"github.com/automoto/arena-survival/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(stage *scenes.Stage) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		stage.Director.StartNewGame()
	}
	g.scene = stage.SceneFor(g, stage.Director.State())

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

func openLedger(persist bool) components.Ledger {
	if !persist {
		return systems.NewMemoryLedger()
	}
	ledger, err := systems.OpenGDataLedger(config.Ledger.AppName, config.Ledger.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return systems.NewMemoryLedger()
	}
	return ledger
}

func main() {
	seed := flag.Int64("seed", config.Spawn.Seed, "Spawn placement seed")
	maxPopulation := flag.Int("cap", config.Spawn.MaxPopulation, "Maximum number of live opponents")
	interval := flag.Float64("interval", config.Spawn.Interval, "Seconds between spawn batches")
	skipMenu := flag.Bool("skipmenu", false, "Start a run immediately")
	persist := flag.Bool("persist", true, "Store the score history on disk")
	flag.Parse()

	config.Spawn.MaxPopulation = *maxPopulation
	config.Spawn.Interval = *interval
	config.Debug.SkipMenu = *skipMenu

	stage, err := scenes.NewStage(openLedger(*persist), *seed)
	if err != nil {
		log.Fatalf("Failed to create stage: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(stage)); err != nil {
		log.Fatal(err)
	}
}
