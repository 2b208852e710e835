package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverScene shows the finished run until the player restarts or returns
// to the menu.
type GameOverScene struct {
	stage        *Stage
	sceneChanger SceneChanger
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, stage *Stage) *GameOverScene {
	return &GameOverScene{stage: stage, sceneChanger: sc}
}

func (gs *GameOverScene) Update() {
	gs.stage.Step()
	gs.stage.follow(gs.sceneChanger, cfg.StateGameOver)
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	// Fading remains of the last run
	gs.stage.Visuals.Draw(screen)

	drawCentered(screen, cfg.Menu.GameOverTitle, fonts.Title, cfg.Menu.TitleY, cfg.Red)
	if r, ok := gs.stage.Director.LastResult(); ok {
		summary := fmt.Sprintf("Survived %.1fs   Score %d", r.Time, r.Score)
		drawCentered(screen, summary, fonts.Bold, cfg.Menu.TitleY+50, cfg.Menu.TitleColor)
	}
	drawHistory(screen, gs.stage.Director.History(), cfg.Menu.HistoryStartY)
	drawCentered(screen, "Enter: Play again   Backspace: Menu", fonts.Small, cfg.Menu.HintY, cfg.Menu.TextColorNormal)
}
