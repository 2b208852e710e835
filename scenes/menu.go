package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuScene displays the title and the recent results
type MenuScene struct {
	stage        *Stage
	sceneChanger SceneChanger
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, stage *Stage) *MenuScene {
	return &MenuScene{stage: stage, sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.stage.Step()
	ms.stage.follow(ms.sceneChanger, cfg.StateMenu)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.Menu.Title, fonts.Title, cfg.Menu.TitleY, cfg.Menu.TitleColor)
	drawHistory(screen, ms.stage.Director.History(), cfg.Menu.HistoryStartY)
	drawCentered(screen, "Enter: Start   WASD: Move   Q/E: Turn   Space: Fire   Esc: Pause",
		fonts.Small, cfg.Menu.HintY, cfg.Menu.TextColorNormal)
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y float64, clr color.Color) {
	x := (screen.Bounds().Dx() - fonts.Width(name, s)) / 2
	text.Draw(screen, s, name.Get(), x, int(y), clr)
}

func drawHistory(screen *ebiten.Image, history []components.RunResult, startY float64) {
	if len(history) == 0 {
		drawCentered(screen, "No runs yet", fonts.Bold, startY, cfg.Menu.TextColorNormal)
		return
	}
	drawCentered(screen, "Recent runs", fonts.Bold, startY, cfg.Menu.TextColorSelected)
	for i, r := range history {
		line := fmt.Sprintf("%d.  %6.1fs   %5d pts", i+1, r.Time, r.Score)
		y := startY + float64(i+1)*cfg.Menu.HistoryLineHeight
		drawCentered(screen, line, fonts.Regular, y, cfg.Menu.TextColorNormal)
	}
}
