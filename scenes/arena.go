package scenes

import (
	"image/color"

	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/fonts"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaScene renders a run in progress
type ArenaScene struct {
	stage        *Stage
	sceneChanger SceneChanger
}

// NewArenaScene creates a new arena scene
func NewArenaScene(sc SceneChanger, stage *Stage) *ArenaScene {
	return &ArenaScene{stage: stage, sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.stage.Step()
	as.stage.follow(as.sceneChanger, cfg.StatePlaying, cfg.StatePaused)
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	drawArena(screen)
	as.stage.Visuals.Draw(screen)
	as.stage.HUD.Draw(screen)

	if as.stage.Director.State() == cfg.StatePaused {
		width := float32(screen.Bounds().Dx())
		height := float32(screen.Bounds().Dy())
		vector.FillRect(screen, 0, 0, width, height, cfg.HUD.OverlayColor, false)
		drawCentered(screen, "PAUSED", fonts.Title, float64(height)/2, cfg.HUD.PausedColor)
		drawCentered(screen, "Esc: Resume", fonts.Small, float64(height)/2+40, cfg.HUD.TextColor)
	}
}

func drawArena(screen *ebiten.Image) {
	half := cfg.Arena.HalfExtent
	x0, y0 := toScreen(screen, gamemath.Vec{X: -half, Y: -half})
	x1, y1 := toScreen(screen, gamemath.Vec{X: half, Y: half})
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, cfg.Floor, false)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, cfg.DarkBlue, false)
}
