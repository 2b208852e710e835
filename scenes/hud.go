package scenes

import (
	"fmt"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 12
)

// HUD is the UI feedback sink. It keeps the latest status and draws it over
// the arena.
type HUD struct {
	status    components.Status
	maxHealth int
	reported  bool
}

func NewHUD() *HUD {
	return &HUD{maxHealth: cfg.Player.Health}
}

func (h *HUD) Report(status components.Status) {
	h.status = status
	h.reported = true
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.reported {
		return
	}
	margin := float32(cfg.HUD.Margin)

	vector.FillRect(screen, margin, margin, hudBarWidth, hudBarHeight, cfg.Floor, false)
	ratio := float32(0)
	if h.maxHealth > 0 {
		ratio = float32(max(h.status.Health, 0)) / float32(h.maxHealth)
	}
	vector.FillRect(screen, margin, margin, hudBarWidth*ratio, hudBarHeight, cfg.Green, false)

	lines := []string{
		fmt.Sprintf("Health %d", h.status.Health),
		fmt.Sprintf("Score %d", h.status.Score),
		fmt.Sprintf("Wave %d", h.status.Wave),
		fmt.Sprintf("Time %.1fs", h.status.SurvivalTime),
		fmt.Sprintf("Opponents %d", h.status.Opponents),
	}
	face := fonts.Regular.Get()
	y := cfg.HUD.Margin + hudBarHeight + cfg.HUD.LineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, int(cfg.HUD.Margin), int(y), cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}
}
