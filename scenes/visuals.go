package scenes

import (
	"image/color"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type visualKind int

const (
	visualPlayer visualKind = iota
	visualOpponent
	visualPlayerShot
	visualOpponentShot
)

type visual struct {
	entry    *donburi.Entry
	kind     visualKind
	position gamemath.Vec
	heading  float64
	radius   float64
	health   int

	alpha float32
	fade  *gween.Tween // set once removed
	flash *gween.Tween
	glow  float32
}

// VisualRegistry is the presentation sink of the client. It mirrors every
// entity the simulation announces and fades it out after removal.
type VisualRegistry struct {
	visuals map[donburi.Entity]*visual
	order   []donburi.Entity
}

func NewVisualRegistry() *VisualRegistry {
	return &VisualRegistry{visuals: make(map[donburi.Entity]*visual)}
}

func (r *VisualRegistry) AddVisual(e *donburi.Entry) {
	v := &visual{entry: e, alpha: 1}
	switch {
	case e.HasComponent(tags.Player):
		v.kind = visualPlayer
	case e.HasComponent(tags.Opponent):
		v.kind = visualOpponent
	case e.HasComponent(tags.Projectile):
		v.kind = visualPlayerShot
		if components.Projectile.Get(e).Kind == cfg.ShotOpponent {
			v.kind = visualOpponentShot
		}
	default:
		return
	}
	r.capture(v)
	r.visuals[e.Entity()] = v
	r.order = append(r.order, e.Entity())
}

func (r *VisualRegistry) RemoveVisual(e *donburi.Entry) {
	v, ok := r.visuals[e.Entity()]
	if !ok {
		return
	}
	r.capture(v)
	v.entry = nil
	v.fade = gween.New(1, 0, cfg.HUD.FadeSeconds, ease.OutQuad)
}

// Len returns the number of visuals still shown, fading ones included.
func (r *VisualRegistry) Len() int {
	return len(r.order)
}

// Update follows live entities and advances the fade and flash tweens.
func (r *VisualRegistry) Update(dt float64) {
	kept := r.order[:0]
	for _, id := range r.order {
		v := r.visuals[id]
		if v.entry != nil {
			r.capture(v)
		}
		if v.flash != nil {
			var done bool
			v.glow, done = v.flash.Update(float32(dt))
			if done {
				v.flash = nil
				v.glow = 0
			}
		}
		if v.fade != nil {
			var done bool
			v.alpha, done = v.fade.Update(float32(dt))
			if done {
				delete(r.visuals, id)
				continue
			}
		}
		kept = append(kept, id)
	}
	r.order = kept
}

// Clear drops every visual.
func (r *VisualRegistry) Clear() {
	r.visuals = make(map[donburi.Entity]*visual)
	r.order = nil
}

func (r *VisualRegistry) capture(v *visual) {
	e := v.entry
	if e == nil || !e.Valid() {
		return
	}
	v.position = components.Transform.Get(e).Position
	switch v.kind {
	case visualPlayer, visualOpponent:
		c := components.Combatant.Get(e)
		v.radius = c.Radius
		if c.Health < v.health {
			v.flash = gween.New(1, 0, cfg.HUD.FlashSeconds, ease.Linear)
		}
		v.health = c.Health
		if v.kind == visualPlayer {
			v.heading = components.Pilot.Get(e).Heading
		}
	default:
		v.radius = components.Projectile.Get(e).Radius
	}
}

// Draw renders every visual, mapping arena units to screen pixels around the
// screen center.
func (r *VisualRegistry) Draw(screen *ebiten.Image) {
	for _, id := range r.order {
		v := r.visuals[id]
		x, y := toScreen(screen, v.position)
		radius := float32(v.radius * cfg.HUD.PixelsPerUnit)
		clr := fadeColor(v.color(), v.alpha)

		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
		if v.kind == visualPlayer {
			facing := gamemath.Facing(v.heading)
			tip := v.position.Add(facing.Scale(v.radius * 1.6))
			tx, ty := toScreen(screen, tip)
			vector.StrokeLine(screen, x, y, tx, ty, 2, fadeColor(cfg.White, v.alpha), true)
		}
	}
}

func (v *visual) color() color.RGBA {
	var base color.RGBA
	switch v.kind {
	case visualPlayer:
		base = cfg.Green
	case visualOpponent:
		base = cfg.Red
	case visualPlayerShot:
		base = cfg.LightBlue
	default:
		base = cfg.Yellow
	}
	if v.glow > 0 {
		base = lerpColor(base, cfg.White, v.glow)
	}
	return base
}

func toScreen(screen *ebiten.Image, p gamemath.Vec) (float32, float32) {
	b := screen.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	return float32(cx + p.X*cfg.HUD.PixelsPerUnit), float32(cy + p.Y*cfg.HUD.PixelsPerUnit)
}

func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	a := clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func lerpColor(from, to color.RGBA, t float32) color.RGBA {
	f := clamp01(t)
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*f) }
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}

func clamp01(v float32) float64 {
	return min(max(float64(v), 0), 1)
}
