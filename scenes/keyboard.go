package scenes

import (
	cfg "github.com/automoto/arena-survival/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings maps each action to the keys that trigger it.
type KeyBindings map[cfg.ActionID][]ebiten.Key

// DefaultBindings returns the keyboard layout of the client.
func DefaultBindings() KeyBindings {
	return KeyBindings{
		cfg.ActionMoveForward: {ebiten.KeyW},
		cfg.ActionMoveBack:    {ebiten.KeyS},
		cfg.ActionMoveLeft:    {ebiten.KeyA},
		cfg.ActionMoveRight:   {ebiten.KeyD},
		cfg.ActionRotateLeft:  {ebiten.KeyLeft, ebiten.KeyQ},
		cfg.ActionRotateRight: {ebiten.KeyRight, ebiten.KeyE},
		cfg.ActionFire:        {ebiten.KeySpace, ebiten.KeyUp},
		cfg.ActionPause:       {ebiten.KeyEscape, ebiten.KeyP},
		cfg.ActionStart:       {ebiten.KeyEnter},
		cfg.ActionAcknowledge: {ebiten.KeyBackspace, ebiten.KeyM},
	}
}

// Keyboard is the input source backed by ebiten's key state.
type Keyboard struct {
	Bindings KeyBindings
}

func NewKeyboard(bindings KeyBindings) *Keyboard {
	return &Keyboard{Bindings: bindings}
}

func (k *Keyboard) Pressed(action cfg.ActionID) bool {
	for _, key := range k.Bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// TickClock reports one ebiten tick per step. Pausing is handled by the
// simulation, so the clock never skips.
type TickClock struct{}

func (TickClock) ElapsedSinceLastStep() float64 {
	return 1 / float64(ebiten.TPS())
}
