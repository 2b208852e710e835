package scenes

import (
	"fmt"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/director"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is one screen of the client.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Stage is shared by every scene: the simulation and its client-side
// collaborators.
type Stage struct {
	Director *director.Director
	Visuals  *VisualRegistry
	HUD      *HUD
	clock    components.Clock
}

// NewStage builds the director with the keyboard, the visual registry and the
// HUD wired in.
func NewStage(ledger components.Ledger, seed int64) (*Stage, error) {
	st := &Stage{
		Visuals: NewVisualRegistry(),
		HUD:     NewHUD(),
		clock:   TickClock{},
	}
	d, err := director.New(director.Options{
		Presenter: st.Visuals,
		Input:     NewKeyboard(DefaultBindings()),
		Clock:     st.clock,
		Ledger:    ledger,
		Feedback:  st.HUD,
		Seed:      seed,
	})
	if err != nil {
		return nil, fmt.Errorf("new stage: %w", err)
	}
	st.Director = d
	return st, nil
}

// Step advances the simulation and the visuals by one tick.
func (st *Stage) Step() {
	st.Director.Step()
	st.Visuals.Update(st.clock.ElapsedSinceLastStep())
}

// SceneFor returns the scene showing the given state.
func (st *Stage) SceneFor(sc SceneChanger, state cfg.GameState) Scene {
	switch state {
	case cfg.StatePlaying, cfg.StatePaused:
		return NewArenaScene(sc, st)
	case cfg.StateGameOver:
		return NewGameOverScene(sc, st)
	default:
		return NewMenuScene(sc, st)
	}
}

// follow switches scene when the simulation left the states shown by the
// current one.
func (st *Stage) follow(sc SceneChanger, shows ...cfg.GameState) {
	state := st.Director.State()
	for _, s := range shows {
		if s == state {
			return
		}
	}
	sc.ChangeScene(st.SceneFor(sc, state))
}
