// Package director owns the simulation world and drives it one step at a
// time with injected collaborators.
package director

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/systems"
	"github.com/automoto/arena-survival/systems/factory"
	"github.com/yohamta/donburi"
)

var (
	ErrMissingInput     = errors.New("director: input source is required")
	ErrMissingClock     = errors.New("director: clock source is required")
	ErrMissingPresenter = errors.New("director: presentation sink is required")
)

// Options holds the collaborators of a Director. Ledger and Feedback are
// optional.
type Options struct {
	Presenter components.Presenter
	Input     components.InputSource
	Clock     components.Clock
	Ledger    components.Ledger
	Feedback  components.Feedback
	Seed      int64
}

// Director runs the arena simulation. It is not safe for concurrent use; a
// renderer must read the world between steps.
type Director struct {
	world   donburi.World
	clock   components.Clock
	systems []systems.System
}

// New builds the world, loads the score history and leaves the director in
// the menu state.
func New(opts Options) (*Director, error) {
	switch {
	case opts.Presenter == nil:
		return nil, fmt.Errorf("new director: %w", ErrMissingPresenter)
	case opts.Input == nil:
		return nil, fmt.Errorf("new director: %w", ErrMissingInput)
	case opts.Clock == nil:
		return nil, fmt.Errorf("new director: %w", ErrMissingClock)
	}

	world := donburi.NewWorld()
	factory.CreateSpace(world, cfg.Arena.HalfExtent, cfg.Arena.SpaceMargin, cfg.Arena.CellSize)
	factory.CreateSession(world, components.HooksData{
		Presenter: opts.Presenter,
		Input:     opts.Input,
		Ledger:    opts.Ledger,
		Feedback:  opts.Feedback,
	}, opts.Seed)

	d := &Director{
		world:   world,
		clock:   opts.Clock,
		systems: systems.Pipeline(),
	}
	d.loadHistory(opts.Ledger)
	return d, nil
}

func (d *Director) loadHistory(ledger components.Ledger) {
	if ledger == nil {
		return
	}
	history, err := ledger.LoadHistory()
	if err != nil {
		log.Printf("Warning: Could not load history: %v", err)
		return
	}
	if len(history) > cfg.Ledger.MaxEntries {
		history = history[:cfg.Ledger.MaxEntries]
	}
	d.session().History = history
}

// Step advances the simulation by the time reported by the clock.
func (d *Director) Step() {
	d.Advance(d.clock.ElapsedSinceLastStep())
}

// Advance runs one simulation step of dt seconds. Negative or NaN deltas are
// treated as zero.
func (d *Director) Advance(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	d.session().Delta = dt
	for _, system := range d.systems {
		system(d.world)
	}
}

// StartNewGame begins a fresh run, discarding any run in progress.
func (d *Director) StartNewGame() {
	systems.StartRun(d.world)
}

// TogglePause switches between playing and paused. It reports whether the
// state changed.
func (d *Director) TogglePause() bool {
	return systems.TogglePause(d.world)
}

// Acknowledge returns from the game over screen to the menu.
func (d *Director) Acknowledge() {
	systems.Acknowledge(d.world)
}

func (d *Director) session() *components.SessionData {
	return components.GetSession(d.world)
}

func (d *Director) State() cfg.GameState { return d.session().State }
func (d *Director) SurvivalTime() float64 { return d.session().SurvivalTime }
func (d *Director) TotalSpawned() int { return d.session().TotalSpawned }
func (d *Director) Score() int { return d.session().Score() }
func (d *Director) Wave() int { return d.session().Wave() }
func (d *Director) World() donburi.World { return d.world }
func (d *Director) Player() *donburi.Entry { return d.session().Player }

// Opponents returns the live opponents in spawn order.
func (d *Director) Opponents() []*donburi.Entry {
	return append([]*donburi.Entry(nil), d.session().Roster...)
}

// History returns the recent results, newest first.
func (d *Director) History() []components.RunResult {
	return append([]components.RunResult(nil), d.session().History...)
}

// LastResult returns the result of the most recent run, if any.
func (d *Director) LastResult() (components.RunResult, bool) {
	if r := d.session().LastResult; r != nil {
		return *r, true
	}
	return components.RunResult{}, false
}
