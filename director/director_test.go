package director_test

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/director"
	"github.com/automoto/arena-survival/mocks"
	"github.com/automoto/arena-survival/systems"
	"github.com/yohamta/donburi"
	"go.uber.org/mock/gomock"
)

type stepClock float64

func (c stepClock) ElapsedSinceLastStep() float64 { return float64(c) }

type noInput struct{}

func (noInput) Pressed(cfg.ActionID) bool { return false }

// visualCounter records presentation calls per entity.
type visualCounter struct {
	added   map[donburi.Entity]int
	removed map[donburi.Entity]int
}

func newVisualCounter() *visualCounter {
	return &visualCounter{
		added:   make(map[donburi.Entity]int),
		removed: make(map[donburi.Entity]int),
	}
}

func (v *visualCounter) AddVisual(e *donburi.Entry)    { v.added[e.Entity()]++ }
func (v *visualCounter) RemoveVisual(e *donburi.Entry) { v.removed[e.Entity()]++ }

func newDirector(t *testing.T, opts director.Options) *director.Director {
	t.Helper()
	if opts.Presenter == nil {
		opts.Presenter = newVisualCounter()
	}
	if opts.Input == nil {
		opts.Input = noInput{}
	}
	if opts.Clock == nil {
		opts.Clock = stepClock(0.1)
	}
	d, err := director.New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestNewRequiresCollaborators(t *testing.T) {
	tests := []struct {
		name string
		opts director.Options
		want error
	}{
		{"presenter", director.Options{Input: noInput{}, Clock: stepClock(0)}, director.ErrMissingPresenter},
		{"input", director.Options{Presenter: newVisualCounter(), Clock: stepClock(0)}, director.ErrMissingInput},
		{"clock", director.Options{Presenter: newVisualCounter(), Input: noInput{}}, director.ErrMissingClock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := director.New(tt.opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if d != nil {
				t.Fatalf("got a director alongside the error")
			}
		})
	}
}

func TestNewStartsInMenu(t *testing.T) {
	d := newDirector(t, director.Options{})

	if d.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", d.State())
	}
	d.Step()
	if d.State() != cfg.StateMenu || d.Player() != nil {
		t.Fatalf("menu step started a run")
	}
}

func TestNewLoadsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	stored := make([]components.RunResult, 7)
	for i := range stored {
		stored[i] = components.RunResult{Time: float64(10 - i), Score: 100 * i}
	}
	ledger.EXPECT().LoadHistory().Return(stored, nil)

	d := newDirector(t, director.Options{Ledger: ledger})

	history := d.History()
	if len(history) != cfg.Ledger.MaxEntries {
		t.Fatalf("history has %d entries, want %d", len(history), cfg.Ledger.MaxEntries)
	}
	if history[0] != stored[0] {
		t.Fatalf("newest entry = %+v, want %+v", history[0], stored[0])
	}
}

func TestNewToleratesLedgerLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	ledger.EXPECT().LoadHistory().Return(nil, errors.New("corrupt"))

	d := newDirector(t, director.Options{Ledger: ledger})

	if len(d.History()) != 0 {
		t.Fatalf("history = %+v, want empty", d.History())
	}
}

func TestAdvanceSanitizesDelta(t *testing.T) {
	d := newDirector(t, director.Options{})
	d.StartNewGame()

	d.Advance(-1)
	d.Advance(math.NaN())
	d.Advance(math.Inf(1))

	if d.SurvivalTime() != 0 {
		t.Fatalf("survival time = %v after invalid deltas, want 0", d.SurvivalTime())
	}
}

func TestPauseResume(t *testing.T) {
	d := newDirector(t, director.Options{})
	d.StartNewGame()
	for i := 0; i < 5; i++ {
		d.Step()
	}
	before := d.SurvivalTime()

	if !d.TogglePause() {
		t.Fatalf("pause did not change state")
	}
	for i := 0; i < 20; i++ {
		d.Step()
	}
	if d.SurvivalTime() != before {
		t.Fatalf("survival time %v changed while paused, want %v", d.SurvivalTime(), before)
	}

	d.TogglePause()
	d.Advance(0)
	d.Step()
	if got, want := d.SurvivalTime(), before+0.1; math.Abs(got-want) > 1e-9 {
		t.Fatalf("survival time = %v after resume, want %v", got, want)
	}
}

func TestTogglePauseOutsideRun(t *testing.T) {
	d := newDirector(t, director.Options{})

	if d.TogglePause() {
		t.Fatalf("pause toggled from the menu")
	}
	if d.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", d.State())
	}
}

func TestRunLifecycleBalancesVisuals(t *testing.T) {
	visuals := newVisualCounter()
	ledger := systems.NewMemoryLedger()
	d := newDirector(t, director.Options{
		Presenter: visuals,
		Input:     systems.NewAutopilot(),
		Clock:     stepClock(1.0 / 30),
		Ledger:    ledger,
		Seed:      7,
	})

	// Stay inside the first spawn interval so the run cannot end early
	d.StartNewGame()
	for i := 0; i < 30*4; i++ {
		d.Step()
	}
	player := d.Player()
	if player == nil {
		t.Fatalf("run ended early")
	}
	components.Combatant.Get(player).Health = 0
	d.Step()

	if d.State() != cfg.StateGameOver {
		t.Fatalf("state = %v, want game over", d.State())
	}
	if len(visuals.added) == 0 {
		t.Fatalf("no visuals were added")
	}
	for id, n := range visuals.added {
		if n != 1 {
			t.Errorf("entity %v added %d times", id, n)
		}
		if visuals.removed[id] != 1 {
			t.Errorf("entity %v removed %d times, want 1", id, visuals.removed[id])
		}
	}
	for id := range visuals.removed {
		if visuals.added[id] == 0 {
			t.Errorf("entity %v removed without being added", id)
		}
	}

	r, ok := d.LastResult()
	if !ok {
		t.Fatalf("no result recorded")
	}
	if want := (d.TotalSpawned() - len(d.Opponents())) * cfg.Ledger.PointsPerKO; r.Score > want || r.Score < 0 {
		t.Fatalf("score = %d, out of range for %d spawned", r.Score, d.TotalSpawned())
	}
	if ledger.Saves() != 1 {
		t.Fatalf("ledger saved %d times, want 1", ledger.Saves())
	}
	if math.Abs(r.Time-4) > 0.1 {
		t.Fatalf("survival time = %v, want about 4s", r.Time)
	}
}

func TestStartNewGameResetsRun(t *testing.T) {
	d := newDirector(t, director.Options{})
	d.StartNewGame()
	for i := 0; i < 60; i++ {
		d.Step()
	}
	if d.TotalSpawned() < 2 {
		t.Fatalf("totalSpawned = %d after 6s, want at least 2", d.TotalSpawned())
	}

	d.StartNewGame()

	if d.SurvivalTime() != 0 || d.TotalSpawned() != cfg.Spawn.InitialBatch || len(d.Opponents()) != cfg.Spawn.InitialBatch {
		t.Fatalf("restart left survival %v, spawned %d, roster %d",
			d.SurvivalTime(), d.TotalSpawned(), len(d.Opponents()))
	}
	if h := components.Combatant.Get(d.Player()).Health; h != cfg.Player.Health {
		t.Fatalf("health = %d, want %d", h, cfg.Player.Health)
	}
}

func TestAcknowledgeReturnsToMenu(t *testing.T) {
	d := newDirector(t, director.Options{})
	d.StartNewGame()
	d.Acknowledge()
	if d.State() != cfg.StatePlaying {
		t.Fatalf("acknowledge during a run changed state to %v", d.State())
	}

	components.Combatant.Get(d.Player()).Health = 0
	d.Step()
	d.Acknowledge()

	if d.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", d.State())
	}
	if len(d.History()) != 1 {
		t.Fatalf("history = %d entries, want 1", len(d.History()))
	}
}
