package components

import (
	cfg "github.com/automoto/arena-survival/config"
	"github.com/yohamta/donburi"
)

//go:generate mockgen -destination=../mocks/mock_hooks.go -package=mocks github.com/automoto/arena-survival/components Presenter,InputSource,Ledger,Clock,Feedback

// Presenter is the presentation sink. AddVisual is called once when an
// entity or projectile is created and RemoveVisual once when it dies or is
// removed. The entry is still valid during both calls.
type Presenter interface {
	AddVisual(e *donburi.Entry)
	RemoveVisual(e *donburi.Entry)
}

// InputSource reports the level state of each action. It is polled once per
// step; edges are derived by the simulation.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// Ledger persists the score/time history, newest first.
type Ledger interface {
	LoadHistory() ([]RunResult, error)
	SaveHistory(history []RunResult) error
}

// Clock reports the seconds elapsed since the previous step.
type Clock interface {
	ElapsedSinceLastStep() float64
}

// Status is the informational snapshot sent to the UI on every playing step.
type Status struct {
	Health       int
	Score        int
	Wave         int
	SurvivalTime float64
	Opponents    int
}

// Feedback is the optional UI feedback sink.
type Feedback interface {
	Report(status Status)
}

// HooksData holds the collaborators injected into the world.
type HooksData struct {
	Presenter Presenter
	Input     InputSource
	Ledger    Ledger
	Feedback  Feedback
}

var Hooks = donburi.NewComponentType[HooksData]()

// GetHooks returns the injected collaborators, or nil when the world has none.
func GetHooks(w donburi.World) *HooksData {
	entry, ok := Hooks.First(w)
	if !ok {
		return nil
	}
	return Hooks.Get(entry)
}

// GetSession returns the director state singleton, or nil before it exists.
func GetSession(w donburi.World) *SessionData {
	entry, ok := Session.First(w)
	if !ok {
		return nil
	}
	return Session.Get(entry)
}
