package systems

import (
	"testing"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/systems/factory"
	"github.com/yohamta/donburi"
)

// heldKeys is an input source whose level state tests set directly.
type heldKeys map[cfg.ActionID]bool

func (k heldKeys) Pressed(action cfg.ActionID) bool { return k[action] }

// visualLog counts presentation calls per entity.
type visualLog struct {
	added   map[donburi.Entity]int
	removed map[donburi.Entity]int
}

func newVisualLog() *visualLog {
	return &visualLog{
		added:   make(map[donburi.Entity]int),
		removed: make(map[donburi.Entity]int),
	}
}

func (l *visualLog) AddVisual(e *donburi.Entry)    { l.added[e.Entity()]++ }
func (l *visualLog) RemoveVisual(e *donburi.Entry) { l.removed[e.Entity()]++ }

func newTestWorld(t *testing.T, hooks components.HooksData) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, cfg.Arena.HalfExtent, cfg.Arena.SpaceMargin, cfg.Arena.CellSize)
	factory.CreateSession(w, hooks, 1)
	return w
}

// placePlayer creates the controlled entity at the origin and registers it
// with the session without starting a run.
func placePlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	session := components.GetSession(w)
	session.Player = factory.CreatePlayer(w)
	session.State = cfg.StatePlaying
	return session.Player
}

func placeOpponent(t *testing.T, w donburi.World, pos gamemath.Vec) *donburi.Entry {
	t.Helper()
	session := components.GetSession(w)
	o, err := factory.CreateOpponent(w, session.Player, pos)
	if err != nil {
		t.Fatalf("CreateOpponent: %v", err)
	}
	session.Roster = append(session.Roster, o)
	session.TotalSpawned++
	return o
}

func fireAt(t *testing.T, w donburi.World, owner *donburi.Entry, kind cfg.ProjectileKind, pos, dir gamemath.Vec) *donburi.Entry {
	t.Helper()
	p, err := factory.CreateProjectile(w, owner, factory.ShotParams{
		Kind:      kind,
		Position:  pos,
		Direction: dir,
		Speed:     10,
		Lifetime:  5,
	})
	if err != nil {
		t.Fatalf("CreateProjectile: %v", err)
	}
	return p
}

// step runs the whole pipeline once with the given delta.
func step(w donburi.World, dt float64) {
	components.GetSession(w).Delta = dt
	for _, system := range Pipeline() {
		system(w)
	}
}
