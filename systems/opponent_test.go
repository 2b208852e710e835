package systems

import (
	"math"
	"testing"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
)

func TestOpponentPursuesAndFiresAtTarget(t *testing.T) {
	w := newTestWorld(t, components.HooksData{})
	placePlayer(t, w)
	o := placeOpponent(t, w, gamemath.Vec{X: 20})
	components.GetSession(w).Delta = 0.1

	lastX := components.Transform.Get(o).Position.X
	var fired bool
	for i := 0; i < 15 && !fired; i++ {
		UpdateOpponents(w)

		pos := components.Transform.Get(o).Position
		if pos.X >= lastX {
			t.Fatalf("step %d: x = %v, not below %v", i, pos.X, lastX)
		}
		if pos.Y != 0 {
			t.Fatalf("step %d: y drifted to %v", i, pos.Y)
		}
		lastX = pos.X

		shots := components.Combatant.Get(o).Projectiles
		if len(shots) == 0 {
			continue
		}
		fired = true
		if i < 9 {
			t.Fatalf("fired on step %d before the cooldown elapsed", i)
		}
		dir := components.Projectile.Get(shots[0]).Direction
		if math.Abs(dir.X+1) > 1e-9 || math.Abs(dir.Y) > 1e-9 {
			t.Fatalf("shot direction = %+v, want (-1, 0)", dir)
		}
		if k := components.Projectile.Get(shots[0]).Kind; k != cfg.ShotOpponent {
			t.Fatalf("shot kind = %v, want opponent", k)
		}
	}
	if !fired {
		t.Fatalf("opponent never fired")
	}
}

func TestOpponentZeroDeltaHoldsStill(t *testing.T) {
	w := newTestWorld(t, components.HooksData{})
	placePlayer(t, w)
	o := placeOpponent(t, w, gamemath.Vec{X: 20, Y: 5})
	components.GetSession(w).Delta = 0

	UpdateOpponents(w)

	if pos := components.Transform.Get(o).Position; pos != (gamemath.Vec{X: 20, Y: 5}) {
		t.Fatalf("position = %+v, want unchanged", pos)
	}
	if timer := components.Pursuit.Get(o).FireTimer; timer != 0 {
		t.Fatalf("fire timer = %v, want 0", timer)
	}
}

func TestOpponentRemovingIsIdle(t *testing.T) {
	w := newTestWorld(t, components.HooksData{})
	placePlayer(t, w)
	o := placeOpponent(t, w, gamemath.Vec{X: 20})
	ApplyDamage(w, o, cfg.Opponent.Health)
	components.GetSession(w).Delta = 2

	UpdateOpponents(w)

	if pos := components.Transform.Get(o).Position; pos != (gamemath.Vec{X: 20}) {
		t.Fatalf("removing opponent moved to %+v", pos)
	}
	if n := len(components.Combatant.Get(o).Projectiles); n != 0 {
		t.Fatalf("removing opponent fired %d projectiles", n)
	}
}

func TestPursueOnTargetDoesNotMove(t *testing.T) {
	tr := &components.TransformData{Position: gamemath.Vec{X: 1, Y: 1}}
	pursuit := &components.PursuitData{Speed: 2}

	Pursue(tr, pursuit, gamemath.Vec{X: 1, Y: 1}, 1)

	if tr.Position != (gamemath.Vec{X: 1, Y: 1}) {
		t.Fatalf("position = %+v, want unchanged", tr.Position)
	}
}
