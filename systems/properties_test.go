package systems

import (
	"testing"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/systems/factory"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"
)

func TestBatchSizeNeverExceedsCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxPopulation := rapid.IntRange(1, 256).Draw(t, "max")
		roster := rapid.IntRange(0, maxPopulation).Draw(t, "roster")

		n := BatchSize(roster, maxPopulation)

		if roster+n > maxPopulation {
			t.Fatalf("roster %d + batch %d exceeds cap %d", roster, n, maxPopulation)
		}
		if roster == 0 && n != 1 {
			t.Fatalf("empty roster batch = %d, want 1", n)
		}
		if roster > 0 && n != min(2*roster, maxPopulation-roster) {
			t.Fatalf("batch = %d for roster %d", n, roster)
		}
	})
}

func TestPushResultKeepsNewestFirst(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runs := rapid.IntRange(0, 20).Draw(t, "runs")
		var history []components.RunResult
		for i := 0; i < runs; i++ {
			history = PushResult(history, components.RunResult{Time: float64(i)}, cfg.Ledger.MaxEntries)
		}

		if len(history) != min(runs, cfg.Ledger.MaxEntries) {
			t.Fatalf("history has %d entries after %d runs", len(history), runs)
		}
		for i := 1; i < len(history); i++ {
			if history[i].Time >= history[i-1].Time {
				t.Fatalf("history not newest first: %+v", history)
			}
		}
	})
}

func TestProjectileBouncesAtMostTwicePerStep(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		half := cfg.Arena.HalfExtent
		inner := half - cfg.Projectile.Radius
		pos := gamemath.Vec{
			X: rapid.Float64Range(-inner, inner).Draw(t, "x"),
			Y: rapid.Float64Range(-inner, inner).Draw(t, "y"),
		}
		dir := gamemath.Vec{
			X: rapid.Float64Range(-1, 1).Draw(t, "dx"),
			Y: rapid.Float64Range(-1, 1).Draw(t, "dy"),
		}
		tr, p := newShot(pos, dir, rapid.Float64Range(0, 40).Draw(t, "speed"))
		p.MaxBounces = 1 << 20
		dt := rapid.Float64Range(0, 0.1).Draw(t, "dt")

		for i := 0; i < 200; i++ {
			before := p.Bounces
			AdvanceProjectile(tr, p, dt)
			if d := p.Bounces - before; d < 0 || d > 2 {
				t.Fatalf("step %d added %d bounces", i, d)
			}
			limit := half - p.Radius + p.Speed*dt
			if gamemath.ClampVec(tr.Position, limit) != tr.Position {
				t.Fatalf("step %d: projectile escaped to %+v", i, tr.Position)
			}
		}
	})
}

func TestDamageLatchNeverReverts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := donburi.NewWorld()
		factory.CreateSpace(w, cfg.Arena.HalfExtent, cfg.Arena.SpaceMargin, cfg.Arena.CellSize)
		factory.CreateSession(w, components.HooksData{}, 1)
		player := factory.CreatePlayer(w)
		o, err := factory.CreateOpponent(w, player, gamemath.Vec{X: 10})
		if err != nil {
			t.Fatalf("CreateOpponent: %v", err)
		}
		hits := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 20).Draw(t, "hits")

		latches := 0
		health := cfg.Opponent.Health
		for _, n := range hits {
			if ApplyDamage(w, o, n) {
				latches++
			}
			health -= n
			c := components.Combatant.Get(o)
			if c.Health != health {
				t.Fatalf("health = %d, want %d", c.Health, health)
			}
			if c.Removing != (latches == 1) {
				t.Fatalf("removing = %v after %d latches", c.Removing, latches)
			}
		}
		if latches > 1 {
			t.Fatalf("latched %d times", latches)
		}
		if components.Combatant.Get(player).Health != cfg.Player.Health {
			t.Fatalf("damage leaked to the controlled entity")
		}
	})
}
