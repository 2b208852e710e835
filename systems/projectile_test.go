package systems

import (
	"math"
	"testing"

	"github.com/automoto/arena-survival/components"
	"github.com/automoto/arena-survival/gamemath"
)

func newShot(pos, dir gamemath.Vec, speed float64) (*components.TransformData, *components.ProjectileData) {
	return &components.TransformData{Position: pos}, &components.ProjectileData{
		Direction:  dir.Normalized(),
		Speed:      speed,
		Radius:     0.5,
		MaxAge:     5,
		MaxBounces: 2,
		Alive:      true,
	}
}

func TestAdvanceProjectileBouncesOffWall(t *testing.T) {
	tr, p := newShot(gamemath.Vec{X: 49.6}, gamemath.Vec{X: 1}, 10)

	AdvanceProjectile(tr, p, 0.1)

	if math.Abs(tr.Position.X-50.6) > 1e-9 {
		t.Errorf("x = %v, want 50.6", tr.Position.X)
	}
	if p.Direction.X != -1 {
		t.Errorf("direction.x = %v, want -1", p.Direction.X)
	}
	if p.Bounces != 1 {
		t.Errorf("bounces = %d, want 1", p.Bounces)
	}
	if !p.Alive {
		t.Errorf("projectile died after one bounce")
	}

	// Back at 49.6, still past the bound: the second bounce spends it
	AdvanceProjectile(tr, p, 0.1)
	if math.Abs(tr.Position.X-49.6) > 1e-9 {
		t.Errorf("x = %v, want 49.6", tr.Position.X)
	}
	if p.Bounces != 2 {
		t.Errorf("bounces = %d, want 2", p.Bounces)
	}
	if p.Alive {
		t.Fatalf("projectile alive after reaching max bounces")
	}
}

func TestAdvanceProjectileStartingPastBound(t *testing.T) {
	tr, p := newShot(gamemath.Vec{X: -50}, gamemath.Vec{X: 1}, 10)

	AdvanceProjectile(tr, p, 0.01)

	if p.Bounces != 1 || p.Direction.X != -1 {
		t.Fatalf("bounces = %d direction.x = %v, want 1 and -1", p.Bounces, p.Direction.X)
	}
}

func TestAdvanceProjectileCornerCountsTwoBounces(t *testing.T) {
	tr, p := newShot(gamemath.Vec{X: 49.4, Y: 49.4}, gamemath.Vec{X: 1, Y: 1}, 10)

	AdvanceProjectile(tr, p, 0.1)

	if p.Bounces != 2 {
		t.Fatalf("bounces = %d, want 2", p.Bounces)
	}
	if p.Alive {
		t.Fatalf("projectile alive after reaching max bounces")
	}
}

func TestAdvanceProjectileExpiresAfterLifetime(t *testing.T) {
	tr, p := newShot(gamemath.Vec{}, gamemath.Vec{Y: 1}, 1)
	p.MaxAge = 1

	AdvanceProjectile(tr, p, 0.6)
	if !p.Alive {
		t.Fatalf("projectile died at age %v", p.Age)
	}
	AdvanceProjectile(tr, p, 0.6)
	if p.Alive {
		t.Fatalf("projectile alive at age %v, max %v", p.Age, p.MaxAge)
	}
}

func TestAdvanceProjectileZeroDelta(t *testing.T) {
	tr, p := newShot(gamemath.Vec{X: 3, Y: 4}, gamemath.Vec{X: 1}, 20)
	before := *p

	AdvanceProjectile(tr, p, 0)

	if tr.Position != (gamemath.Vec{X: 3, Y: 4}) {
		t.Errorf("position = %+v, want unchanged", tr.Position)
	}
	if *p != before {
		t.Errorf("projectile = %+v, want %+v", *p, before)
	}
}

func TestAdvanceProjectileZeroDeltaPastBound(t *testing.T) {
	tr, p := newShot(gamemath.Vec{X: 50.6}, gamemath.Vec{X: -1}, 10)
	p.Bounces = 1

	for i := 0; i < 3; i++ {
		AdvanceProjectile(tr, p, 0)
	}

	if p.Bounces != 1 || p.Direction.X != -1 || !p.Alive {
		t.Fatalf("bounces = %d direction.x = %v alive = %v, want 1, -1, true", p.Bounces, p.Direction.X, p.Alive)
	}
}

func TestAdvanceProjectileDeadIsFrozen(t *testing.T) {
	tr, p := newShot(gamemath.Vec{}, gamemath.Vec{X: 1}, 10)
	p.Alive = false

	AdvanceProjectile(tr, p, 1)

	if tr.Position != (gamemath.Vec{}) || p.Age != 0 {
		t.Fatalf("dead projectile moved to %+v with age %v", tr.Position, p.Age)
	}
}
