package systems

import (
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/yohamta/donburi"
)

// AdvanceProjectile moves a live projectile by one step, reflects it off the
// arena walls one axis at a time and expires it once it has used up its
// bounces or outlived its lifetime. A step without elapsed time changes
// nothing.
func AdvanceProjectile(t *components.TransformData, p *components.ProjectileData, dt float64) {
	if !p.Alive || dt <= 0 {
		return
	}
	t.Position = t.Position.Add(p.Direction.Scale(p.Speed * dt))

	bound := cfg.Arena.HalfExtent - p.Radius
	var bounced bool
	if p.Direction.X, bounced = gamemath.ReflectAxis(t.Position.X, p.Direction.X, bound); bounced {
		p.Bounces++
	}
	if p.Direction.Y, bounced = gamemath.ReflectAxis(t.Position.Y, p.Direction.Y, bound); bounced {
		p.Bounces++
	}
	if p.Bounces >= p.MaxBounces {
		p.Alive = false
	}

	p.Age += dt
	if p.Age > p.MaxAge && p.Alive {
		p.Alive = false
	}
}

// updateProjectiles advances every projectile owned by a combatant and drops
// the ones that expired.
func updateProjectiles(w donburi.World, owner *components.CombatantData, dt float64) {
	space := getSpace(w)
	for _, p := range owner.Projectiles {
		t := components.Transform.Get(p)
		AdvanceProjectile(t, components.Projectile.Get(p), dt)
		syncObject(p, t.Position, space)
	}
	pruneProjectiles(w, owner)
}

// pruneProjectiles removes dead projectiles from their owner's collection
// and from the world, keeping firing order.
func pruneProjectiles(w donburi.World, owner *components.CombatantData) {
	kept := owner.Projectiles[:0]
	for _, p := range owner.Projectiles {
		if components.Projectile.Get(p).Alive {
			kept = append(kept, p)
			continue
		}
		destroyEntity(w, p, true)
	}
	// Clear the tail so removed entries are not retained
	for i := len(kept); i < len(owner.Projectiles); i++ {
		owner.Projectiles[i] = nil
	}
	owner.Projectiles = kept
}
