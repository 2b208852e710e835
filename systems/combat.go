package systems

import (
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/tags"
	"github.com/yohamta/donburi"
)

// ApplyDamage subtracts amount from a combatant's health without clamping.
// For the controlled entity that is all it does; ending the run is left to
// UpdateOutcome, and its projectiles stay live for the rest of the step.
// The first time an opponent's health drops to zero or below its Removing
// latch is set, every projectile it owns is marked dead and it is removed
// from the presentation. Later calls only subtract.
// It reports whether this call set the latch.
func ApplyDamage(w donburi.World, e *donburi.Entry, amount int) bool {
	combatant := components.Combatant.Get(e)
	combatant.Health -= amount
	if e.HasComponent(components.Pilot) {
		components.Pilot.Get(e).Hits++
	}

	if !e.HasComponent(tags.Opponent) || combatant.Health > 0 || combatant.Removing {
		return false
	}
	combatant.Removing = true
	for _, p := range combatant.Projectiles {
		components.Projectile.Get(p).Alive = false
	}
	removeVisual(w, e)
	return true
}

// InHitRange reports whether a projectile at shot hits a combatant of the
// given radius centered at target.
func InHitRange(shot, target gamemath.Vec, radius float64) bool {
	return shot.Dist(target) < radius+cfg.Combat.HitMargin
}
