package systems

import (
	"log"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateOpponents runs pursuit and fire for every opponent in spawn order.
func UpdateOpponents(w donburi.World) {
	session := components.GetSession(w)
	for _, o := range session.Roster {
		updateOpponent(w, o, session.Delta)
	}
}

func updateOpponent(w donburi.World, o *donburi.Entry, dt float64) {
	combatant := components.Combatant.Get(o)
	if !combatant.Active() {
		return
	}
	pursuit := components.Pursuit.Get(o)
	if pursuit.Target == nil || !pursuit.Target.Valid() {
		return
	}

	t := components.Transform.Get(o)
	Pursue(t, pursuit, components.Transform.Get(pursuit.Target).Position, dt)
	syncObject(o, t.Position, getSpace(w))

	pursuit.FireTimer += dt
	if pursuit.FireTimer >= pursuit.FireCooldown {
		if _, err := factory.CreateOpponentShot(w, o); err != nil {
			log.Printf("Warning: Could not fire: %v", err)
		}
		pursuit.FireTimer = 0
	}

	updateProjectiles(w, combatant, dt)
}

// Pursue moves t straight toward target at the pursuit speed.
func Pursue(t *components.TransformData, pursuit *components.PursuitData, target gamemath.Vec, dt float64) {
	step := gamemath.DirectionTo(t.Position, target).Scale(pursuit.Speed * dt)
	t.Position = t.Position.Add(step)
	if cfg.Opponent.ClampToArena {
		t.Position = gamemath.ClampVec(t.Position, cfg.Arena.HalfExtent)
	}
}
