package factory

import (
	"errors"

	"github.com/automoto/arena-survival/archetypes"
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/tags"
	"github.com/yohamta/donburi"
)

// ErrMissingTarget is returned when an opponent is created without a live
// target to pursue.
var ErrMissingTarget = errors.New("opponent requires a live target")

// CreateOpponent spawns an opponent pursuing target. The entity is only
// created once the target has been validated.
func CreateOpponent(w donburi.World, target *donburi.Entry, pos gamemath.Vec) (*donburi.Entry, error) {
	if target == nil || !target.Valid() || !target.HasComponent(components.Combatant) {
		return nil, ErrMissingTarget
	}

	o := archetypes.Opponent.Spawn(w)

	components.Transform.SetValue(o, components.TransformData{Position: pos})
	components.Combatant.SetValue(o, components.CombatantData{
		Health:    cfg.Opponent.Health,
		MaxHealth: cfg.Opponent.Health,
		Radius:    cfg.Opponent.Radius,
	})
	components.Pursuit.SetValue(o, components.PursuitData{
		Target:           target,
		Speed:            cfg.Opponent.Speed,
		FireCooldown:     cfg.Opponent.FireCooldown,
		CanTeleport:      cfg.Opponent.CanTeleport,
		MultiFire:        cfg.Opponent.MultiFire,
		EvasiveManeuvers: cfg.Opponent.EvasiveManeuvers,
	})

	attachObject(w, o, cfg.Opponent.Radius+cfg.Combat.HitMargin, tags.ResolvOpponent)
	addVisual(w, o)
	return o, nil
}
