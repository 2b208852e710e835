package factory

import (
	"github.com/automoto/arena-survival/archetypes"
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/tags"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the controlled entity at the arena center with full
// health.
func CreatePlayer(w donburi.World) *donburi.Entry {
	p := archetypes.Player.Spawn(w)

	components.Transform.SetValue(p, components.TransformData{Position: gamemath.Vec{}})
	components.Combatant.SetValue(p, components.CombatantData{
		Health:    cfg.Player.Health,
		MaxHealth: cfg.Player.Health,
		Radius:    cfg.Player.Radius,
	})
	components.Pilot.SetValue(p, components.PilotData{})

	attachObject(w, p, cfg.Player.Radius+cfg.Combat.HitMargin, tags.ResolvPlayer)
	addVisual(w, p)
	return p
}
