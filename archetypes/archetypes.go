package archetypes

import (
	"github.com/automoto/arena-survival/components"
	"github.com/automoto/arena-survival/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Combatant,
		components.Pilot,
		components.Object,
	)
	Opponent = newArchetype(
		tags.Opponent,
		components.Transform,
		components.Combatant,
		components.Pursuit,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Transform,
		components.Projectile,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
		components.Hooks,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
