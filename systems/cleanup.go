package systems

import (
	"github.com/automoto/arena-survival/components"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/yohamta/donburi"
)

func getSpace(w donburi.World) *components.SpaceData {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// syncObject moves an entity's broadphase object to its transform.
func syncObject(e *donburi.Entry, pos gamemath.Vec, space *components.SpaceData) {
	if space == nil || !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
		obj.MoveTo(pos, space.Offset)
	}
}

// removeVisual notifies the presentation sink that an entity left the world.
func removeVisual(w donburi.World, e *donburi.Entry) {
	if hooks := components.GetHooks(w); hooks != nil && hooks.Presenter != nil {
		hooks.Presenter.RemoveVisual(e)
	}
}

// destroyEntity removes an entity from the space and the world. When notify
// is set the presentation sink is told first.
func destroyEntity(w donburi.World, e *donburi.Entry, notify bool) {
	if e == nil || !e.Valid() {
		return
	}
	if notify {
		removeVisual(w, e)
	}
	if space := getSpace(w); space != nil && e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

// destroyCombatant removes a combatant together with every projectile it
// still owns.
func destroyCombatant(w donburi.World, e *donburi.Entry, notify bool) {
	if e == nil || !e.Valid() {
		return
	}
	combatant := components.Combatant.Get(e)
	for _, p := range combatant.Projectiles {
		destroyEntity(w, p, true)
	}
	combatant.Projectiles = nil
	destroyEntity(w, e, notify)
}

// discardRun removes the controlled entity, every opponent and every
// projectile of the current run.
func discardRun(w donburi.World) {
	session := components.GetSession(w)
	if session == nil {
		return
	}
	for _, o := range session.Roster {
		// Opponents that latched Removing already left the presentation
		notify := o.Valid() && !components.Combatant.Get(o).Removing
		destroyCombatant(w, o, notify)
	}
	session.Roster = nil

	if session.Player != nil {
		destroyCombatant(w, session.Player, true)
		session.Player = nil
	}
}
