package systems

import (
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves projectile hits once all entities have moved:
// opponent shots against the controlled entity, then controlled-entity shots
// against opponents, then a sweep of every dead projectile.
func UpdateCollisions(w donburi.World) {
	session := components.GetSession(w)
	ResolveHits(w, session.Player, session.Roster)
}

// ResolveHits runs the full resolution pass for one step. A projectile
// commits at most one hit and is dead for the rest of the pass afterwards.
func ResolveHits(w donburi.World, player *donburi.Entry, roster []*donburi.Entry) {
	if player == nil || !player.Valid() {
		return
	}
	resolveOpponentShots(w, player, roster)
	resolvePlayerShots(w, player, roster)

	pruneProjectiles(w, components.Combatant.Get(player))
	for _, o := range roster {
		pruneProjectiles(w, components.Combatant.Get(o))
	}
}

func resolveOpponentShots(w donburi.World, player *donburi.Entry, roster []*donburi.Entry) {
	target := components.Combatant.Get(player)
	targetPos := components.Transform.Get(player).Position

	for _, o := range roster {
		for _, shot := range components.Combatant.Get(o).Projectiles {
			if !target.Active() {
				return
			}
			data := components.Projectile.Get(shot)
			if !data.Alive || !broadphaseHit(shot, tags.ResolvPlayer) {
				continue
			}
			if InHitRange(components.Transform.Get(shot).Position, targetPos, target.Radius) {
				ApplyDamage(w, player, cfg.Combat.Damage)
				data.Alive = false
			}
		}
	}
}

func resolvePlayerShots(w donburi.World, player *donburi.Entry, roster []*donburi.Entry) {
	for _, shot := range components.Combatant.Get(player).Projectiles {
		data := components.Projectile.Get(shot)
		if !data.Alive {
			continue
		}
		candidates := broadphaseCandidates(shot, tags.ResolvOpponent)
		if len(candidates) == 0 {
			continue
		}
		shotPos := components.Transform.Get(shot).Position

		// Roster order decides which opponent takes the hit when several are
		// in range.
		for _, o := range roster {
			if _, ok := candidates[o.Entity()]; !ok {
				continue
			}
			target := components.Combatant.Get(o)
			if !target.Active() {
				continue
			}
			if InHitRange(shotPos, components.Transform.Get(o).Position, target.Radius) {
				ApplyDamage(w, o, cfg.Combat.Damage)
				data.Alive = false
				break
			}
		}
	}
}

// broadphaseHit reports whether the projectile shares a space cell with any
// object carrying the tag.
func broadphaseHit(shot *donburi.Entry, tag string) bool {
	obj := components.Object.Get(shot)
	if obj == nil || obj.Object == nil {
		return false
	}
	return obj.Check(0, 0, tag) != nil
}

// broadphaseCandidates returns the entities carrying the tag that share a
// space cell with the projectile.
func broadphaseCandidates(shot *donburi.Entry, tag string) map[donburi.Entity]struct{} {
	obj := components.Object.Get(shot)
	if obj == nil || obj.Object == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	candidates := make(map[donburi.Entity]struct{})
	for _, other := range check.ObjectsByTags(tag) {
		if entry, ok := other.Data.(*donburi.Entry); ok && entry != nil && entry.Valid() {
			candidates[entry.Entity()] = struct{}{}
		}
	}
	return candidates
}
