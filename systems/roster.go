package systems

import (
	"github.com/automoto/arena-survival/components"
	"github.com/yohamta/donburi"
)

// UpdateRoster drops opponents whose Removing latch is set, keeping spawn
// order for the rest.
func UpdateRoster(w donburi.World) {
	session := components.GetSession(w)
	session.Roster = PruneRoster(w, session.Roster)
}

// PruneRoster removes latched opponents from the world and returns the
// remaining roster. Presentation was already notified when the latch was set.
func PruneRoster(w donburi.World, roster []*donburi.Entry) []*donburi.Entry {
	kept := roster[:0]
	for _, o := range roster {
		if !o.Valid() {
			continue
		}
		if components.Combatant.Get(o).Removing {
			destroyCombatant(w, o, false)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(roster); i++ {
		roster[i] = nil
	}
	return kept
}
