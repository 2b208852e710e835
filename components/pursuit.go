package components

import "github.com/yohamta/donburi"

// PursuitData is the straight-line pursue-and-fire behavior attached to
// opponents.
type PursuitData struct {
	Target *donburi.Entry // controlled entity, never owned

	Speed        float64
	FireCooldown float64
	FireTimer    float64

	// Reserved behavior variants. Spawned opponents carry them enabled but
	// only pursuit and single-shot fire act on the world.
	CanTeleport      bool
	MultiFire        bool
	EvasiveManeuvers bool
}

var Pursuit = donburi.NewComponentType[PursuitData]()
