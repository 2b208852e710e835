package components

import (
	"github.com/automoto/arena-survival/gamemath"
	"github.com/yohamta/donburi"
)

// PilotData holds the controlled entity's momentum and facing.
type PilotData struct {
	Velocity gamemath.Vec
	Heading  float64 // radians, 0 faces (0, -1)

	// Hits counts damage events taken this run, for presentation feedback.
	Hits int
}

var Pilot = donburi.NewComponentType[PilotData]()
