package components

import (
	"github.com/automoto/arena-survival/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broadphase collision object mirroring an entity's
// transform inside the resolv space.
type ObjectData struct {
	*resolv.Object
	HalfSize float64
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the resolv space together with the offset that maps arena
// coordinates (centered on the origin) onto space coordinates (starting at 0).
type SpaceData struct {
	*resolv.Space
	Offset float64
}

var Space = donburi.NewComponentType[SpaceData]()

// MoveTo centers the collision object on an arena position and re-registers
// it with its space cells.
func (o *ObjectData) MoveTo(center gamemath.Vec, offset float64) {
	o.X = center.X + offset - o.HalfSize
	o.Y = center.Y + offset - o.HalfSize
	o.Update()
}

// ObjectExtent is the resolv width/height for a square of the given half
// size. resolv maps an object's far edge to cells at W-1, so one unit of
// padding keeps the registered cells covering the whole square.
func ObjectExtent(halfSize float64) float64 {
	return halfSize*2 + 1
}
