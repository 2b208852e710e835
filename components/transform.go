package components

import (
	"github.com/automoto/arena-survival/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the planar position of an entity.
type TransformData struct {
	Position gamemath.Vec
}

var Transform = donburi.NewComponentType[TransformData]()
