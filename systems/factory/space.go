package factory

import (
	"github.com/automoto/arena-survival/archetypes"
	"github.com/automoto/arena-survival/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the broadphase space covering an arena of the given
// half extent plus margin on every side.
func CreateSpace(w donburi.World, halfExtent, margin float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	offset := halfExtent + margin
	size := int(offset * 2)
	components.Space.Set(space, &components.SpaceData{
		Space:  resolv.NewSpace(size, size, cellSize, cellSize),
		Offset: offset,
	})
	return space
}

// attachObject gives an entity a square broadphase object of the given half
// size centered on its transform and registers it with the space.
func attachObject(w donburi.World, e *donburi.Entry, halfSize float64, tag string) {
	pos := components.Transform.Get(e).Position
	extent := components.ObjectExtent(halfSize)
	obj := resolv.NewObject(0, 0, extent, extent, tag)
	obj.Data = e
	data := &components.ObjectData{Object: obj, HalfSize: halfSize}
	components.Object.Set(e, data)

	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	data.MoveTo(pos, space.Offset)
	space.Add(obj)
}

func addVisual(w donburi.World, e *donburi.Entry) {
	if hooks := components.GetHooks(w); hooks != nil && hooks.Presenter != nil {
		hooks.Presenter.AddVisual(e)
	}
}
