package systems

import (
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/yohamta/donburi"
)

// Planner is implemented by input sources that decide their intents from
// the world, such as the autopilot. Plan runs before the actions are polled.
type Planner interface {
	Plan(w donburi.World)
}

// UpdateInput polls the input source and updates the Input component.
// Must run before any system that reads actions.
func UpdateInput(w donburi.World) {
	input := getOrCreateInput(w)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	hooks := components.GetHooks(w)
	if hooks == nil || hooks.Input == nil {
		return
	}
	if planner, ok := hooks.Input.(Planner); ok {
		planner.Plan(w)
	}
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		input.Current[id] = hooks.Input.Pressed(id)
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous step.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
