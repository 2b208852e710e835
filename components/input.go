package components

import (
	cfg "github.com/automoto/arena-survival/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this step
	JustReleased bool // Released this step
}

// InputData stores the current and previous step's pressed state for all
// actions. JustPressed/JustReleased are computed by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
