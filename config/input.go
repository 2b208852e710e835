package config

// ActionID represents a logical input intent polled once per step
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionRotateLeft
	ActionRotateRight
	ActionFire
	ActionPause
	ActionStart
	ActionAcknowledge
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveForward: "forward",
	ActionMoveBack:    "back",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionRotateLeft:  "rotate-left",
	ActionRotateRight: "rotate-right",
	ActionFire:        "fire",
	ActionPause:       "pause",
	ActionStart:       "start",
	ActionAcknowledge: "acknowledge",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
