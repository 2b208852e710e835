package systems

import (
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/yohamta/donburi"
)

// System is one stage of a simulation step.
type System func(w donburi.World)

// WithPlayingCheck wraps a system so it only runs while a run is in progress.
func WithPlayingCheck(system System) System {
	return func(w donburi.World) {
		session := components.GetSession(w)
		if session == nil || session.State != cfg.StatePlaying {
			return
		}
		system(w)
	}
}

// Pipeline returns the systems of one simulation step in execution order.
func Pipeline() []System {
	return []System{
		UpdateInput,
		UpdateSession,
		WithPlayingCheck(UpdateSpawner),
		WithPlayingCheck(UpdatePlayer),
		WithPlayingCheck(UpdateOpponents),
		WithPlayingCheck(UpdateCollisions),
		WithPlayingCheck(UpdateRoster),
		WithPlayingCheck(UpdateOutcome),
	}
}
