package systems

import (
	"log"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// UpdateSession applies the start, pause and acknowledge commands.
// This system runs after UpdateInput and before every gameplay system.
func UpdateSession(w donburi.World) {
	session := components.GetSession(w)
	if session == nil {
		return
	}
	input := getOrCreateInput(w)

	switch session.State {
	case cfg.StateMenu:
		if GetAction(input, cfg.ActionStart).JustPressed {
			StartRun(w)
		}
	case cfg.StatePlaying, cfg.StatePaused:
		if GetAction(input, cfg.ActionPause).JustPressed {
			TogglePause(w)
		}
	case cfg.StateGameOver:
		if GetAction(input, cfg.ActionStart).JustPressed {
			StartRun(w)
		} else if GetAction(input, cfg.ActionAcknowledge).JustPressed {
			Acknowledge(w)
		}
	}
}

// StartRun discards any run in progress and begins a fresh one: full health
// controlled entity at the center, zeroed counters and the initial batch of
// opponents.
func StartRun(w donburi.World) {
	session := components.GetSession(w)
	if session == nil {
		return
	}
	discardRun(w)

	session.RunID = uuid.NewString()
	session.SurvivalTime = 0
	session.TotalSpawned = 0
	session.SpawnTimer = 0
	session.Roster = nil
	session.Player = factory.CreatePlayer(w)
	session.State = cfg.StatePlaying

	SpawnOpponents(w, cfg.Spawn.InitialBatch)
	log.Printf("Run %s started with %d opponent(s)", session.RunID, len(session.Roster))
}

// TogglePause switches between playing and paused. It reports whether the
// state changed.
func TogglePause(w donburi.World) bool {
	session := components.GetSession(w)
	if session == nil {
		return false
	}
	switch session.State {
	case cfg.StatePlaying:
		session.State = cfg.StatePaused
	case cfg.StatePaused:
		session.State = cfg.StatePlaying
	default:
		return false
	}
	return true
}

// Acknowledge leaves the game over screen for the menu.
func Acknowledge(w donburi.World) {
	session := components.GetSession(w)
	if session == nil || session.State != cfg.StateGameOver {
		return
	}
	session.State = cfg.StateMenu
}
