package systems

import (
	"log"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/systems/factory"
	"github.com/yohamta/donburi"
)

// PilotIntents are the movement intents of one step.
type PilotIntents struct {
	Forward, Back, Left, Right bool
	RotateLeft, RotateRight    bool
}

func pilotIntents(input *components.InputData) PilotIntents {
	return PilotIntents{
		Forward:     GetAction(input, cfg.ActionMoveForward).Pressed,
		Back:        GetAction(input, cfg.ActionMoveBack).Pressed,
		Left:        GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right:       GetAction(input, cfg.ActionMoveRight).Pressed,
		RotateLeft:  GetAction(input, cfg.ActionRotateLeft).Pressed,
		RotateRight: GetAction(input, cfg.ActionRotateRight).Pressed,
	}
}

// SteerPilot integrates one step of the controlled entity's movement:
// thrust accumulates into velocity, velocity moves the position and then
// decays, and the position is clamped to the arena. A zero step leaves the
// pilot untouched.
func SteerPilot(pilot *components.PilotData, t *components.TransformData, intents PilotIntents, dt float64) {
	if dt <= 0 {
		return
	}

	var thrust gamemath.Vec
	if intents.Forward {
		thrust.Y--
	}
	if intents.Back {
		thrust.Y++
	}
	if intents.Left {
		thrust.X--
	}
	if intents.Right {
		thrust.X++
	}

	pilot.Velocity = pilot.Velocity.Add(thrust.Normalized().Scale(cfg.Player.Thrust * dt))
	t.Position = t.Position.Add(pilot.Velocity)
	pilot.Velocity = pilot.Velocity.Scale(cfg.Player.Damping)
	t.Position = gamemath.ClampVec(t.Position, cfg.Arena.HalfExtent)

	if intents.RotateLeft {
		pilot.Heading -= cfg.Player.TurnRate * dt
	}
	if intents.RotateRight {
		pilot.Heading += cfg.Player.TurnRate * dt
	}
}

// UpdatePlayer moves the controlled entity, fires on a fresh fire press and
// ages its projectiles.
func UpdatePlayer(w donburi.World) {
	session := components.GetSession(w)
	player := session.Player
	if player == nil || !player.Valid() {
		return
	}
	input := getOrCreateInput(w)
	combatant := components.Combatant.Get(player)

	if combatant.Active() {
		t := components.Transform.Get(player)
		SteerPilot(components.Pilot.Get(player), t, pilotIntents(input), session.Delta)
		syncObject(player, t.Position, getSpace(w))

		if GetAction(input, cfg.ActionFire).JustPressed {
			if _, err := factory.CreatePlayerShot(w, player); err != nil {
				log.Printf("Warning: Could not fire: %v", err)
			}
		}
	}

	updateProjectiles(w, combatant, session.Delta)
}
