package systems

import (
	"math"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/yohamta/donburi"
)

// Autopilot is an InputSource that flies the controlled entity on its own:
// it turns toward the nearest opponent, fires while aimed, backs off when
// crowded and strafes otherwise. Outside a run it keeps pulsing Start.
type Autopilot struct {
	frame   int
	pressed [cfg.ActionCount]bool
}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Plan decides this step's intents. It runs before the actions are polled.
func (a *Autopilot) Plan(w donburi.World) {
	a.frame++
	a.pressed = [cfg.ActionCount]bool{}

	session := components.GetSession(w)
	if session == nil {
		return
	}
	switch session.State {
	case cfg.StateMenu, cfg.StateGameOver:
		// Alternate so every other step is a fresh press
		a.pressed[cfg.ActionStart] = a.frame%2 == 0
		return
	case cfg.StatePaused:
		a.pressed[cfg.ActionPause] = a.frame%2 == 0
		return
	}

	if session.Player == nil || !session.Player.Valid() {
		return
	}
	pos := components.Transform.Get(session.Player).Position
	heading := components.Pilot.Get(session.Player).Heading

	nearest, dist, ok := nearestOpponent(session.Roster, pos)
	if !ok {
		a.strafe()
		return
	}

	toTarget := nearest.Sub(pos)
	err := angleDiff(math.Atan2(-toTarget.X, -toTarget.Y), heading)
	switch {
	case err < -cfg.Bot.AimTolerance:
		a.pressed[cfg.ActionRotateLeft] = true
	case err > cfg.Bot.AimTolerance:
		a.pressed[cfg.ActionRotateRight] = true
	default:
		a.pressed[cfg.ActionFire] = cfg.Bot.FireEveryFrame > 0 && a.frame%cfg.Bot.FireEveryFrame == 0
	}

	if dist < cfg.Bot.KeepDistance {
		a.retreat(toTarget)
		return
	}
	a.strafe()
}

// Pressed reports the planned level state of an action.
func (a *Autopilot) Pressed(action cfg.ActionID) bool {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return false
	}
	return a.pressed[action]
}

func (a *Autopilot) retreat(toTarget gamemath.Vec) {
	if math.Abs(toTarget.X) > math.Abs(toTarget.Y) {
		a.pressed[cfg.ActionMoveLeft] = toTarget.X > 0
		a.pressed[cfg.ActionMoveRight] = toTarget.X < 0
		return
	}
	a.pressed[cfg.ActionMoveForward] = toTarget.Y > 0
	a.pressed[cfg.ActionMoveBack] = toTarget.Y < 0
}

func (a *Autopilot) strafe() {
	if cfg.Bot.StrafePeriod <= 0 {
		return
	}
	if (a.frame/cfg.Bot.StrafePeriod)%2 == 0 {
		a.pressed[cfg.ActionMoveLeft] = true
	} else {
		a.pressed[cfg.ActionMoveRight] = true
	}
}

func nearestOpponent(roster []*donburi.Entry, from gamemath.Vec) (gamemath.Vec, float64, bool) {
	var best gamemath.Vec
	bestDist := math.Inf(1)
	for _, o := range roster {
		if !o.Valid() || !components.Combatant.Get(o).Active() {
			continue
		}
		p := components.Transform.Get(o).Position
		if d := p.Dist(from); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist, !math.IsInf(bestDist, 1)
}

// angleDiff returns target-current wrapped to [-pi, pi].
func angleDiff(target, current float64) float64 {
	d := math.Mod(target-current+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}
