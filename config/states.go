package config

// GameState is the Simulation Director's top-level state.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameOver"
	}
	return "unknown"
}

// ProjectileKind distinguishes whose projectile it is, which also selects
// its visual marker.
type ProjectileKind int

const (
	ShotPlayer ProjectileKind = iota
	ShotOpponent
)
