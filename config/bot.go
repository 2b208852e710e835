package config

// AutopilotConfig holds tuning values for the scripted pilot used by
// headless runs.
type AutopilotConfig struct {
	AimTolerance   float64 // Radians of heading error accepted before firing
	FireEveryFrame int     // Frames between fire pulses while aimed
	KeepDistance   float64 // Back off when the nearest opponent is closer than this
	StrafePeriod   int     // Frames spent strafing in one direction
}

// Bot holds autopilot configuration
var Bot AutopilotConfig

func init() {
	Bot = AutopilotConfig{
		AimTolerance:   0.15,
		FireEveryFrame: 6,
		KeepDistance:   15,
		StrafePeriod:   90,
	}
}
