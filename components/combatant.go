package components

import "github.com/yohamta/donburi"

// CombatantData is the shape shared by the controlled entity and opponents.
// Behavior is attached through other components (Pilot, Pursuit).
type CombatantData struct {
	Health    int
	MaxHealth int
	Radius    float64

	// Removing latches the first time an opponent's Health drops to zero or
	// below and never reverts. The controlled entity never sets it.
	Removing bool

	// Projectiles owned by this combatant, in firing order.
	Projectiles []*donburi.Entry
}

// Defeated reports whether health has reached zero.
func (c *CombatantData) Defeated() bool {
	return c.Health <= 0
}

// Active reports whether the combatant may still act and be hit.
func (c *CombatantData) Active() bool {
	return !c.Removing && c.Health > 0
}

var Combatant = donburi.NewComponentType[CombatantData]()
