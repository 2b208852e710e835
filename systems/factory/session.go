package factory

import (
	"math/rand"

	"github.com/automoto/arena-survival/archetypes"
	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/yohamta/donburi"
)

// CreateSession creates the singleton holding director state, input state and
// the injected collaborators. seed drives spawn placement.
func CreateSession(w donburi.World, hooks components.HooksData, seed int64) *donburi.Entry {
	s := archetypes.Session.Spawn(w)
	components.Session.SetValue(s, components.SessionData{
		State:         cfg.StateMenu,
		SpawnInterval: cfg.Spawn.Interval,
		MaxPopulation: cfg.Spawn.MaxPopulation,
		Rand:          rand.New(rand.NewSource(seed)),
	})
	components.Hooks.SetValue(s, hooks)
	return s
}
