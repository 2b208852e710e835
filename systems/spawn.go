package systems

import (
	"log"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/gamemath"
	"github.com/automoto/arena-survival/systems/factory"
	"github.com/yohamta/donburi"
)

// BatchSize returns how many opponents one spawn event adds to a roster of
// rosterSize under the population cap: one into an empty arena, otherwise
// double the roster without exceeding the cap.
func BatchSize(rosterSize, maxPopulation int) int {
	if rosterSize >= maxPopulation {
		return 0
	}
	if rosterSize == 0 {
		return 1
	}
	return min(rosterSize*2, maxPopulation-rosterSize)
}

// UpdateSpawner advances the spawn timer and fires a spawn event when due.
func UpdateSpawner(w donburi.World) {
	session := components.GetSession(w)
	session.SpawnTimer += session.Delta

	if session.SpawnTimer < session.SpawnInterval || len(session.Roster) >= session.MaxPopulation {
		return
	}
	session.SpawnTimer = 0
	SpawnOpponents(w, BatchSize(len(session.Roster), session.MaxPopulation))
}

// SpawnOpponents adds up to count opponents at random positions inside the
// spawn square and returns how many were created.
func SpawnOpponents(w donburi.World, count int) int {
	session := components.GetSession(w)
	if session == nil {
		return 0
	}
	count = min(count, session.MaxPopulation-len(session.Roster))

	spawned := 0
	for i := 0; i < count; i++ {
		o, err := factory.CreateOpponent(w, session.Player, randomSpawnPoint(session))
		if err != nil {
			log.Printf("Warning: Could not spawn opponent: %v", err)
			break
		}
		session.Roster = append(session.Roster, o)
		session.TotalSpawned++
		spawned++
	}
	return spawned
}

func randomSpawnPoint(session *components.SessionData) gamemath.Vec {
	half := cfg.Arena.SpawnHalfExtent
	if session.Rand == nil {
		return gamemath.Vec{X: cfg.Opponent.StartX, Y: cfg.Opponent.StartY}
	}
	return gamemath.Vec{
		X: (session.Rand.Float64() - 0.5) * 2 * half,
		Y: (session.Rand.Float64() - 0.5) * 2 * half,
	}
}
