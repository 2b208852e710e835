package components

import (
	"math/rand"

	cfg "github.com/automoto/arena-survival/config"
	"github.com/yohamta/donburi"
)

// RunResult is one entry in the score/time history.
type RunResult struct {
	ID    string  `json:"id,omitempty"`
	Time  float64 `json:"time"`
	Score int     `json:"score"`
}

// SessionData is the director's per-process state. Exactly one entity
// carries it.
type SessionData struct {
	State cfg.GameState
	RunID string // identifies the current or last run in logs and history

	// Delta is the elapsed time of the step being processed.
	Delta        float64
	SurvivalTime float64

	Player *donburi.Entry
	Roster []*donburi.Entry // live opponents in spawn order

	TotalSpawned  int
	SpawnTimer    float64
	SpawnInterval float64
	MaxPopulation int
	Rand          *rand.Rand // spawn placement

	// History holds the most recent results, newest first.
	History    []RunResult
	LastResult *RunResult
}

// Score is the points earned so far in the current run.
func (s *SessionData) Score() int {
	return (s.TotalSpawned - len(s.Roster)) * cfg.Ledger.PointsPerKO
}

// Wave is the 1-based wave number derived from survival time.
func (s *SessionData) Wave() int {
	if s.SpawnInterval <= 0 {
		return 1
	}
	return int(s.SurvivalTime/s.SpawnInterval) + 1
}

var Session = donburi.NewComponentType[SessionData]()
