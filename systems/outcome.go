package systems

import (
	"log"

	"github.com/automoto/arena-survival/components"
	cfg "github.com/automoto/arena-survival/config"
	"github.com/yohamta/donburi"
)

// UpdateOutcome ends the run once the controlled entity is defeated;
// otherwise it accumulates survival time and reports status to the UI.
func UpdateOutcome(w donburi.World) {
	session := components.GetSession(w)
	if session.Player == nil || !session.Player.Valid() {
		return
	}
	if components.Combatant.Get(session.Player).Defeated() {
		EndRun(w)
		return
	}

	session.SurvivalTime += session.Delta
	ReportStatus(w)
}

// EndRun scores the run, records it in the history, persists the history and
// discards the run's entities. The session is left in the game over state.
func EndRun(w donburi.World) {
	session := components.GetSession(w)
	if session == nil {
		return
	}

	result := components.RunResult{
		ID:    session.RunID,
		Time:  session.SurvivalTime,
		Score: session.Score(),
	}
	session.History = PushResult(session.History, result, cfg.Ledger.MaxEntries)
	session.LastResult = &result
	session.State = cfg.StateGameOver

	if hooks := components.GetHooks(w); hooks != nil && hooks.Ledger != nil {
		if err := hooks.Ledger.SaveHistory(session.History); err != nil {
			log.Printf("Warning: Could not save history: %v", err)
		}
	}

	discardRun(w)
	log.Printf("Run %s over: survived %.1fs, score %d", result.ID, result.Time, result.Score)
}

// PushResult puts result at the front of history and keeps at most
// maxEntries results.
func PushResult(history []components.RunResult, result components.RunResult, maxEntries int) []components.RunResult {
	if maxEntries <= 0 {
		return nil
	}
	out := make([]components.RunResult, 0, min(len(history)+1, maxEntries))
	out = append(out, result)
	for _, r := range history {
		if len(out) >= maxEntries {
			break
		}
		out = append(out, r)
	}
	return out
}

// ReportStatus sends the current run status to the UI feedback sink.
func ReportStatus(w donburi.World) {
	hooks := components.GetHooks(w)
	session := components.GetSession(w)
	if hooks == nil || hooks.Feedback == nil || session == nil || session.Player == nil {
		return
	}
	hooks.Feedback.Report(components.Status{
		Health:       components.Combatant.Get(session.Player).Health,
		Score:        session.Score(),
		Wave:         session.Wave(),
		SurvivalTime: session.SurvivalTime,
		Opponents:    len(session.Roster),
	})
}
