// Command soak runs the arena simulation headless with the autopilot at the
// controls and logs every finished run.
package main

import (
	"flag"
	"log"

	"github.com/automoto/arena-survival/components"
	"github.com/automoto/arena-survival/config"
	"github.com/automoto/arena-survival/director"
	"github.com/automoto/arena-survival/systems"
	"github.com/yohamta/donburi"
)

// fixedClock reports the same delta every step.
type fixedClock float64

func (c fixedClock) ElapsedSinceLastStep() float64 { return float64(c) }

// tally counts presentation events so leaks show up in the summary.
type tally struct {
	added, removed int
}

func (t *tally) AddVisual(*donburi.Entry)    { t.added++ }
func (t *tally) RemoveVisual(*donburi.Entry) { t.removed++ }

func main() {
	seed := flag.Int64("seed", config.Spawn.Seed, "Spawn placement seed")
	maxPopulation := flag.Int("cap", config.Spawn.MaxPopulation, "Maximum number of live opponents")
	interval := flag.Float64("interval", config.Spawn.Interval, "Seconds between spawn batches")
	dt := flag.Float64("dt", 1.0/60, "Seconds per simulation step")
	duration := flag.Float64("duration", 600, "Simulated seconds per run before giving up")
	runs := flag.Int("runs", 3, "Number of runs to play")
	persist := flag.Bool("persist", false, "Store the score history on disk")
	flag.Parse()

	config.Spawn.MaxPopulation = *maxPopulation
	config.Spawn.Interval = *interval

	var ledger components.Ledger = systems.NewMemoryLedger()
	if *persist {
		l, err := systems.OpenGDataLedger(config.Ledger.AppName, config.Ledger.ItemKey)
		if err != nil {
			log.Fatalf("Failed to open ledger: %v", err)
		}
		ledger = l
	}

	presenter := &tally{}
	d, err := director.New(director.Options{
		Presenter: presenter,
		Input:     systems.NewAutopilot(),
		Clock:     fixedClock(*dt),
		Ledger:    ledger,
		Seed:      *seed,
	})
	if err != nil {
		log.Fatalf("Failed to create director: %v", err)
	}

	maxSteps := int(*duration / *dt)
	for run := 1; run <= *runs; run++ {
		d.StartNewGame()
		steps := 0
		for d.State() != config.StateGameOver && steps < maxSteps {
			d.Step()
			steps++
		}
		if d.State() != config.StateGameOver {
			log.Printf("Run %d: still alive after %.0fs with %d opponent(s), score %d",
				run, d.SurvivalTime(), len(d.Opponents()), d.Score())
			continue
		}
		r, _ := d.LastResult()
		log.Printf("Run %d: survived %.1fs, score %d, %d spawned", run, r.Time, r.Score, d.TotalSpawned())
	}

	log.Printf("Visuals added %d, removed %d", presenter.added, presenter.removed)
	for i, r := range d.History() {
		log.Printf("History %d: %.1fs %d pts", i+1, r.Time, r.Score)
	}
}
