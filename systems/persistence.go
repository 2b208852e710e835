package systems

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/arena-survival/components"
	"github.com/quasilyte/gdata"
)

// GDataLedger stores the score/time history with gdata as a JSON array under
// a single item key.
type GDataLedger struct {
	manager *gdata.Manager
	key     string
}

// OpenGDataLedger initializes gdata storage for the application.
func OpenGDataLedger(appName, key string) (*GDataLedger, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata storage: %w", err)
	}
	return &GDataLedger{manager: m, key: key}, nil
}

// LoadHistory reads the stored history. A missing item is an empty history.
func (l *GDataLedger) LoadHistory() ([]components.RunResult, error) {
	data, err := l.manager.LoadItem(l.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeHistory(data)
}

// SaveHistory replaces the stored history.
func (l *GDataLedger) SaveHistory(history []components.RunResult) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := l.manager.SaveItem(l.key, data); err != nil {
		return fmt.Errorf("save %s: %w", l.key, err)
	}
	return nil
}

// DecodeHistory parses a stored history. Entries written as a bare number of
// seconds by older versions load with a zero score.
func DecodeHistory(data []byte) ([]components.RunResult, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	history := make([]components.RunResult, 0, len(raw))
	for _, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			log.Printf("Warning: Skipping empty history entry")
			continue
		}
		var seconds float64
		if err := json.Unmarshal(item, &seconds); err == nil {
			history = append(history, components.RunResult{Time: seconds})
			continue
		}
		var result components.RunResult
		if err := json.Unmarshal(item, &result); err != nil {
			log.Printf("Warning: Skipping unreadable history entry %s", item)
			continue
		}
		history = append(history, result)
	}
	return history, nil
}

// MemoryLedger keeps the history in memory only.
type MemoryLedger struct {
	history []components.RunResult
	saves   int
}

func NewMemoryLedger(initial ...components.RunResult) *MemoryLedger {
	return &MemoryLedger{history: append([]components.RunResult(nil), initial...)}
}

func (l *MemoryLedger) LoadHistory() ([]components.RunResult, error) {
	return append([]components.RunResult(nil), l.history...), nil
}

func (l *MemoryLedger) SaveHistory(history []components.RunResult) error {
	l.history = append(l.history[:0], history...)
	l.saves++
	return nil
}

// Saves returns how many times the history was saved.
func (l *MemoryLedger) Saves() int {
	return l.saves
}
