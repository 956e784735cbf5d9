// internal/stats/aggregate.go
//
// System-wide per-day play/win tally, used only to show "N% of players
// guessed correctly today". Incremented on every accepted guess, not just
// terminal ones; a win is counted when the guess named the target.
//
// The update is read-modify-write against shared state with no locking
// beyond the KV store's own guarantees. Concurrent writers can undercount;
// the percentage is display-only and this is accepted.

package stats

import (
	"context"
	"encoding/json"
	"math"

	"github.com/mmaguess/fotd-server/internal/store"
)

// aggregateKey holds the full per-date tally map in the KV store.
const aggregateKey = "fotdGlobalStats"

// DayTally is one day's global counters.
type DayTally struct {
	Plays int `json:"plays"`
	Wins  int `json:"wins"`
}

// Aggregate tracks global daily tallies through a key-value store.
type Aggregate struct {
	kv store.Store
}

// NewAggregate wraps kv for global tally persistence.
func NewAggregate(kv store.Store) *Aggregate {
	return &Aggregate{kv: kv}
}

func (a *Aggregate) load(ctx context.Context) (map[string]DayTally, error) {
	blob, found, err := a.kv.Get(ctx, aggregateKey)
	if err != nil || !found {
		return map[string]DayTally{}, err
	}
	tallies := map[string]DayTally{}
	if err := json.Unmarshal(blob, &tallies); err != nil {
		return map[string]DayTally{}, err
	}
	return tallies, nil
}

// RecordGuess bumps the date's play counter, and its win counter when the
// guess was correct.
func (a *Aggregate) RecordGuess(ctx context.Context, date string, correct bool) error {
	tallies, err := a.load(ctx)
	if err != nil {
		return err
	}
	t := tallies[date]
	t.Plays++
	if correct {
		t.Wins++
	}
	tallies[date] = t
	blob, err := json.Marshal(tallies)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, aggregateKey, blob)
}

// SuccessRate returns the date's win percentage rounded to the nearest
// integer. The bool is false when no guesses were recorded for the date.
func (a *Aggregate) SuccessRate(ctx context.Context, date string) (int, bool, error) {
	tallies, err := a.load(ctx)
	if err != nil {
		return 0, false, err
	}
	t, ok := tallies[date]
	if !ok || t.Plays == 0 {
		return 0, false, nil
	}
	return int(math.Round(100 * float64(t.Wins) / float64(t.Plays))), true, nil
}
