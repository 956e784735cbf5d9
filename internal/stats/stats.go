// internal/stats/stats.go
//
// Cumulative per-player statistics for the daily puzzle.
//
// A Record is updated at most once per calendar day, exactly when the day's
// session reaches a terminal outcome. The LastPlayedDate guard makes the
// update idempotent against repeated terminal events (re-renders, reloads,
// resumed sessions observing the same finish).

package stats

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mmaguess/fotd-server/internal/store"
)

// DistributionLoss is the distribution bucket for lost games.
const DistributionLoss = "X"

// Record holds a player's cumulative daily-puzzle statistics.
type Record struct {
	Played         int            `json:"played"`
	Wins           int            `json:"wins"`
	CurrentStreak  int            `json:"currentStreak"`
	MaxStreak      int            `json:"maxStreak"`
	Distribution   map[string]int `json:"distribution"` // "1".."6" and "X"
	LastPlayedDate string         `json:"lastPlayedDate"`
}

// NewRecord returns an empty record with all distribution buckets present.
func NewRecord() Record {
	return Record{
		Distribution: map[string]int{
			"1": 0, "2": 0, "3": 0, "4": 0, "5": 0, "6": 0, DistributionLoss: 0,
		},
	}
}

// ApplyOutcome folds one terminal outcome into the record. If the record
// was already updated for date, it is returned unchanged. guessCount is
// the number of guesses used and only consulted on a win.
func (r Record) ApplyOutcome(date string, won bool, guessCount int) Record {
	if r.LastPlayedDate == date {
		return r
	}
	out := r
	out.Distribution = make(map[string]int, len(r.Distribution))
	for k, v := range r.Distribution {
		out.Distribution[k] = v
	}
	out.Played++
	out.LastPlayedDate = date
	if won {
		out.Wins++
		out.CurrentStreak++
		if out.CurrentStreak > out.MaxStreak {
			out.MaxStreak = out.CurrentStreak
		}
		out.Distribution[strconv.Itoa(guessCount)]++
	} else {
		out.CurrentStreak = 0
		out.Distribution[DistributionLoss]++
	}
	return out
}

// statsKeyPrefix namespaces per-player records in the KV store.
const statsKeyPrefix = "ufcStats:"

// Tracker persists Records through a key-value store.
type Tracker struct {
	kv store.Store
}

// NewTracker wraps kv for stats persistence.
func NewTracker(kv store.Store) *Tracker {
	return &Tracker{kv: kv}
}

// Load returns the player's record, or a fresh one if absent or unreadable.
// Storage errors are reported but the record is always usable.
func (t *Tracker) Load(ctx context.Context, playerID string) (Record, error) {
	blob, found, err := t.kv.Get(ctx, statsKeyPrefix+playerID)
	if err != nil || !found {
		return NewRecord(), err
	}
	var r Record
	if err := json.Unmarshal(blob, &r); err != nil {
		return NewRecord(), err
	}
	if r.Distribution == nil {
		r.Distribution = NewRecord().Distribution
	}
	return r, nil
}

// RecordOutcome applies a terminal outcome to the player's stored record
// and persists the result. Safe to call repeatedly for the same day.
func (t *Tracker) RecordOutcome(ctx context.Context, playerID, date string, won bool, guessCount int) (Record, error) {
	r, err := t.Load(ctx, playerID)
	if err != nil {
		return r, err
	}
	updated := r.ApplyOutcome(date, won, guessCount)
	if updated.LastPlayedDate == r.LastPlayedDate && r.Played == updated.Played {
		// Already counted today; nothing to write.
		return r, nil
	}
	blob, err := json.Marshal(updated)
	if err != nil {
		return updated, err
	}
	return updated, t.kv.Set(ctx, statsKeyPrefix+playerID, blob)
}
