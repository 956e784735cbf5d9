package stats

import (
	"context"
	"reflect"
	"testing"

	"github.com/mmaguess/fotd-server/internal/store"
)

func TestApplyOutcomeWin(t *testing.T) {
	r := NewRecord().ApplyOutcome("3/15/2025", true, 3)
	if r.Played != 1 || r.Wins != 1 {
		t.Errorf("played/wins = %d/%d, want 1/1", r.Played, r.Wins)
	}
	if r.CurrentStreak != 1 || r.MaxStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", r.CurrentStreak, r.MaxStreak)
	}
	if r.Distribution["3"] != 1 {
		t.Errorf("distribution[3] = %d, want 1", r.Distribution["3"])
	}
	if r.LastPlayedDate != "3/15/2025" {
		t.Errorf("lastPlayedDate = %q", r.LastPlayedDate)
	}
}

func TestApplyOutcomeLoss(t *testing.T) {
	r := NewRecord()
	r.CurrentStreak = 4
	r.MaxStreak = 4
	r = r.ApplyOutcome("3/15/2025", false, 6)
	if r.Played != 1 || r.Wins != 0 {
		t.Errorf("played/wins = %d/%d, want 1/0", r.Played, r.Wins)
	}
	if r.CurrentStreak != 0 {
		t.Errorf("loss did not reset streak: %d", r.CurrentStreak)
	}
	if r.MaxStreak != 4 {
		t.Errorf("loss changed max streak: %d", r.MaxStreak)
	}
	if r.Distribution[DistributionLoss] != 1 {
		t.Errorf("distribution[X] = %d, want 1", r.Distribution[DistributionLoss])
	}
}

func TestApplyOutcomeIdempotentPerDay(t *testing.T) {
	first := NewRecord().ApplyOutcome("3/15/2025", true, 3)
	second := first.ApplyOutcome("3/15/2025", true, 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second terminal event changed the record:\n got %+v\nwant %+v", second, first)
	}
	// A later day counts again.
	third := second.ApplyOutcome("3/16/2025", true, 2)
	if third.Played != 2 || third.CurrentStreak != 2 {
		t.Errorf("next day not counted: played=%d streak=%d", third.Played, third.CurrentStreak)
	}
}

func TestApplyOutcomeDoesNotMutateReceiver(t *testing.T) {
	base := NewRecord()
	_ = base.ApplyOutcome("3/15/2025", true, 1)
	if base.Played != 0 || base.Distribution["1"] != 0 {
		t.Error("ApplyOutcome mutated its receiver")
	}
}

func TestDistributionIdentities(t *testing.T) {
	r := NewRecord()
	days := []struct {
		date    string
		won     bool
		guesses int
	}{
		{"3/10/2025", true, 2},
		{"3/11/2025", true, 2},
		{"3/12/2025", false, 6},
		{"3/13/2025", true, 5},
		{"3/14/2025", false, 6},
	}
	for _, d := range days {
		r = r.ApplyOutcome(d.date, d.won, d.guesses)
	}

	sum := 0
	for _, v := range r.Distribution {
		sum += v
	}
	if sum != r.Played {
		t.Errorf("sum(distribution) = %d, want played = %d", sum, r.Played)
	}
	if sum-r.Distribution[DistributionLoss] != r.Wins {
		t.Errorf("win buckets = %d, want wins = %d", sum-r.Distribution[DistributionLoss], r.Wins)
	}
}

func TestTrackerRoundTrip(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(store.NewMemoryStore())

	updated, err := tr.RecordOutcome(ctx, "p1", "3/15/2025", true, 3)
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	loaded, err := tr.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(updated, loaded) {
		t.Errorf("loaded record differs:\n got %+v\nwant %+v", loaded, updated)
	}

	// Re-observing the same terminal event leaves the stored record alone.
	again, err := tr.RecordOutcome(ctx, "p1", "3/15/2025", true, 3)
	if err != nil {
		t.Fatalf("RecordOutcome again: %v", err)
	}
	if !reflect.DeepEqual(again, loaded) {
		t.Errorf("duplicate terminal event changed record:\n got %+v\nwant %+v", again, loaded)
	}
}

func TestTrackerIsolatesPlayers(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(store.NewMemoryStore())
	if _, err := tr.RecordOutcome(ctx, "p1", "3/15/2025", true, 1); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	other, err := tr.Load(ctx, "p2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if other.Played != 0 {
		t.Errorf("p2 record contaminated: %+v", other)
	}
}
