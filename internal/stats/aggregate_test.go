package stats

import (
	"context"
	"testing"

	"github.com/mmaguess/fotd-server/internal/store"
)

func TestAggregateNoData(t *testing.T) {
	a := NewAggregate(store.NewMemoryStore())
	if _, ok, err := a.SuccessRate(context.Background(), "3/15/2025"); err != nil || ok {
		t.Errorf("empty aggregate: ok=%v err=%v, want no data", ok, err)
	}
}

func TestAggregateSuccessRate(t *testing.T) {
	ctx := context.Background()
	a := NewAggregate(store.NewMemoryStore())
	date := "3/15/2025"

	// Two plays, one correct → 50%.
	if err := a.RecordGuess(ctx, date, false); err != nil {
		t.Fatalf("RecordGuess: %v", err)
	}
	if err := a.RecordGuess(ctx, date, true); err != nil {
		t.Fatalf("RecordGuess: %v", err)
	}
	rate, ok, err := a.SuccessRate(ctx, date)
	if err != nil || !ok {
		t.Fatalf("SuccessRate: ok=%v err=%v", ok, err)
	}
	if rate != 50 {
		t.Errorf("rate = %d, want 50", rate)
	}

	// Third play, wrong → 1/3 rounds to 33.
	if err := a.RecordGuess(ctx, date, false); err != nil {
		t.Fatalf("RecordGuess: %v", err)
	}
	if rate, _, _ = a.SuccessRate(ctx, date); rate != 33 {
		t.Errorf("rate = %d, want 33", rate)
	}
}

func TestAggregateKeepsDaysSeparate(t *testing.T) {
	ctx := context.Background()
	a := NewAggregate(store.NewMemoryStore())
	if err := a.RecordGuess(ctx, "3/15/2025", true); err != nil {
		t.Fatalf("RecordGuess: %v", err)
	}
	if err := a.RecordGuess(ctx, "3/16/2025", false); err != nil {
		t.Fatalf("RecordGuess: %v", err)
	}
	if rate, ok, _ := a.SuccessRate(ctx, "3/15/2025"); !ok || rate != 100 {
		t.Errorf("3/15 rate = %d,%v, want 100", rate, ok)
	}
	if rate, ok, _ := a.SuccessRate(ctx, "3/16/2025"); !ok || rate != 0 {
		t.Errorf("3/16 rate = %d,%v, want 0", rate, ok)
	}
}
