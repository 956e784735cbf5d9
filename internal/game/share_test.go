package game

import (
	"strings"
	"testing"
)

func attemptWithTiers(name string, tier Tier) Attempt {
	tiers := make(map[string]Tier, len(AttributeKeys))
	for _, key := range AttributeKeys {
		tiers[key] = tier
	}
	return Attempt{Fighter: profile(name, "Brazil", "Lightweight", 30, 70, 10, 10), Tiers: tiers}
}

func TestEncodeShareWin(t *testing.T) {
	sess := NewSession("6/15/2025", profile("B", "Brazil", "Lightweight", 30, 70, 10, 10))
	first := attemptWithTiers("A", TierNone)
	first.Tiers[KeyName] = TierExact
	first.Tiers[KeyCountry] = TierNear
	second := attemptWithTiers("B", TierExact)
	sess.Guesses = []Attempt{first, second}
	sess.Outcome = OutcomeWon

	got := EncodeShare(sess)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("share has %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[0] != "🥊 6.15 FOTD 2/6" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "🟩🟨⬛⬛⬛⬛⬛" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "🟩🟩🟩🟩🟩🟩🟩" {
		t.Errorf("row 2 = %q", lines[2])
	}
	// Rows cover every attribute column.
	for i, line := range lines[1:] {
		if n := len([]rune(line)); n != len(AttributeKeys) {
			t.Errorf("row %d has %d glyphs, want %d", i+1, n, len(AttributeKeys))
		}
	}
}

func TestEncodeShareLoss(t *testing.T) {
	sess := NewSession("12/3/2025", profile("B", "Brazil", "Lightweight", 30, 70, 10, 10))
	for i := 0; i < MaxGuesses; i++ {
		sess.Guesses = append(sess.Guesses, attemptWithTiers("A", TierNone))
	}
	sess.Outcome = OutcomeLost

	got := EncodeShare(sess)
	if !strings.HasPrefix(got, "🥊 12.3 FOTD X/6\n") {
		t.Errorf("loss header wrong: %q", strings.SplitN(got, "\n", 2)[0])
	}
	if strings.Count(got, "\n") != MaxGuesses {
		t.Errorf("loss share has %d rows, want %d", strings.Count(got, "\n"), MaxGuesses)
	}
}

func TestEncodeShareUsesStoredTiers(t *testing.T) {
	// The encoder must not rescore: doctored tiers pass through untouched.
	sess := NewSession("6/15/2025", profile("B", "Brazil", "Lightweight", 30, 70, 10, 10))
	att := attemptWithTiers("B", TierNone) // a "winning" name scored none
	sess.Guesses = []Attempt{att}
	sess.Outcome = OutcomeWon

	got := EncodeShare(sess)
	if strings.Contains(got, glyphExact) {
		t.Errorf("encoder rescored the attempt: %q", got)
	}
}
