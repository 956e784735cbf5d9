// internal/game/score.go
//
// Attribute scoring for a single guess against the target fighter.
// Each attribute is evaluated independently and produces one of three
// tiers: exact (green), near (yellow), none (gray).
//
// Rules:
//   - Name:         exact iff case-insensitively equal; never near.
//   - Country:      exact iff equal; near iff same known continent.
//   - Weight Class: exact iff equal; near iff adjacent in the fixed order.
//   - Age, Height:  exact iff equal; near iff within ±2.
//   - UFC/MMA Fights: exact iff equal; near iff within ±5.
//   - An "Unknown" value on either side forces none. This takes precedence
//     over every other rule.
//
// Scoring is pure: the same guess/target pair always yields the same tiers.

package game

import (
	"strings"

	"github.com/mmaguess/fotd-server/internal/fighters"
)

// Tier is the per-attribute evaluation result for one guess.
type Tier string

const (
	TierExact Tier = "exact"
	TierNear  Tier = "near"
	TierNone  Tier = "none"
)

// Attribute keys in display/share column order.
const (
	KeyName        = "Name"
	KeyCountry     = "Country"
	KeyWeightClass = "Weight Class"
	KeyAge         = "Age"
	KeyHeight      = "Height"
	KeyUFCFights   = "UFC Fights"
	KeyMMAFights   = "MMA Fights"
)

// AttributeKeys is the fixed column order used by the board and the share
// encoder.
var AttributeKeys = []string{
	KeyName, KeyCountry, KeyWeightClass, KeyAge, KeyHeight, KeyUFCFights, KeyMMAFights,
}

const (
	nearSpanAgeHeight = 2
	nearSpanFights    = 5
)

// Score evaluates a guessed profile against the target and returns a tier
// per attribute key.
func Score(guess, target fighters.Profile) map[string]Tier {
	return map[string]Tier{
		KeyName:        scoreName(guess.Name, target.Name),
		KeyCountry:     scoreCountry(guess.Country, target.Country),
		KeyWeightClass: scoreWeightClass(guess.WeightClass, target.WeightClass),
		KeyAge:         scoreStat(guess.Age, target.Age, nearSpanAgeHeight),
		KeyHeight:      scoreStat(guess.Height, target.Height, nearSpanAgeHeight),
		KeyUFCFights:   scoreStat(guess.UFCFights, target.UFCFights, nearSpanFights),
		KeyMMAFights:   scoreStat(guess.MMAFights, target.MMAFights, nearSpanFights),
	}
}

func scoreName(guess, target string) Tier {
	if isUnknownStr(guess) || isUnknownStr(target) {
		return TierNone
	}
	if strings.EqualFold(guess, target) {
		return TierExact
	}
	return TierNone
}

func scoreCountry(guess, target string) Tier {
	if isUnknownStr(guess) || isUnknownStr(target) {
		return TierNone
	}
	if strings.EqualFold(guess, target) {
		return TierExact
	}
	gc, gok := ContinentOf(guess)
	tc, tok := ContinentOf(target)
	if gok && tok && gc == tc {
		return TierNear
	}
	return TierNone
}

func scoreWeightClass(guess, target string) Tier {
	if isUnknownStr(guess) || isUnknownStr(target) {
		return TierNone
	}
	gi, ti := weightIndex(guess), weightIndex(target)
	if gi == -1 || ti == -1 {
		return TierNone
	}
	switch absInt(gi - ti) {
	case 0:
		return TierExact
	case 1:
		return TierNear
	}
	return TierNone
}

func scoreStat(guess, target fighters.Stat, span int) Tier {
	if !guess.Known || !target.Known {
		return TierNone
	}
	diff := absInt(guess.Value - target.Value)
	switch {
	case diff == 0:
		return TierExact
	case diff <= span:
		return TierNear
	}
	return TierNone
}

func isUnknownStr(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, fighters.Unknown)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Hint is a non-scoring directional annotation for easy mode: whether the
// guessed value sits above or below the target. Only produced for ordinal
// attributes on non-exact tiers.
type Hint string

const (
	HintAbove Hint = "above"
	HintBelow Hint = "below"
)

// Hints returns directional annotations for the weight-class and numeric
// attributes. Exact matches and comparisons involving an unknown value get
// no hint.
func Hints(guess, target fighters.Profile) map[string]Hint {
	out := make(map[string]Hint)
	if gi, ti := weightIndex(guess.WeightClass), weightIndex(target.WeightClass); gi != -1 && ti != -1 && gi != ti {
		out[KeyWeightClass] = direction(gi, ti)
	}
	statHint(out, KeyAge, guess.Age, target.Age)
	statHint(out, KeyHeight, guess.Height, target.Height)
	statHint(out, KeyUFCFights, guess.UFCFights, target.UFCFights)
	statHint(out, KeyMMAFights, guess.MMAFights, target.MMAFights)
	if len(out) == 0 {
		return nil
	}
	return out
}

func statHint(out map[string]Hint, key string, guess, target fighters.Stat) {
	if !guess.Known || !target.Known || guess.Value == target.Value {
		return
	}
	out[key] = direction(guess.Value, target.Value)
}

func direction(guess, target int) Hint {
	if guess > target {
		return HintAbove
	}
	return HintBelow
}
