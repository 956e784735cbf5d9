// internal/game/selector.go
//
// Target selection.
//
// The daily pick is deterministic: every player sees the same fighter on
// the same calendar day. The day boundary is fixed to America/Los_Angeles;
// changing the zone (or reordering the roster) silently changes which
// answers past dates map to, so both are locked down here.
//
// Unlimited mode uses an unseeded uniform pick with no determinism
// requirement.

package game

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/mmaguess/fotd-server/internal/fighters"
)

// TimeZone is the reference zone for the daily puzzle's day boundary.
const TimeZone = "America/Los_Angeles"

var gameZone = mustZone()

func mustZone() *time.Location {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		// tzdata missing from the host; UTC keeps the game playable but
		// daily answers will disagree with other deployments.
		return time.UTC
	}
	return loc
}

// DateKey renders t as the game's calendar-day key: M/D/YYYY without
// leading zeros, in the reference zone. This exact string feeds the daily
// seed and keys sessions, stats, and aggregates.
func DateKey(t time.Time) string {
	return t.In(gameZone).Format("1/2/2006")
}

// DailyIndex derives the deterministic roster index for a date: the date
// key's digit groups are reversed (M/D/YYYY → YYYY D M), concatenated,
// parsed as an integer, and reduced modulo n.
func DailyIndex(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	parts := strings.Split(DateKey(t), "/")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	seed, err := strconv.ParseInt(strings.Join(parts, ""), 10, 64)
	if err != nil {
		return 0
	}
	return int(seed % int64(n))
}

// SelectDaily returns the fighter of the day for t.
func SelectDaily(t time.Time, c *fighters.Catalog) fighters.Profile {
	return c.At(DailyIndex(t, c.Len()))
}

// SelectRandom returns a uniformly random fighter for unlimited mode.
// Repeats across games are allowed.
func SelectRandom(c *fighters.Catalog) fighters.Profile {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(c.Len())))
	return c.At(int(nBig.Int64()))
}
