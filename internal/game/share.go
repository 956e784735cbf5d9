// internal/game/share.go
//
// Shareable result text. Renders a finished (or in-progress) board as emoji
// rows, one row per guess, one glyph per attribute column, from the tiers
// stored on each attempt. Header format: "🥊 M.D FOTD n/6" (X/6 on a loss).

package game

import (
	"fmt"
	"strings"
)

const (
	glyphExact = "🟩"
	glyphNear  = "🟨"
	glyphNone  = "⬛"
)

// EncodeShare renders the session's guess history as shareable text. The
// output depends only on stored tiers, never on the current target.
func EncodeShare(s *Session) string {
	var b strings.Builder
	b.WriteString(shareHeader(s))
	for _, att := range s.Guesses {
		b.WriteByte('\n')
		for _, key := range AttributeKeys {
			switch att.Tiers[key] {
			case TierExact:
				b.WriteString(glyphExact)
			case TierNear:
				b.WriteString(glyphNear)
			default:
				b.WriteString(glyphNone)
			}
		}
	}
	return b.String()
}

func shareHeader(s *Session) string {
	score := "X"
	if s.Outcome == OutcomeWon {
		score = fmt.Sprintf("%d", len(s.Guesses))
	}
	return fmt.Sprintf("🥊 %s FOTD %s/6", shareDate(s.Date), score)
}

// shareDate shortens the session's M/D/YYYY key to "M.D".
func shareDate(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) < 2 {
		return date
	}
	return parts[0] + "." + parts[1]
}
