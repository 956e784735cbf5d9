// internal/game/session.go
//
// Guess-session state machine for one player's daily puzzle.
//
// A session moves in_progress → won or in_progress → lost and never leaves
// a terminal state. Guesses are validated against the roster, scored, and
// appended; the computed tiers are stored with each attempt so that later
// roster edits cannot rewrite a finished board or its share text.
//
// Persistence is an injected key-value store: accepted guesses mirror the
// session to storage best-effort, and loading restores a same-day session
// verbatim while silently discarding stale ones.

package game

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/mmaguess/fotd-server/internal/fighters"
	"github.com/mmaguess/fotd-server/internal/store"
)

// MaxGuesses is the attempt limit before a session is lost.
const MaxGuesses = 6

// Outcome is the coarse session state.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// Guess submission errors, all recoverable: the session is unchanged.
var (
	ErrEmptyGuess     = errors.New("empty guess")
	ErrUnknownFighter = errors.New("fighter not found")
	ErrFinished       = errors.New("game finished")
)

// Attempt is one scored guess. Tiers and hints are computed at submission
// time and immutable thereafter.
type Attempt struct {
	Fighter fighters.Profile `json:"fighter"`
	Tiers   map[string]Tier  `json:"tiers"`
	Hints   map[string]Hint  `json:"hints,omitempty"`
}

// Session is one player's puzzle for one calendar day.
type Session struct {
	Date    string    `json:"date"`
	Guesses []Attempt `json:"guesses"`
	Outcome Outcome   `json:"outcome"`

	target fighters.Profile
}

// NewSession starts a fresh in-progress session against target. date is the
// calendar-day key ("" for unlimited games, which have no day binding).
func NewSession(date string, target fighters.Profile) *Session {
	return &Session{
		Date:    date,
		Guesses: []Attempt{},
		Outcome: OutcomeInProgress,
		target:  target,
	}
}

// Target returns the secret answer. Handlers reveal it only once the
// session is terminal.
func (s *Session) Target() fighters.Profile { return s.target }

// Finished reports whether the session reached a terminal outcome.
func (s *Session) Finished() bool { return s.Outcome != OutcomeInProgress }

// SubmitGuess resolves name against the roster, scores it, and advances the
// state machine. On rejection the session is untouched and the returned
// error identifies the reason.
func (s *Session) SubmitGuess(c *fighters.Catalog, name string) (Attempt, Outcome, error) {
	if s.Finished() {
		return Attempt{}, s.Outcome, ErrFinished
	}
	if strings.TrimSpace(name) == "" {
		return Attempt{}, s.Outcome, ErrEmptyGuess
	}
	guess, ok := c.Find(name)
	if !ok {
		return Attempt{}, s.Outcome, ErrUnknownFighter
	}

	att := Attempt{
		Fighter: guess,
		Tiers:   Score(guess, s.target),
		Hints:   Hints(guess, s.target),
	}
	s.Guesses = append(s.Guesses, att)

	if strings.EqualFold(guess.Name, s.target.Name) {
		s.Outcome = OutcomeWon
	} else if len(s.Guesses) >= MaxGuesses {
		s.Outcome = OutcomeLost
	}
	return att, s.Outcome, nil
}

// Correct reports whether att named the target.
func (s *Session) Correct(att Attempt) bool {
	return strings.EqualFold(att.Fighter.Name, s.target.Name)
}

// sessionKeyPrefix namespaces per-player daily sessions in the KV store.
const sessionKeyPrefix = "fotdGameState:"

// SessionStore persists daily sessions through a key-value store.
type SessionStore struct {
	kv store.Store
}

// NewSessionStore wraps kv for session persistence.
func NewSessionStore(kv store.Store) *SessionStore {
	return &SessionStore{kv: kv}
}

// Load returns the player's session for the day containing now. A stored
// session whose date matches today is restored verbatim; anything else
// (absent, stale, unreadable) yields a fresh session for today's target.
// The returned error reports storage trouble but the session is always
// usable; callers may log and continue.
func (ss *SessionStore) Load(ctx context.Context, playerID string, now time.Time, c *fighters.Catalog) (*Session, error) {
	date := DateKey(now)
	target := SelectDaily(now, c)
	fresh := NewSession(date, target)

	blob, found, err := ss.kv.Get(ctx, sessionKeyPrefix+playerID)
	if err != nil || !found {
		return fresh, err
	}
	var saved Session
	if err := json.Unmarshal(blob, &saved); err != nil {
		return fresh, err
	}
	if saved.Date != date {
		// Past-day session: discarded, not resumed.
		return fresh, nil
	}
	saved.target = target
	if saved.Guesses == nil {
		saved.Guesses = []Attempt{}
	}
	return &saved, nil
}

// Save mirrors the session to storage. Best effort: the in-memory session
// stays authoritative when the write fails.
func (ss *SessionStore) Save(ctx context.Context, playerID string, s *Session) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return ss.kv.Set(ctx, sessionKeyPrefix+playerID, blob)
}
