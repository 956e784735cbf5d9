// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily "Fighter of the Day" puzzle.
// Exposes five endpoints under /daily:
//   - GET  /daily/state        → today's session (resumed from storage)
//   - POST /daily/guess        → submit a named guess
//   - GET  /daily/share        → shareable emoji text for today's board
//   - GET  /daily/stats        → the player's cumulative statistics
//   - GET  /daily/success-rate → global win percentage for today
//
// Every player (anonymous or authenticated) gets one session per calendar
// day; the day boundary and target selection are deterministic in the
// game's fixed time zone. Persistence is best effort: storage failures are
// logged and play continues in memory.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mmaguess/fotd-server/internal/fighters"
	"github.com/mmaguess/fotd-server/internal/game"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/state", s.handleDailyState)
		r.Post("/guess", s.handleDailyGuess)
		r.Get("/share", s.handleDailyShare)
		r.Get("/stats", s.handleDailyStats)
		r.Get("/success-rate", s.handleDailySuccessRate)
	})
}

// loadDailySession restores (or starts) the player's session for today,
// logging storage trouble without failing the request.
func (s *Server) loadDailySession(w http.ResponseWriter, r *http.Request) (string, *game.Session) {
	uid, _ := s.playerID(w, r)
	sess, err := s.sessions.Load(r.Context(), uid, s.now(), s.catalog)
	if err != nil {
		log.Warn().Err(err).Str("player", uid).Msg("load daily session")
	}
	return uid, sess
}

// dailyStateRes describes the player's current board.
type dailyStateRes struct {
	Date     string            `json:"date"`
	Outcome  game.Outcome      `json:"outcome"`
	Guesses  []game.Attempt    `json:"guesses"`
	MaxTurns int               `json:"maxTurns"`
	Fighter  *fighters.Profile `json:"fighter,omitempty"` // revealed when finished
}

// handleDailyState returns today's session, resumed verbatim when storage
// holds one for the current date.
func (s *Server) handleDailyState(w http.ResponseWriter, r *http.Request) {
	_, sess := s.loadDailySession(w, r)
	res := dailyStateRes{
		Date:     sess.Date,
		Outcome:  sess.Outcome,
		Guesses:  sess.Guesses,
		MaxTurns: game.MaxGuesses,
	}
	if sess.Finished() {
		t := sess.Target()
		res.Fighter = &t
	}
	_ = json.NewEncoder(w).Encode(res)
}

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	Name string `json:"name"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Attempt     *game.Attempt     `json:"attempt,omitempty"`
	Outcome     game.Outcome      `json:"outcome"`
	GuessesUsed int               `json:"guessesUsed"`
	Fighter     *fighters.Profile `json:"fighter,omitempty"`
	SuccessRate *int              `json:"successRate,omitempty"`
}

// handleDailyGuess validates and applies one guess to today's session.
// - Unknown or empty names are rejected with no state change.
// - Guesses after a terminal outcome are ignored (the current outcome is
//   returned unchanged).
// - Accepted guesses are persisted and counted in the global tally; a
//   terminal outcome is folded into the player's statistics once.
func (s *Server) handleDailyGuess(w http.ResponseWriter, r *http.Request) {
	var req dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	uid, sess := s.loadDailySession(w, r)
	att, outcome, err := sess.SubmitGuess(s.catalog, req.Name)
	switch {
	case errors.Is(err, game.ErrFinished):
		// Terminal-state violation: ignored, no state change.
		_ = json.NewEncoder(w).Encode(dailyGuessRes{Outcome: outcome, GuessesUsed: len(sess.Guesses)})
		return
	case errors.Is(err, game.ErrEmptyGuess):
		http.Error(w, `{"error":"empty_guess"}`, http.StatusBadRequest)
		return
	case errors.Is(err, game.ErrUnknownFighter):
		http.Error(w, `{"error":"fighter_not_found"}`, http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	// Mirror to storage and bump counters; all best effort.
	if err := s.sessions.Save(r.Context(), uid, sess); err != nil {
		log.Warn().Err(err).Str("player", uid).Msg("save daily session")
	}
	correct := sess.Correct(att)
	if err := s.aggregate.RecordGuess(r.Context(), sess.Date, correct); err != nil {
		log.Warn().Err(err).Str("date", sess.Date).Msg("record global guess")
	}
	if sess.Finished() {
		won := outcome == game.OutcomeWon
		if _, err := s.tracker.RecordOutcome(r.Context(), uid, sess.Date, won, len(sess.Guesses)); err != nil {
			log.Warn().Err(err).Str("player", uid).Msg("record daily outcome")
		}
	}

	res := dailyGuessRes{
		Attempt:     &att,
		Outcome:     outcome,
		GuessesUsed: len(sess.Guesses),
	}
	if sess.Finished() {
		t := sess.Target()
		res.Fighter = &t
		if rate, ok, err := s.aggregate.SuccessRate(r.Context(), sess.Date); err == nil && ok {
			res.SuccessRate = &rate
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleDailyShare renders today's board as shareable text.
func (s *Server) handleDailyShare(w http.ResponseWriter, r *http.Request) {
	_, sess := s.loadDailySession(w, r)
	_ = json.NewEncoder(w).Encode(map[string]string{"text": game.EncodeShare(sess)})
}

// handleDailyStats returns the player's cumulative statistics.
func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	uid, _ := s.playerID(w, r)
	rec, err := s.tracker.Load(r.Context(), uid)
	if err != nil {
		log.Warn().Err(err).Str("player", uid).Msg("load stats")
	}
	_ = json.NewEncoder(w).Encode(rec)
}

// successRateRes is returned by /daily/success-rate. Rate is null when no
// guesses were recorded for the date.
type successRateRes struct {
	Date string `json:"date"`
	Rate *int   `json:"rate"`
}

// handleDailySuccessRate returns today's global win percentage.
func (s *Server) handleDailySuccessRate(w http.ResponseWriter, r *http.Request) {
	date := game.DateKey(s.now())
	res := successRateRes{Date: date}
	if rate, ok, err := s.aggregate.SuccessRate(r.Context(), date); err == nil && ok {
		res.Rate = &rate
	} else if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("load success rate")
	}
	_ = json.NewEncoder(w).Encode(res)
}
