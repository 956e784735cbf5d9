// internal/httpserver/routes_unlimited.go
//
// HTTP routes for unlimited mode: endless random-target games with a
// persistent wins leaderboard for signed-in players.
//   - POST /unlimited/new         → start a game against a random fighter
//   - POST /unlimited/guess       → submit a guess for a game
//   - GET  /unlimited/leaderboard → top players by wins
//
// Anonymous players can play; only authenticated wins reach the
// leaderboard. Games live in memory and do not survive a restart.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mmaguess/fotd-server/internal/fighters"
	"github.com/mmaguess/fotd-server/internal/game"
	"github.com/mmaguess/fotd-server/internal/unlimited"
)

// mountUnlimited registers all /unlimited routes.
func (s *Server) mountUnlimited(r chi.Router) {
	r.Route("/unlimited", func(r chi.Router) {
		r.Post("/new", s.handleUnlimitedNew)
		r.Post("/guess", s.handleUnlimitedGuess)
		r.Get("/leaderboard", s.handleUnlimitedLeaderboard)
	})
}

// handleUnlimitedNew starts a fresh game and returns its ID.
func (s *Server) handleUnlimitedNew(w http.ResponseWriter, r *http.Request) {
	id := s.games.New(s.catalog)
	_ = json.NewEncoder(w).Encode(map[string]string{"gameId": id})
}

// unlimitedGuessReq is the request payload for /unlimited/guess.
type unlimitedGuessReq struct {
	GameID string `json:"gameId"`
	Name   string `json:"name"`
}

// unlimitedGuessRes is the response payload for /unlimited/guess.
type unlimitedGuessRes struct {
	Attempt     *game.Attempt     `json:"attempt,omitempty"`
	Outcome     game.Outcome      `json:"outcome"`
	GuessesUsed int               `json:"guessesUsed"`
	Fighter     *fighters.Profile `json:"fighter,omitempty"`
}

// handleUnlimitedGuess applies a guess to an unlimited game. A win by an
// authenticated player updates their leaderboard row (best effort).
func (s *Server) handleUnlimitedGuess(w http.ResponseWriter, r *http.Request) {
	var req unlimitedGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, ok := s.games.Get(req.GameID)
	if !ok {
		http.Error(w, `{"error":"game_not_found"}`, http.StatusNotFound)
		return
	}

	att, outcome, err := sess.SubmitGuess(s.catalog, req.Name)
	switch {
	case errors.Is(err, game.ErrFinished):
		_ = json.NewEncoder(w).Encode(unlimitedGuessRes{Outcome: outcome, GuessesUsed: len(sess.Guesses)})
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

	if outcome == game.OutcomeWon && s.scores != nil {
		if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
			if err := s.scores.Ensure(r.Context(), me.ID, me.Username); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("ensure unlimited score row")
			} else if err := s.scores.RecordWin(r.Context(), me.ID, len(sess.Guesses)); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("record unlimited win")
			}
		}
	}

	res := unlimitedGuessRes{
		Attempt:     &att,
		Outcome:     outcome,
		GuessesUsed: len(sess.Guesses),
	}
	if sess.Finished() {
		t := sess.Target()
		res.Fighter = &t
	}
	_ = json.NewEncoder(w).Encode(res)
}

// leaderboardRes is returned by /unlimited/leaderboard.
type leaderboardRes struct {
	Top []unlimited.Row `json:"top"`
}

// handleUnlimitedLeaderboard returns the top players by wins.
func (s *Server) handleUnlimitedLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		_ = json.NewEncoder(w).Encode(leaderboardRes{Top: []unlimited.Row{}})
		return
	}
	rows, err := s.scores.Top(r.Context(), 10)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(leaderboardRes{Top: rows})
}
