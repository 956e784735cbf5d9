// internal/unlimited/scores.go
//
// Persistent per-player unlimited-mode scores and the wins leaderboard.
// One row per player: games played, games won, and a running average guess
// count. Only wins update the row; the average folds the new game in as
// (oldAvg*oldPlayed + guesses) / (oldPlayed + 1).
//
// The update is read-modify-write with no compare-and-swap. Two devices
// finishing at the same moment can undercount; best effort is accepted for
// this display-only leaderboard.

package unlimited

import (
	"context"
	"database/sql"
)

// Row is one player's unlimited-mode score line.
type Row struct {
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	GamesPlayed int     `json:"gamesPlayed"`
	GamesWon    int     `json:"gamesWon"`
	AvgScore    float64 `json:"avgScore"`
}

// ScoreStore reads and writes unlimited_scores rows.
type ScoreStore struct {
	db *sql.DB
}

// NewScoreStore wraps an open database.
func NewScoreStore(db *sql.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

// Ensure creates the player's score row if missing.
func (s *ScoreStore) Ensure(ctx context.Context, userID, username string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO unlimited_scores (user_id, username, games_played, games_won, avg_score)
        VALUES (?, ?, 0, 0, 0)`, userID, username)
	return err
}

// RecordWin folds a won game into the player's row.
func (s *ScoreStore) RecordWin(ctx context.Context, userID string, guesses int) error {
	var played, won int
	var avg float64
	err := s.db.QueryRowContext(ctx, `
        SELECT games_played, games_won, avg_score FROM unlimited_scores WHERE user_id=?`,
		userID,
	).Scan(&played, &won, &avg)
	if err != nil {
		return err
	}
	newAvg := (avg*float64(played) + float64(guesses)) / float64(played+1)
	_, err = s.db.ExecContext(ctx, `
        UPDATE unlimited_scores SET games_played=?, games_won=?, avg_score=? WHERE user_id=?`,
		played+1, won+1, newAvg, userID)
	return err
}

// Top returns the leaderboard: rows ordered by wins descending. Default
// limit is 10.
func (s *ScoreStore) Top(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT user_id, username, games_played, games_won, avg_score
        FROM unlimited_scores
        ORDER BY games_won DESC, avg_score ASC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.UserID, &r.Username, &r.GamesPlayed, &r.GamesWon, &r.AvgScore); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
