package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mmaguess/fotd-server/internal/fighters"
	"github.com/mmaguess/fotd-server/internal/httpserver"
	"github.com/mmaguess/fotd-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// An unusable roster is fatal: there is no target to guess.
	if err := fighters.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fighter roster")
	}

	// SQLite is best effort: without it the game still runs, with sessions
	// and stats held in memory and accounts/leaderboard disabled.
	kv := store.NewMemoryStore()
	db, err := openDB(getEnv("DB_PATH", "./data/fotd.db"))
	if err == nil {
		err = migrate(db)
	}
	if err != nil {
		log.Warn().Err(err).Msg("sqlite unavailable, running with in-memory persistence only")
		db = nil
	} else {
		kv = store.NewSQLiteStore(db)
	}

	srv := httpserver.New(fighters.Default(), kv, db)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("roster", fighters.Default().Len()).Msg("starting fotd-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
