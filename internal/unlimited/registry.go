// internal/unlimited/registry.go
//
// In-memory registry of active unlimited-mode games. Each game gets a
// random target and a compact random ID; there is no day binding and no
// replay limit. State is lost on restart, which is acceptable for this
// mode.

package unlimited

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/mmaguess/fotd-server/internal/fighters"
	"github.com/mmaguess/fotd-server/internal/game"
)

// Registry holds active unlimited games keyed by game ID.
type Registry struct {
	mu    sync.RWMutex // guards games
	games map[string]*game.Session
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*game.Session)}
}

// New starts a game against a random fighter and returns its ID.
func (r *Registry) New(c *fighters.Catalog) string {
	id := randomID()
	sess := game.NewSession("", game.SelectRandom(c))
	r.mu.Lock()
	r.games[id] = sess
	r.mu.Unlock()
	return id
}

// Get returns the game for id, if any.
func (r *Registry) Get(id string) (*game.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	return g, ok
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
