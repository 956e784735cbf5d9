// internal/fighters/catalog.go
//
// Roster management for the game engine.
//
// Responsibilities:
//   - Load the fighter roster from an environment-provided file or fall
//     back to the embedded default.
//   - Validate the roster (non-empty, case-insensitively unique names).
//   - Case-insensitive name lookup for guess resolution.
//
// Initialization behavior (Init):
//   1. If FIGHTERS_FILE is set, load the roster from that path.
//   2. Otherwise, use the embedded fighters.json.
//
// The roster order matters: the daily selector indexes into it
// positionally, so reordering or resizing the file changes past answers.
// Initialization runs once (sync.Once).

package fighters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mmaguess/fotd-server/assets"
)

// Catalog is an ordered, immutable fighter roster with name lookup.
type Catalog struct {
	list   []Profile
	byName map[string]int // lowercased name -> index
}

// New validates profiles and builds a Catalog. The roster must be non-empty
// and names must be unique ignoring case.
func New(profiles []Profile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, errors.New("fighters: roster is empty")
	}
	byName := make(map[string]int, len(profiles))
	for i, p := range profiles {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			return nil, fmt.Errorf("fighters: entry %d has no name", i)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("fighters: duplicate name %q", p.Name)
		}
		byName[name] = i
	}
	return &Catalog{list: profiles, byName: byName}, nil
}

// Parse decodes a fighters.json payload into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("fighters: parse roster: %w", err)
	}
	return New(profiles)
}

// Len returns the roster size.
func (c *Catalog) Len() int { return len(c.list) }

// At returns the profile at position i.
func (c *Catalog) At(i int) Profile { return c.list[i] }

// Find looks up a profile by name, ignoring case and surrounding space.
func (c *Catalog) Find(name string) (Profile, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, false
	}
	return c.list[i], true
}

var (
	initOnce   sync.Once
	defCatalog *Catalog
	initialErr error
)

// Init loads the default roster exactly once. Returns an error if the
// roster is missing, malformed, or empty; callers should treat that as a
// startup failure.
func Init() error {
	initOnce.Do(func() {
		var data []byte
		if path := os.Getenv("FIGHTERS_FILE"); path != "" {
			data, initialErr = os.ReadFile(path)
			if initialErr != nil {
				return
			}
		} else {
			data, initialErr = assets.FightersJSON()
			if initialErr != nil {
				return
			}
		}
		defCatalog, initialErr = Parse(data)
	})
	return initialErr
}

// Default returns the roster loaded by Init. Nil before a successful Init.
func Default() *Catalog { return defCatalog }
