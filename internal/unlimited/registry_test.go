package unlimited

import (
	"fmt"
	"testing"

	"github.com/mmaguess/fotd-server/internal/fighters"
	"github.com/mmaguess/fotd-server/internal/game"
)

func testCatalog(t *testing.T) *fighters.Catalog {
	t.Helper()
	profiles := make([]fighters.Profile, 4)
	for i := range profiles {
		profiles[i] = fighters.Profile{
			Name:        fmt.Sprintf("Fighter %d", i),
			Country:     "Brazil",
			WeightClass: "Lightweight",
			Age:         fighters.StatOf(30),
			Height:      fighters.StatOf(70),
			UFCFights:   fighters.StatOf(10),
			MMAFights:   fighters.StatOf(10),
		}
	}
	c, err := fighters.New(profiles)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func TestRegistryNewAndGet(t *testing.T) {
	c := testCatalog(t)
	r := NewRegistry()

	id := r.New(c)
	if id == "" {
		t.Fatal("empty game id")
	}
	sess, ok := r.Get(id)
	if !ok {
		t.Fatal("game not found after New")
	}
	if sess.Outcome != game.OutcomeInProgress {
		t.Errorf("new game outcome = %s", sess.Outcome)
	}
	if _, ok := c.Find(sess.Target().Name); !ok {
		t.Errorf("target %q not from catalog", sess.Target().Name)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) reported a game")
	}
}

func TestRegistryIDsAreUnique(t *testing.T) {
	c := testCatalog(t)
	r := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := r.New(c)
		if seen[id] {
			t.Fatalf("duplicate game id %q", id)
		}
		seen[id] = true
	}
}
