package store

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		t.Fatalf("create kv: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": NewSQLiteStore(db),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, found, err := s.Get(ctx, "missing"); err != nil || found {
				t.Errorf("Get(missing): found=%v err=%v", found, err)
			}

			if err := s.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, found, err := s.Get(ctx, "k")
			if err != nil || !found {
				t.Fatalf("Get: found=%v err=%v", found, err)
			}
			if string(v) != `{"a":1}` {
				t.Errorf("Get = %q", v)
			}

			// Overwrite replaces the value.
			if err := s.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			v, _, _ = s.Get(ctx, "k")
			if string(v) != `{"a":2}` {
				t.Errorf("after overwrite = %q", v)
			}
		})
	}
}
