package assets

import "embed"

//go:embed fighters.json
var FS embed.FS

// FightersJSON returns the embedded default fighter roster. Used when no
// FIGHTERS_FILE override is configured.
func FightersJSON() ([]byte, error) {
	return FS.ReadFile("fighters.json")
}
