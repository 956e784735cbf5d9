// internal/fighters/profile.go
//
// Core record types for the fighter roster.
// Defines:
//   - Stat: an integer attribute that may be "Unknown" in the source data.
//   - Profile: one fighter row as loaded from fighters.json.

package fighters

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Unknown is the sentinel used in the roster data for missing values.
// Scoring treats an Unknown on either side of a comparison as never
// matching, not even against another Unknown.
const Unknown = "Unknown"

// Stat is an integer attribute (age, height, fight count) that the source
// data sometimes records as the string "Unknown". JSON round-trips preserve
// the original representation.
type Stat struct {
	Known bool
	Value int
}

// StatOf is a convenience constructor for a known value.
func StatOf(v int) Stat { return Stat{Known: true, Value: v} }

func (s *Stat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		if n, err := strconv.Atoi(str); err == nil {
			*s = Stat{Known: true, Value: n}
			return nil
		}
		// "Unknown" or any other non-numeric string.
		*s = Stat{}
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = Stat{Known: true, Value: n}
	return nil
}

func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Known {
		return json.Marshal(Unknown)
	}
	return json.Marshal(s.Value)
}

// String renders the value the way the roster data does.
func (s Stat) String() string {
	if !s.Known {
		return Unknown
	}
	return strconv.Itoa(s.Value)
}

// Profile is a single immutable fighter record. JSON field names match the
// roster file format.
type Profile struct {
	Name        string `json:"Name"`
	Country     string `json:"Country"`
	WeightClass string `json:"Weight Class"`
	Age         Stat   `json:"Age"`
	Height      Stat   `json:"Height"`
	UFCFights   Stat   `json:"UFC Fights"`
	MMAFights   Stat   `json:"MMA Fights"`
}
