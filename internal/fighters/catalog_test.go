package fighters

import (
	"testing"
)

const rosterJSON = `[
  {"Name": "Islam Makhachev", "Country": "Russia", "Weight Class": "Lightweight", "Age": 33, "Height": 70, "UFC Fights": 16, "MMA Fights": 27},
  {"Name": "Mark Hunt", "Country": "New Zealand", "Weight Class": "Heavyweight", "Age": 50, "Height": 70, "UFC Fights": 14, "MMA Fights": "Unknown"}
]`

func TestParseRoster(t *testing.T) {
	c, err := Parse([]byte(rosterJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	p := c.At(0)
	if p.Name != "Islam Makhachev" || p.WeightClass != "Lightweight" {
		t.Errorf("unexpected first profile: %+v", p)
	}
	if !p.Age.Known || p.Age.Value != 33 {
		t.Errorf("age = %+v, want known 33", p.Age)
	}
	if c.At(1).MMAFights.Known {
		t.Errorf("expected unknown MMA fights, got %+v", c.At(1).MMAFights)
	}
	if got := c.At(1).MMAFights.String(); got != Unknown {
		t.Errorf("unknown stat renders %q, want %q", got, Unknown)
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	c, err := Parse([]byte(rosterJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, name := range []string{"Islam Makhachev", "islam makhachev", "  ISLAM MAKHACHEV  "} {
		if _, ok := c.Find(name); !ok {
			t.Errorf("Find(%q) missed", name)
		}
	}
	if _, ok := c.Find("Nobody"); ok {
		t.Error("Find(Nobody) matched")
	}
}

func TestNewRejectsBadRosters(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("empty roster accepted")
	}
	dup := []Profile{{Name: "A"}, {Name: "a"}}
	if _, err := New(dup); err == nil {
		t.Error("case-colliding names accepted")
	}
	unnamed := []Profile{{Name: "  "}}
	if _, err := New(unnamed); err == nil {
		t.Error("unnamed profile accepted")
	}
}

func TestStatJSONRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want Stat
	}{
		{`27`, Stat{Known: true, Value: 27}},
		{`"27"`, Stat{Known: true, Value: 27}},
		{`"Unknown"`, Stat{}},
	}
	for _, tc := range tests {
		var s Stat
		if err := s.UnmarshalJSON([]byte(tc.in)); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if s != tc.want {
			t.Errorf("unmarshal %s = %+v, want %+v", tc.in, s, tc.want)
		}
	}
	out, err := (Stat{}).MarshalJSON()
	if err != nil || string(out) != `"Unknown"` {
		t.Errorf("marshal unknown = %s, %v", out, err)
	}
}

func TestEmbeddedDefaultRoster(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c := Default()
	if c == nil || c.Len() == 0 {
		t.Fatal("default roster empty")
	}
	if _, ok := c.Find("Jon Jones"); !ok {
		t.Error("default roster missing expected entry")
	}
}
