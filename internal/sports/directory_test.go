package sports

import "testing"

func TestResolveAbbreviation(t *testing.T) {
	d := Get("nfl").Directory()

	cases := []struct {
		in   string
		want string
	}{
		{"IND", "Indianapolis Colts"},
		{"ind", "Indianapolis Colts"},
		{"ATL", "Atlanta Falcons"},
		{"GB", "Green Bay Packers"},
	}
	for _, tt := range cases {
		if got := d.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveExactAndVariations(t *testing.T) {
	d := Get("nfl").Directory()

	cases := []struct {
		in   string
		want string
	}{
		{"Indianapolis Colts", "Indianapolis Colts"},
		{"colts", "Indianapolis Colts"},
		{"Kansas City", "Kansas City Chiefs"},
		{"Oakland", "Las Vegas Raiders"}, // legacy variation
		{"GNB", "Green Bay Packers"},     // alternate code, variation tier
	}
	for _, tt := range cases {
		if got := d.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveContainment(t *testing.T) {
	d := Get("nfl").Directory()

	if got := d.Resolve("the Indianapolis offense"); got != "Indianapolis Colts" {
		t.Errorf("containment on city failed: got %q", got)
	}
	if got := d.Resolve("New England at home"); got != "New England Patriots" {
		t.Errorf("multi-word city containment failed: got %q", got)
	}
}

func TestResolveFuzzy(t *testing.T) {
	d := Get("nfl").Directory()

	// Typo disables every exact and containment tier; edit distance
	// still clears the cutoff.
	if got := d.Resolve("Indanapolis Colt"); got != "Indianapolis Colts" {
		t.Errorf("fuzzy tier failed: got %q", got)
	}
}

func TestResolveRejectsGarbage(t *testing.T) {
	d := Get("nfl").Directory()

	for _, in := range []string{"", "   ", "zzzzzz", "qqqqqwwww"} {
		if got := d.Resolve(in); got != "" {
			t.Errorf("Resolve(%q) = %q, want unresolved", in, got)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	d := Get("nba").Directory()

	first := d.Resolve("Los Angeles")
	for i := 0; i < 50; i++ {
		if got := d.Resolve("Los Angeles"); got != first {
			t.Fatalf("Resolve not deterministic: %q then %q", first, got)
		}
	}
}

func TestAbbrName(t *testing.T) {
	d := Get("nhl").Directory()

	if name, ok := d.AbbrName("bos"); !ok || name != "Boston Bruins" {
		t.Errorf("AbbrName(bos) = %q, %v", name, ok)
	}
	if _, ok := d.AbbrName("ZZZ"); ok {
		t.Error("AbbrName(ZZZ) should miss")
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Las Vegas Raiders", "raiders"},
		{"Indianapolis Colts", "colts"},
		{"Arsenal", "arsenal"},
		{"  Green Bay Packers  ", "packers"},
		{"", ""},
	}
	for _, tt := range cases {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	if !IsValid("nfl") || !IsValid("soccer") {
		t.Error("expected nfl and soccer to be registered")
	}
	if IsValid("curling") {
		t.Error("curling should not be registered")
	}

	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 sports, got %d", len(all))
	}
	// Stable ordering
	if all[0].Key != "nfl" {
		t.Errorf("expected nfl first, got %s", all[0].Key)
	}

	cfg := Get("nba")
	if cfg == nil || cfg.KalshiSeries != "KXNBAGAME" {
		t.Errorf("nba config wrong: %+v", cfg)
	}
	if cfg.Directory() == nil {
		t.Error("directory should be built at init")
	}
}
