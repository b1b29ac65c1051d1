package geo

import "testing"

func TestLocate(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		wantLat float64
		wantOK  bool
	}{
		{"exact region", "Ashanti", 6.6885, true},
		{"case insensitive", "ashanti", 6.6885, true},
		{"alternate name", "Obuasi", 6.6885, true},
		{"region suffix stripped by substring", "Ashanti Region", 6.6885, true},
		{"greater accra phrasing", "Greater Accra Region", 5.6037, true},
		{"accra locality", "East Legon", 5.6350, true},
		{"whitespace trimmed", "  Tamale  ", 9.4000, true},
		{"unknown", "Ouagadougou", 0, false},
		{"empty", "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lat, _, ok := Locate(tc.query)
			if ok != tc.wantOK {
				t.Fatalf("Locate(%q) ok = %v, want %v", tc.query, ok, tc.wantOK)
			}
			if ok && lat != tc.wantLat {
				t.Errorf("Locate(%q) lat = %v, want %v", tc.query, lat, tc.wantLat)
			}
		})
	}
}

func TestLocate_ExactBeforeSubstring(t *testing.T) {
	// "Accra" matches the Greater Accra region's alternate name before the
	// standalone city entry, keeping results stable across list edits.
	lat, lng, ok := Locate("Accra")
	if !ok {
		t.Fatal("expected match")
	}
	if lat != 5.6037 || lng != -0.1870 {
		t.Errorf("got %v,%v; want the Greater Accra alternate entry", lat, lng)
	}
}

func TestGhanaBounds(t *testing.T) {
	for _, p := range Places {
		if p.Lat > GhanaBounds.North || p.Lat < GhanaBounds.South {
			t.Errorf("%s lat %v outside bounds", p.Name, p.Lat)
		}
		if p.Lng > GhanaBounds.East || p.Lng < GhanaBounds.West {
			t.Errorf("%s lng %v outside bounds", p.Name, p.Lng)
		}
	}
}
