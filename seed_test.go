package ligaledger

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDecodeSeedSquads(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		fallback Date
		wantDay  Date
		wantErr  bool
	}{
		{
			name:    "canonical form",
			in:      `{"seed_date": "2025-05-27", "users": {"1001": [1, 2], "1002": [4]}}`,
			wantDay: NewDate(2025, time.May, 27),
		},
		{
			name:    "squads key form",
			in:      `{"seed_date": "2025-05-27", "squads": {"1001": [1, 2]}}`,
			wantDay: NewDate(2025, time.May, 27),
		},
		{
			name:    "top-level mapping form",
			in:      `{"seed_date": "2025-05-27", "1001": [1, 2], "_comment": "hand edited"}`,
			wantDay: NewDate(2025, time.May, 27),
		},
		{
			name:     "missing date uses fallback",
			in:       `{"users": {"1001": [1]}}`,
			fallback: NewDate(2025, time.June, 1),
			wantDay:  NewDate(2025, time.June, 1),
		},
		{
			name:    "missing date and no fallback",
			in:      `{"users": {"1001": [1]}}`,
			wantErr: true,
		},
		{
			name:    "non-numeric manager id",
			in:      `{"seed_date": "2025-05-27", "users": {"bob": [1]}}`,
			wantErr: true,
		},
		{
			name:    "no squads at all",
			in:      `{"seed_date": "2025-05-27", "users": {}}`,
			wantErr: true,
		},
		{
			name:    "not json",
			in:      `seed_date=2025-05-27`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, err := DecodeSeedSquads(strings.NewReader(tt.in), tt.fallback)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if seed.Day() != tt.wantDay {
				t.Errorf("seed day = %v, want %v", seed.Day(), tt.wantDay)
			}
			if !seed.Squad(1001).Has(1) {
				t.Error("manager 1001 should hold asset 1")
			}
		})
	}
}

func TestSeedSquadsAreIsolated(t *testing.T) {
	squads := Squads{1001: NewSquad(1, 2)}
	seed := NewSeedSquads(NewDate(2025, time.May, 27), squads)

	// Mutating either the input or an accessor copy must not leak into the
	// seed itself.
	squads[1001].Add(99)
	seed.Squads()[1001].Add(98)
	seed.Squad(1001).Add(97)

	got := seed.Squad(1001).Assets()
	if !slices.Equal(got, []AssetID{1, 2}) {
		t.Errorf("seed squad mutated through aliases: %v", got)
	}
}

func TestDateFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want Date
	}{
		{"seed_squads_2025-05-27.json", NewDate(2025, time.May, 27)},
		{"/var/data/seed_2025-06-01.json", NewDate(2025, time.June, 1)},
		{"seed_squads.json", Date{}},
		{"seed_2025-13-40.json", Date{}},
	}
	for _, tt := range tests {
		if got := dateFromFilename(tt.path); got != tt.want {
			t.Errorf("dateFromFilename(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSeedSquadsRoundTrip(t *testing.T) {
	seed := NewSeedSquads(NewDate(2025, time.May, 27), Squads{
		1001: NewSquad(1, 2, 3),
		1002: NewSquad(4),
	})

	var buf bytes.Buffer
	if err := EncodeSeedSquads(&buf, seed); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeSeedSquads(&buf, Date{})
	if err != nil {
		t.Fatal(err)
	}
	if back.Day() != seed.Day() {
		t.Errorf("day = %v, want %v", back.Day(), seed.Day())
	}
	for _, m := range []ManagerID{1001, 1002} {
		if !back.Squad(m).Equal(seed.Squad(m)) {
			t.Errorf("squad %d not preserved", m)
		}
	}
}
