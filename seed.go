package ligaledger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SeedSquads is a trusted squad snapshot at a known reference date, the
// starting point of every replay. The reference date is fixed at
// construction and never mutated.
type SeedSquads struct {
	day    Date
	squads Squads
}

// NewSeedSquads builds a seed snapshot for the given reference date.
func NewSeedSquads(day Date, squads Squads) *SeedSquads {
	return &SeedSquads{day: day, squads: squads.Clone()}
}

// Day returns the seed's reference date.
func (s *SeedSquads) Day() Date { return s.day }

// Squads returns an independent copy of the seed mapping, safe to mutate
// during replay.
func (s *SeedSquads) Squads() Squads { return s.squads.Clone() }

// Squad returns a copy of one manager's seed squad (nil-safe, may be empty).
func (s *SeedSquads) Squad(manager ManagerID) Squad {
	return s.squads[manager].Clone()
}

// seedFile is the on-disk shape produced by the seed authoring tooling:
//
//	{"seed_date": "2025-05-27", "users": {"2891049": [104233, 109817], ...}}
//
// Older files keep the mapping under "squads" or at the top level.
type seedFile struct {
	SeedDate string               `json:"seed_date"`
	Users    map[string][]AssetID `json:"users"`
	Squads   map[string][]AssetID `json:"squads"`
}

// DecodeSeedSquads reads a seed file from r. When the file carries no
// seed_date, fallback is used; a zero fallback makes the missing date fatal.
func DecodeSeedSquads(r io.Reader, fallback Date) (*SeedSquads, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read seed file: %w", err)
	}

	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("malformed seed file: %w", err)
	}

	users := f.Users
	if users == nil {
		users = f.Squads
	}
	if users == nil {
		// Top-level mapping form: every key is a manager id.
		var top map[string]json.RawMessage
		if err := json.Unmarshal(raw, &top); err != nil {
			return nil, fmt.Errorf("malformed seed file: %w", err)
		}
		users = make(map[string][]AssetID)
		for key, val := range top {
			if key == "seed_date" || strings.HasPrefix(key, "_") {
				continue
			}
			var assets []AssetID
			if err := json.Unmarshal(val, &assets); err != nil {
				return nil, fmt.Errorf("malformed seed squad for %q: %w", key, err)
			}
			users[key] = assets
		}
	}

	day := fallback
	if f.SeedDate != "" {
		day, err = ParseDate(f.SeedDate)
		if err != nil {
			return nil, fmt.Errorf("malformed seed file: %w", err)
		}
	}
	if day.IsZero() {
		return nil, fmt.Errorf("seed file carries no seed_date and none could be derived")
	}

	squads := make(Squads, len(users))
	for key, assets := range users {
		if strings.HasPrefix(key, "_") {
			continue
		}
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed seed file: manager id %q is not numeric", key)
		}
		squads[ManagerID(id)] = NewSquad(assets...)
	}
	if len(squads) == 0 {
		return nil, fmt.Errorf("seed file declares no squads")
	}

	return NewSeedSquads(day, squads), nil
}

// LoadSeedSquads loads a seed file from disk. A missing seed_date field
// falls back to a YYYY-MM-DD component of the filename, the convention of
// the authoring tooling (seed_squads_2025-05-27.json).
func LoadSeedSquads(path string) (*SeedSquads, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open seed file: %w", err)
	}
	defer f.Close()
	return DecodeSeedSquads(f, dateFromFilename(path))
}

// dateFromFilename extracts a YYYY-MM-DD component from a file name, or the
// zero date.
func dateFromFilename(path string) Date {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, part := range strings.Split(stem, "_") {
		if len(part) == 10 && part[4] == '-' && part[7] == '-' {
			if d, err := ParseDate(part); err == nil {
				return d
			}
		}
	}
	return Date{}
}

// EncodeSeedSquads writes the seed snapshot in the canonical on-disk form.
func EncodeSeedSquads(w io.Writer, s *SeedSquads) error {
	users := make(map[string][]AssetID, len(s.squads))
	for m, squad := range s.squads {
		users[strconv.FormatInt(int64(m), 10)] = squad.Assets()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		SeedDate string               `json:"seed_date"`
		Users    map[string][]AssetID `json:"users"`
	}{SeedDate: s.day.String(), Users: users})
}
