package ligaledger

import (
	"slices"
	"testing"
)

func TestSquadBasics(t *testing.T) {
	s := NewSquad(3, 1, 2)
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if !slices.Equal(s.Assets(), []AssetID{1, 2, 3}) {
		t.Errorf("assets = %v, want sorted [1 2 3]", s.Assets())
	}

	s.Add(2) // already present
	if s.Len() != 3 {
		t.Errorf("duplicate add changed the squad: %v", s.Assets())
	}
	s.Remove(2)
	s.Remove(99) // absent, no-op
	if s.Has(2) || !s.Has(1) {
		t.Errorf("after remove: %v", s.Assets())
	}

	clone := s.Clone()
	clone.Add(42)
	if s.Has(42) {
		t.Error("clone shares storage with the original")
	}
}

func TestSquadDiff(t *testing.T) {
	tests := []struct {
		name        string
		squad       Squad
		external    Squad
		wantExtra   []AssetID
		wantMissing []AssetID
	}{
		{"identical", NewSquad(1, 2), NewSquad(1, 2), nil, nil},
		{"one of each", NewSquad(1, 2), NewSquad(2, 3), []AssetID{1}, []AssetID{3}},
		{"external empty", NewSquad(2, 1), NewSquad(), []AssetID{1, 2}, nil},
		{"squad empty", NewSquad(), NewSquad(1, 2), nil, []AssetID{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extra, missing := tt.squad.Diff(tt.external)
			if !slices.Equal(extra, tt.wantExtra) {
				t.Errorf("extra = %v, want %v", extra, tt.wantExtra)
			}
			if !slices.Equal(missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}
