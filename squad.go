package ligaledger

import (
	"maps"
	"slices"
)

// Squad is the set of assets a manager holds. Membership has no duplicates
// by construction.
type Squad map[AssetID]struct{}

// NewSquad builds a squad from asset ids, dropping duplicates.
func NewSquad(assets ...AssetID) Squad {
	s := make(Squad, len(assets))
	for _, a := range assets {
		s[a] = struct{}{}
	}
	return s
}

func (s Squad) Has(a AssetID) bool {
	_, ok := s[a]
	return ok
}

func (s Squad) Add(a AssetID)    { s[a] = struct{}{} }
func (s Squad) Remove(a AssetID) { delete(s, a) }
func (s Squad) Len() int         { return len(s) }

// Clone returns an independent copy of the squad.
func (s Squad) Clone() Squad { return maps.Clone(s) }

// Assets returns the squad's asset ids in ascending order.
func (s Squad) Assets() []AssetID {
	ids := slices.Collect(maps.Keys(s))
	slices.Sort(ids)
	return ids
}

// Equal reports whether both squads hold exactly the same assets.
func (s Squad) Equal(o Squad) bool {
	if len(s) != len(o) {
		return false
	}
	for a := range s {
		if _, ok := o[a]; !ok {
			return false
		}
	}
	return true
}

// Diff compares a reconstructed squad against an externally supplied one and
// returns the assets only the reconstruction has (extra) and the assets only
// the external squad has (missing). Used by the debug squad-compare output.
func (s Squad) Diff(external Squad) (extra, missing []AssetID) {
	for a := range s {
		if !external.Has(a) {
			extra = append(extra, a)
		}
	}
	for a := range external {
		if !s.Has(a) {
			missing = append(missing, a)
		}
	}
	slices.Sort(extra)
	slices.Sort(missing)
	return extra, missing
}

// Squads maps each manager to their squad.
type Squads map[ManagerID]Squad

// Clone returns a deep copy of the mapping.
func (q Squads) Clone() Squads {
	out := make(Squads, len(q))
	for m, s := range q {
		out[m] = s.Clone()
	}
	return out
}

// Managers returns all manager ids in ascending order.
func (q Squads) Managers() []ManagerID {
	ids := slices.Collect(maps.Keys(q))
	slices.Sort(ids)
	return ids
}
