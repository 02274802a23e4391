package ligaledger

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Replayer derives squad membership at any date by replaying the normalized
// event stream forward from the seed snapshot.
//
// The seed date is the lower bound of the replay: events settling on or
// before it are already reflected in the seed and are ignored. Replay is a
// pure function of seed and ledger, so calling it twice with the same
// inputs yields the same squads.
type Replayer struct {
	seed   *SeedSquads
	ledger *Ledger
	log    zerolog.Logger

	// Replays may run concurrently for different managers or dates, so the
	// inconsistency count is the only mutable state and is atomic.
	inconsistencies atomic.Int64
}

// NewReplayer creates a replayer over the given seed and ledger.
func NewReplayer(seed *SeedSquads, ledger *Ledger, log zerolog.Logger) *Replayer {
	return &Replayer{seed: seed, ledger: ledger, log: log}
}

// SeedDay returns the replay's lower bound.
func (r *Replayer) SeedDay() Date { return r.seed.Day() }

// Inconsistencies returns how many events referenced an asset its manager
// did not hold. A non-zero count marks reconstructed results approximate.
func (r *Replayer) Inconsistencies() int { return int(r.inconsistencies.Load()) }

// AllSquadsAt returns every manager's squad at the end of the given
// business day.
func (r *Replayer) AllSquadsAt(on Date) Squads {
	squads := r.seed.Squads()
	if !on.After(r.seed.Day()) {
		return squads
	}
	for ev := range r.ledger.EventsThrough(on) {
		if !ev.When().After(r.seed.Day()) {
			// Already part of the seed inventory.
			continue
		}
		r.apply(squads, ev)
	}
	return squads
}

// SquadAt returns one manager's squad at the end of the given business day.
func (r *Replayer) SquadAt(manager ManagerID, on Date) Squad {
	squad := r.AllSquadsAt(on)[manager]
	if squad == nil {
		squad = NewSquad()
	}
	return squad
}

// apply mutates squads with one event. A sell or outgoing exchange of an
// asset the manager does not hold is a reconstruction inconsistency: it is
// logged and treated as a no-op removal, so one data glitch never breaks
// the whole summary.
func (r *Replayer) apply(squads Squads, ev Event) {
	squad := func(m ManagerID) Squad {
		s, ok := squads[m]
		if !ok {
			s = NewSquad()
			squads[m] = s
		}
		return s
	}

	switch v := ev.(type) {
	case Buy:
		squad(v.Manager).Add(v.Asset)
	case Sell:
		s := squad(v.Manager)
		if !s.Has(v.Asset) {
			r.inconsistent(v.Manager, v.Asset, v.When(), "sell")
		}
		s.Remove(v.Asset)
	case Exchange:
		giver, taker := squad(v.Giver), squad(v.Taker)
		if !giver.Has(v.Given) {
			r.inconsistent(v.Giver, v.Given, v.When(), "exchange out")
		}
		if !taker.Has(v.Taken) {
			r.inconsistent(v.Taker, v.Taken, v.When(), "exchange in")
		}
		giver.Remove(v.Given)
		taker.Add(v.Given)
		taker.Remove(v.Taken)
		giver.Add(v.Taken)
	}
}

func (r *Replayer) inconsistent(manager ManagerID, asset AssetID, on Date, op string) {
	r.inconsistencies.Add(1)
	r.log.Warn().
		Int64("manager", int64(manager)).
		Int64("asset", int64(asset)).
		Stringer("day", on).
		Str("op", op).
		Msg("event references asset not in squad, treated as no-op removal")
}
