package ligaledger

import (
	"testing"
	"time"
)

const cutoff = 4

func seedAB() *SeedSquads {
	return NewSeedSquads(NewDate(2025, time.May, 27), Squads{
		1001: NewSquad(1, 2),
		1002: NewSquad(4),
	})
}

func TestReplayZeroEventsIsIdentity(t *testing.T) {
	r := NewReplayer(seedAB(), NewLedger(), nolog)

	got := r.SquadAt(1001, NewDate(2025, time.May, 27))
	if !got.Equal(NewSquad(1, 2)) {
		t.Errorf("SquadAt(seed date) = %v, want the seed squad", got.Assets())
	}
	// any later date with no events still matches the seed
	got = r.SquadAt(1001, NewDate(2025, time.December, 31))
	if !got.Equal(NewSquad(1, 2)) {
		t.Errorf("SquadAt(later) = %v, want the seed squad", got.Assets())
	}
}

func TestReplayBuySellForward(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(at(2025, time.June, 1, 12, 0), cutoff, 1001, 3, EUR(1000)),
		NewSell(at(2025, time.June, 5, 12, 0), cutoff, 1001, 1, EUR(400)),
	)
	r := NewReplayer(seedAB(), ledger, nolog)

	tests := []struct {
		name string
		day  Date
		want Squad
	}{
		{"before first event", NewDate(2025, time.May, 31), NewSquad(1, 2)},
		{"after the buy", NewDate(2025, time.June, 2), NewSquad(1, 2, 3)},
		{"after the sell", NewDate(2025, time.June, 6), NewSquad(2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SquadAt(1001, tt.day)
			if !got.Equal(tt.want) {
				t.Errorf("SquadAt(1001, %v) = %v, want %v", tt.day, got.Assets(), tt.want.Assets())
			}
		})
	}
}

func TestReplayExchangeMovesBothAssets(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewExchange(at(2025, time.June, 10, 12, 0), cutoff, 1001, 1002, 1, 4, EUR(500), 1001),
	)
	r := NewReplayer(seedAB(), ledger, nolog)

	day := NewDate(2025, time.June, 10)
	squads := r.AllSquadsAt(day)

	if !squads[1001].Equal(NewSquad(2, 4)) {
		t.Errorf("giver squad = %v, want [2 4]", squads[1001].Assets())
	}
	if !squads[1002].Equal(NewSquad(1)) {
		t.Errorf("taker squad = %v, want [1]", squads[1002].Assets())
	}

	// Conservation: total asset count across both managers is unchanged.
	before := seedAB().Squad(1001).Len() + seedAB().Squad(1002).Len()
	after := squads[1001].Len() + squads[1002].Len()
	if before != after {
		t.Errorf("asset count changed: %d before, %d after", before, after)
	}
}

func TestReplayMissingAssetIsNoOp(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		// manager 1001 never held asset 99
		NewSell(at(2025, time.June, 1, 12, 0), cutoff, 1001, 99, EUR(400)),
	)
	r := NewReplayer(seedAB(), ledger, nolog)

	got := r.SquadAt(1001, NewDate(2025, time.June, 2))
	if !got.Equal(NewSquad(1, 2)) {
		t.Errorf("SquadAt after bad sell = %v, want seed unchanged", got.Assets())
	}
	if r.Inconsistencies() != 1 {
		t.Errorf("Inconsistencies() = %d, want 1", r.Inconsistencies())
	}
}

func TestReplayIgnoresEventsOnOrBeforeSeedDay(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		// settles on the seed day itself: already part of the snapshot
		NewBuy(at(2025, time.May, 27, 12, 0), cutoff, 1001, 50, EUR(1000)),
		NewBuy(at(2025, time.June, 1, 12, 0), cutoff, 1001, 3, EUR(1000)),
	)
	r := NewReplayer(seedAB(), ledger, nolog)

	got := r.SquadAt(1001, NewDate(2025, time.June, 2))
	if !got.Equal(NewSquad(1, 2, 3)) {
		t.Errorf("SquadAt = %v, want seed plus asset 3 only", got.Assets())
	}
}

func TestReplayIsIdempotent(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(at(2025, time.June, 1, 12, 0), cutoff, 1001, 3, EUR(1000)),
		NewExchange(at(2025, time.June, 10, 12, 0), cutoff, 1001, 1002, 1, 4, Money{}, 0),
	)
	r := NewReplayer(seedAB(), ledger, nolog)

	day := NewDate(2025, time.June, 15)
	first := r.SquadAt(1001, day)
	second := r.SquadAt(1001, day)
	if !first.Equal(second) {
		t.Errorf("replay not idempotent: %v then %v", first.Assets(), second.Assets())
	}
}

func TestReplayUnknownManagerIsEmpty(t *testing.T) {
	r := NewReplayer(seedAB(), NewLedger(), nolog)
	if got := r.SquadAt(9999, NewDate(2025, time.June, 1)); got.Len() != 0 {
		t.Errorf("SquadAt(unknown) = %v, want empty", got.Assets())
	}
}
