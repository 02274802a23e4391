package ligaledger

import (
	"testing"
	"time"
)

func TestLedgerCashDelta(t *testing.T) {
	const cutoff = 4
	ledger := NewLedger()
	ledger.Append(
		NewBuy(at(2025, time.June, 1, 12, 0), cutoff, 10, 100, EUR(1000)),
		NewSell(at(2025, time.June, 3, 12, 0), cutoff, 10, 101, EUR(800)),
		NewBuy(at(2025, time.June, 5, 12, 0), cutoff, 20, 102, EUR(600)),
		NewExchange(at(2025, time.June, 10, 12, 0), cutoff, 10, 20, 103, 104, EUR(500), 10),
	)

	tests := []struct {
		name    string
		manager ManagerID
		r       Range
		want    int64
	}{
		{"buyer spends and earns", 10, NewRange(NewDate(2025, time.June, 1), NewDate(2025, time.June, 30)), -700},
		{"range excludes later events", 10, NewRange(NewDate(2025, time.June, 1), NewDate(2025, time.June, 2)), -1000},
		{"exchange premium hits payer only", 20, NewRange(NewDate(2025, time.June, 6), NewDate(2025, time.June, 30)), 0},
		{"uninvolved manager", 30, NewRange(NewDate(2025, time.June, 1), NewDate(2025, time.June, 30)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ledger.CashDelta(tt.manager, tt.r).Units(); got != tt.want {
				t.Errorf("CashDelta(%d, %v) = %d, want %d", tt.manager, tt.r, got, tt.want)
			}
		})
	}
}

func TestLedgerLastActivity(t *testing.T) {
	const cutoff = 4
	ledger := NewLedger()
	ledger.Append(
		NewBuy(at(2025, time.June, 1, 12, 0), cutoff, 10, 100, EUR(1000)),
		NewExchange(at(2025, time.June, 10, 12, 0), cutoff, 10, 20, 103, 104, Money{}, 0),
	)

	day, ok := ledger.LastActivity(20)
	if !ok || day != NewDate(2025, time.June, 10) {
		t.Errorf("LastActivity(20) = (%v, %v), want (2025-06-10, true)", day, ok)
	}
	if _, ok := ledger.LastActivity(99); ok {
		t.Error("LastActivity(99) = true, want false for uninvolved manager")
	}
}

func TestLedgerBounds(t *testing.T) {
	ledger := NewLedger()
	if !ledger.OldestEventDate().IsZero() || !ledger.NewestEventDate().IsZero() {
		t.Error("empty ledger should report zero dates")
	}

	const cutoff = 4
	ledger.Append(
		NewSell(at(2025, time.June, 8, 12, 0), cutoff, 10, 100, EUR(1)),
		NewBuy(at(2025, time.June, 2, 12, 0), cutoff, 10, 101, EUR(1)),
	)
	if got := ledger.OldestEventDate(); got != NewDate(2025, time.June, 2) {
		t.Errorf("OldestEventDate() = %v", got)
	}
	if got := ledger.NewestEventDate(); got != NewDate(2025, time.June, 8) {
		t.Errorf("NewestEventDate() = %v", got)
	}
}

func TestLedgerManagers(t *testing.T) {
	const cutoff = 4
	ledger := NewLedger()
	ledger.Append(
		NewBuy(at(2025, time.June, 1, 12, 0), cutoff, 10, 100, EUR(1)),
		NewExchange(at(2025, time.June, 2, 12, 0), cutoff, 20, 30, 101, 102, Money{}, 0),
		NewSell(at(2025, time.June, 3, 12, 0), cutoff, 10, 100, EUR(1)),
	)

	var got []ManagerID
	for m := range ledger.Managers() {
		got = append(got, m)
	}
	want := []ManagerID{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("Managers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Managers() = %v, want %v", got, want)
			break
		}
	}
}
