package ligaledger

import (
	"testing"
	"time"
)

func TestHistoryValueAsOf(t *testing.T) {
	h := new(History[int64])
	h.Append(NewDate(2025, time.June, 5), 1200)
	h.Append(NewDate(2025, time.June, 1), 1000)
	h.Append(NewDate(2025, time.June, 10), 1500)

	tests := []struct {
		name  string
		day   Date
		want  int64
		found bool
	}{
		{"before first entry", NewDate(2025, time.May, 31), 0, false},
		{"exact first", NewDate(2025, time.June, 1), 1000, true},
		{"between entries falls back", NewDate(2025, time.June, 4), 1000, true},
		{"exact middle", NewDate(2025, time.June, 5), 1200, true},
		{"after last entry", NewDate(2025, time.July, 1), 1500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := h.ValueAsOf(tt.day)
			if found != tt.found || got != tt.want {
				t.Errorf("ValueAsOf(%v) = (%d, %v), want (%d, %v)", tt.day, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	h := new(History[int64])
	day := NewDate(2025, time.June, 1)
	h.Append(day, 1000)
	h.Append(day, 1100)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if got, _ := h.Get(day); got != 1100 {
		t.Errorf("Get(%v) = %d, want the overwritten 1100", day, got)
	}
}

func TestHistoryStaysSorted(t *testing.T) {
	h := new(History[int64])
	h.Append(NewDate(2025, time.June, 10), 3)
	h.Append(NewDate(2025, time.June, 1), 1)
	h.Append(NewDate(2025, time.June, 5), 2)

	var prev Date
	var values []int64
	for on, v := range h.Values() {
		if !prev.IsZero() && on.Before(prev) {
			t.Fatalf("history not chronological: %v after %v", on, prev)
		}
		prev = on
		values = append(values, v)
	}
	if len(values) != 3 || values[0] != 1 || values[2] != 3 {
		t.Errorf("Values() order = %v, want [1 2 3]", values)
	}

	day, latest := h.Latest()
	if day != NewDate(2025, time.June, 10) || latest != 3 {
		t.Errorf("Latest() = (%v, %d), want (2025-06-10, 3)", day, latest)
	}
}
