package ligaledger

import (
	"iter"
	"sort"
)

// Ledger represents the normalized transfer activity of a league.
//
// In a Ledger events are always in settlement order: business day ascending,
// original feed order within a day. Ties are never reordered.
type Ledger struct {
	events []Event
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{events: make([]Event, 0)}
}

// Append appends events to this ledger and maintains the settlement order.
func (l *Ledger) Append(evs ...Event) {
	l.events = append(l.events, evs...)
	l.stableSort()
}

// stableSort sorts the ledger by business day. The sort is stable, so events
// on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.events, func(i, j int) bool {
		return l.events[i].When().Before(l.events[j].When())
	})
}

// Len returns the number of events in the ledger.
func (l *Ledger) Len() int { return len(l.events) }

// Events returns an iterator over all events in settlement order.
func (l *Ledger) Events() iter.Seq2[int, Event] {
	return func(yield func(int, Event) bool) {
		for i, ev := range l.events {
			if !yield(i, ev) {
				return
			}
		}
	}
}

// EventsThrough returns an iterator over events with business day <= max,
// in settlement order.
func (l *Ledger) EventsThrough(max Date) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, ev := range l.events {
			if ev.When().After(max) {
				// The ledger is sorted by day, so it's safe to stop.
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// CashDelta sums the signed cash effect on the given manager of all events
// whose business day falls inside r (boundaries included).
func (l *Ledger) CashDelta(manager ManagerID, r Range) Money {
	var total Money
	for _, ev := range l.events {
		if ev.When().After(r.To) {
			break
		}
		if ev.When().Before(r.From) {
			continue
		}
		total = total.Add(CashDelta(ev, manager))
	}
	return total
}

// Involves reports whether the event touches the given manager's squad or cash.
func Involves(ev Event, manager ManagerID) bool {
	switch v := ev.(type) {
	case Buy:
		return v.Manager == manager
	case Sell:
		return v.Manager == manager
	case Exchange:
		return v.Giver == manager || v.Taker == manager
	}
	return false
}

// LastActivity returns the business day of the manager's most recent event.
// It returns false if the manager appears in no event.
func (l *Ledger) LastActivity(manager ManagerID) (Date, bool) {
	for i := len(l.events) - 1; i >= 0; i-- {
		if Involves(l.events[i], manager) {
			return l.events[i].When(), true
		}
	}
	return Date{}, false
}

// OldestEventDate returns the business day of the earliest event in the
// ledger, or the zero date when the ledger is empty.
func (l *Ledger) OldestEventDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[0].When()
}

// NewestEventDate returns the business day of the latest event in the
// ledger, or the zero date when the ledger is empty.
func (l *Ledger) NewestEventDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[len(l.events)-1].When()
}

// Managers returns an iterator over all distinct managers involved in the
// ledger's events, in first-appearance order.
func (l *Ledger) Managers() iter.Seq[ManagerID] {
	return func(yield func(ManagerID) bool) {
		seen := make(map[ManagerID]struct{})
		visit := func(m ManagerID) bool {
			if _, ok := seen[m]; ok {
				return true
			}
			seen[m] = struct{}{}
			return yield(m)
		}
		for _, ev := range l.events {
			switch v := ev.(type) {
			case Buy:
				if !visit(v.Manager) {
					return
				}
			case Sell:
				if !visit(v.Manager) {
					return
				}
			case Exchange:
				if !visit(v.Giver) || !visit(v.Taker) {
					return
				}
			}
		}
	}
}
