package ligaledger

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ErrValuationUnavailable reports that an asset has no known market value at
// or before a requested date. Callers substitute zero and flag the result as
// approximate; it is never fatal.
var ErrValuationUnavailable = errors.New("no market value at or before date")

// Market holds the per-asset market value history of the league.
//
// The table is fully materialized before reconstruction starts and is
// read-only afterwards, so lookups for the same (asset, day) pair always
// return the same value.
type Market struct {
	currency string
	quotes   map[AssetID]*History[int64]
}

// NewMarket returns a new empty market value collection.
func NewMarket(currency string) *Market {
	return &Market{
		currency: currency,
		quotes:   make(map[AssetID]*History[int64]),
	}
}

// Currency returns the league currency of all quoted values.
func (m *Market) Currency() string { return m.currency }

// Has reports whether any value is recorded for the asset.
func (m *Market) Has(asset AssetID) bool {
	_, ok := m.quotes[asset]
	return ok
}

// Add records the market value of an asset on a day. An existing value for
// that day is overwritten.
func (m *Market) Add(asset AssetID, on Date, value int64) {
	h, ok := m.quotes[asset]
	if !ok {
		h = new(History[int64])
		m.quotes[asset] = h
	}
	h.Append(on, value)
}

// ValueAt returns the latest known value for the asset with record date on
// or before the requested day. When no such record exists it returns
// ErrValuationUnavailable.
func (m *Market) ValueAt(asset AssetID, on Date) (Money, error) {
	h, ok := m.quotes[asset]
	if !ok {
		return M(0, m.currency), fmt.Errorf("asset %d: %w", asset, ErrValuationUnavailable)
	}
	v, ok := h.ValueAsOf(on)
	if !ok {
		return M(0, m.currency), fmt.Errorf("asset %d on %s: %w", asset, on, ErrValuationUnavailable)
	}
	return M(v, m.currency), nil
}

// Assets returns an iterator over all quoted assets in ascending id order.
func (m *Market) Assets() iter.Seq[AssetID] {
	return func(yield func(AssetID) bool) {
		ids := slices.Collect(maps.Keys(m.quotes))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}
