package ligaledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// EncodeEvent writes one event as a single JSON line.
func EncodeEvent(w io.Writer, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("could not encode %s event: %w", ev.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes every event of the ledger in JSONL form, in
// settlement order, so a normalized feed can be snapshotted and replayed
// offline.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, ev := range l.Events() {
		if err := EncodeEvent(w, ev); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of events, decodes each line into the
// matching event variant, and returns a sorted ledger. The currency is
// applied to every decoded amount.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	seq := 0
	var events []Event
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Kind EventKind `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify event in line %q: %w", string(line), err)
		}

		var decoded Event
		switch identifier.Kind {
		case KindBuy:
			var ev Buy
			if err := json.Unmarshal(line, &ev); err != nil {
				return nil, fmt.Errorf("malformed buy event: %w", err)
			}
			ev.Price = M(ev.Price.Units(), currency)
			ev.seq = seq
			decoded = ev
		case KindSell:
			var ev Sell
			if err := json.Unmarshal(line, &ev); err != nil {
				return nil, fmt.Errorf("malformed sell event: %w", err)
			}
			ev.Price = M(ev.Price.Units(), currency)
			ev.seq = seq
			decoded = ev
		case KindExchange:
			var ev Exchange
			if err := json.Unmarshal(line, &ev); err != nil {
				return nil, fmt.Errorf("malformed exchange event: %w", err)
			}
			if !ev.Price.IsZero() {
				ev.Price = M(ev.Price.Units(), currency)
			}
			ev.seq = seq
			decoded = ev
		default:
			return nil, fmt.Errorf("unknown event kind %q in line %q", identifier.Kind, string(line))
		}
		events = append(events, decoded)
		seq++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read events: %w", err)
	}

	ledger.Append(events...)
	return ledger, nil
}

// DecodeMarket reads a quote-history file: a mapping from asset id to a
// mapping from ISO date to market value.
//
//	{"104233": {"2025-05-27": 1200000, "2025-05-28": 1250000}, ...}
func DecodeMarket(r io.Reader, currency string) (*Market, error) {
	var raw map[string]map[string]int64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed quote history: %w", err)
	}

	market := NewMarket(currency)
	for assetKey, quotes := range raw {
		var asset AssetID
		if _, err := fmt.Sscanf(assetKey, "%d", &asset); err != nil {
			return nil, fmt.Errorf("malformed quote history: asset id %q is not numeric", assetKey)
		}
		for dateKey, value := range quotes {
			on, err := ParseDate(dateKey)
			if err != nil {
				return nil, fmt.Errorf("malformed quote history for asset %d: %w", asset, err)
			}
			market.Add(asset, on, value)
		}
	}
	return market, nil
}

// EncodeMarket writes the quote history in its canonical on-disk form.
func EncodeMarket(w io.Writer, m *Market) error {
	raw := make(map[string]map[string]int64, len(m.quotes))
	for asset := range m.Assets() {
		quotes := make(map[string]int64)
		for on, value := range m.quotes[asset].Values() {
			quotes[on.String()] = value
		}
		raw[fmt.Sprintf("%d", asset)] = quotes
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}
