package ligaledger

import (
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

// RawRecord is one item of the upstream news feed, already deserialized.
// Payload holds the decoded JSON object; the normalizer extracts the fields
// it understands and skips every other shape.
type RawRecord struct {
	At      time.Time
	Payload any
}

// Feed record shapes understood by the normalizer:
//
//	{"meta": {"type": "transfer"}, "managers": [id], "assets": [id], "price": n}
//	  single manager, single asset, signed price: negative is money spent
//	  (a buy), positive is money received (a sell).
//
//	{"meta": {"type": "transfer"}, "managers": [a, b], "assets": [out, in], "price": n, "payer": id}
//	  two managers swapping two assets; assets[0] moves from managers[0] to
//	  managers[1], assets[1] the other way. price and payer are optional and
//	  charge the paying side only.
const rawTypeTransfer = "transfer"

// NormalizeStats counts what happened to the raw feed during normalization.
type NormalizeStats struct {
	Accepted     int // events produced
	Skipped      int // unrecognized record shapes, logged as warnings
	BeforeSeason int // events discarded for settling before season start
}

// Degraded reports whether the normalized ledger is possibly incomplete.
func (s NormalizeStats) Degraded() bool { return s.Skipped > 0 }

// Normalizer converts raw heterogeneous news records into the uniform event
// representation, tagged with settlement business day.
type Normalizer struct {
	cutoffHour  int
	seasonStart Date
	currency    string
	log         zerolog.Logger
}

// NewNormalizer returns a normalizer for the given cutoff hour and season
// start. Events settling strictly before seasonStart are discarded.
func NewNormalizer(cutoffHour int, seasonStart Date, currency string, log zerolog.Logger) *Normalizer {
	return &Normalizer{cutoffHour: cutoffHour, seasonStart: seasonStart, currency: currency, log: log}
}

// Normalize converts the raw feed into an ordered ledger. The order is
// stable: business day ascending, original feed order within a day.
// Unrecognized shapes are counted and logged, never fatal.
func (n *Normalizer) Normalize(raw []RawRecord) (*Ledger, NormalizeStats) {
	var stats NormalizeStats
	ledger := NewLedger()
	events := make([]Event, 0, len(raw))

	for i, rec := range raw {
		ev, ok := n.classify(i, rec)
		if !ok {
			stats.Skipped++
			continue
		}
		if ev.When().Before(n.seasonStart) {
			stats.BeforeSeason++
			continue
		}
		events = append(events, ev)
		stats.Accepted++
	}

	ledger.Append(events...)
	return ledger, stats
}

// classify maps one raw record to an event, or reports it unrecognized.
func (n *Normalizer) classify(seq int, rec RawRecord) (Event, bool) {
	kind, ok := n.str(rec.Payload, "$.meta.type")
	if !ok || kind != rawTypeTransfer {
		n.log.Warn().Int("record", seq).Str("type", kind).Msg("unrecognized news record shape, skipped")
		return nil, false
	}

	managers := n.ints(rec.Payload, "$.managers")
	assets := n.ints(rec.Payload, "$.assets")
	price, hasPrice := n.num(rec.Payload, "$.price")

	switch {
	case len(managers) == 1 && len(assets) == 1 && hasPrice:
		manager, asset := ManagerID(managers[0]), AssetID(assets[0])
		if price < 0 {
			// Money left the manager's account: a purchase.
			ev := NewBuy(rec.At, n.cutoffHour, manager, asset, M(-price, n.currency))
			ev.seq = seq
			return ev, true
		}
		ev := NewSell(rec.At, n.cutoffHour, manager, asset, M(price, n.currency))
		ev.seq = seq
		return ev, true

	case len(managers) == 2 && len(assets) == 2:
		giver, taker := ManagerID(managers[0]), ManagerID(managers[1])
		given, taken := AssetID(assets[0]), AssetID(assets[1])
		var premium Money
		var payer ManagerID
		if hasPrice && price != 0 {
			payerID, ok := n.num(rec.Payload, "$.payer")
			if !ok {
				n.log.Warn().Int("record", seq).Msg("exchange with price but no payer, skipped")
				return nil, false
			}
			payer = ManagerID(payerID)
			if payer != giver && payer != taker {
				n.log.Warn().Int("record", seq).Int64("payer", payerID).Msg("exchange payer is neither side, skipped")
				return nil, false
			}
			if price < 0 {
				price = -price
			}
			premium = M(price, n.currency)
		}
		ev := NewExchange(rec.At, n.cutoffHour, giver, taker, given, taken, premium, payer)
		ev.seq = seq
		return ev, true
	}

	n.log.Warn().
		Int("record", seq).
		Int("managers", len(managers)).
		Int("assets", len(assets)).
		Bool("price", hasPrice).
		Msg("unrecognized transfer record shape, skipped")
	return nil, false
}

// str extracts a string at path, or false.
func (n *Normalizer) str(payload any, path string) (string, bool) {
	v, err := jsonpath.Get(path, payload)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// num extracts a number at path, or false. Decoded JSON numbers are float64.
func (n *Normalizer) num(payload any, path string) (int64, bool) {
	v, err := jsonpath.Get(path, payload)
	if err != nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return int64(x), true
	case int64:
		return x, true
	case int:
		return int64(x), true
	}
	return 0, false
}

// ints extracts an array of numbers at path, or nil.
func (n *Normalizer) ints(payload any, path string) []int64 {
	v, err := jsonpath.Get(path, payload)
	if err != nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(arr))
	for _, item := range arr {
		f, ok := item.(float64)
		if !ok {
			return nil
		}
		out = append(out, int64(f))
	}
	return out
}
