package ligaledger

import (
	"time"
)

// ManagerID identifies a league participant.
type ManagerID int64

// AssetID identifies a tradable player.
type AssetID int64

// EventKind is a typed string identifying a transfer event variant.
type EventKind string

const (
	KindBuy      EventKind = "buy"
	KindSell     EventKind = "sell"
	KindExchange EventKind = "exchange"
)

// Event is the closed set of normalized transfer events. The replayer and
// the balance reconstruction handle every variant exhaustively; there is no
// open extension point.
type Event interface {
	What() EventKind // What returns the event variant ("buy", "sell", "exchange").
	When() Date      // When returns the business day the event settles on.
	Equal(Event) bool
}

// baseEvent carries the fields common to all event variants.
type baseEvent struct {
	Kind EventKind `json:"kind"`
	Day  Date      `json:"day"` // settlement business day, cutoff already applied
	At   time.Time `json:"at"`  // raw feed timestamp

	seq int // original feed position, tie-breaker for same-day ordering
}

func (e baseEvent) What() EventKind { return e.Kind }
func (e baseEvent) When() Date      { return e.Day }

// Buy records a manager acquiring an asset from the market for a price.
type Buy struct {
	baseEvent
	Manager ManagerID `json:"manager"`
	Asset   AssetID   `json:"asset"`
	Price   Money     `json:"price"`
}

// NewBuy creates a Buy settling on the business day derived from at.
func NewBuy(at time.Time, cutoffHour int, manager ManagerID, asset AssetID, price Money) Buy {
	return Buy{
		baseEvent: baseEvent{Kind: KindBuy, Day: BusinessDay(at, cutoffHour), At: at},
		Manager:   manager,
		Asset:     asset,
		Price:     price,
	}
}

func (e Buy) Equal(other Event) bool {
	o, ok := other.(Buy)
	return ok && e.Day == o.Day && e.At.Equal(o.At) &&
		e.Manager == o.Manager && e.Asset == o.Asset && e.Price.Equal(o.Price)
}

// Sell records a manager selling an asset to the market for a price.
type Sell struct {
	baseEvent
	Manager ManagerID `json:"manager"`
	Asset   AssetID   `json:"asset"`
	Price   Money     `json:"price"`
}

// NewSell creates a Sell settling on the business day derived from at.
func NewSell(at time.Time, cutoffHour int, manager ManagerID, asset AssetID, price Money) Sell {
	return Sell{
		baseEvent: baseEvent{Kind: KindSell, Day: BusinessDay(at, cutoffHour), At: at},
		Manager:   manager,
		Asset:     asset,
		Price:     price,
	}
}

func (e Sell) Equal(other Event) bool {
	o, ok := other.(Sell)
	return ok && e.Day == o.Day && e.At.Equal(o.At) &&
		e.Manager == o.Manager && e.Asset == o.Asset && e.Price.Equal(o.Price)
}

// Exchange records two managers swapping assets: Given moves from Giver to
// Taker, Taken moves from Taker to Giver. When the swap was not even, Price
// is charged to Payer (one of the two managers); the other side receives no
// cash, matching how the league settles exchange premiums.
type Exchange struct {
	baseEvent
	Giver ManagerID `json:"giver"`
	Taker ManagerID `json:"taker"`
	Given AssetID   `json:"given"`
	Taken AssetID   `json:"taken"`
	Price Money     `json:"price,omitempty"` // zero for even swaps
	Payer ManagerID `json:"payer,omitempty"` // zero when Price is zero
}

// NewExchange creates an Exchange settling on the business day derived from at.
func NewExchange(at time.Time, cutoffHour int, giver, taker ManagerID, given, taken AssetID, price Money, payer ManagerID) Exchange {
	return Exchange{
		baseEvent: baseEvent{Kind: KindExchange, Day: BusinessDay(at, cutoffHour), At: at},
		Giver:     giver,
		Taker:     taker,
		Given:     given,
		Taken:     taken,
		Price:     price,
		Payer:     payer,
	}
}

func (e Exchange) Equal(other Event) bool {
	o, ok := other.(Exchange)
	return ok && e.Day == o.Day && e.At.Equal(o.At) &&
		e.Giver == o.Giver && e.Taker == o.Taker &&
		e.Given == o.Given && e.Taken == o.Taken &&
		e.Price.Equal(o.Price) && e.Payer == o.Payer
}

// CashDelta returns the signed cash effect of ev on the given manager's
// balance: buys are money out, sells money in, exchange premiums charge the
// paying side only.
func CashDelta(ev Event, manager ManagerID) Money {
	switch v := ev.(type) {
	case Buy:
		if v.Manager == manager {
			return v.Price.Neg()
		}
	case Sell:
		if v.Manager == manager {
			return v.Price
		}
	case Exchange:
		if !v.Price.IsZero() && v.Payer == manager {
			return v.Price.Neg()
		}
	}
	return Money{}
}
