package ligaledger

// BalanceReconstructor derives a manager's cash balance at any date from
// the start budget, the cash effect of normalized events, accrued salaries,
// and points payout.
//
// The upstream source is authoritative for the authenticated manager: when
// it supplies a live balance for a manager, that value is passed through
// unchanged instead of being reconstructed.
type BalanceReconstructor struct {
	cfg      Config
	ledger   *Ledger
	salaries *SalaryCalculator
	live     map[ManagerID]Money // externally supplied balances, typically one entry
}

// NewBalanceReconstructor creates a reconstructor. live may be nil.
func NewBalanceReconstructor(cfg Config, ledger *Ledger, salaries *SalaryCalculator, live map[ManagerID]Money) *BalanceReconstructor {
	return &BalanceReconstructor{cfg: cfg, ledger: ledger, salaries: salaries, live: live}
}

// Live returns the externally supplied balance for the manager, if any.
func (b *BalanceReconstructor) Live(manager ManagerID) (Money, bool) {
	m, ok := b.live[manager]
	return m, ok
}

// AsOf returns the manager's balance at the end of the given business day
// and the number of asset-days whose salary share lacked a valuation (zero
// for exact results). points is the manager's cumulative score by that day.
//
// Reconstructed balance:
//
//	start_budget
//	+ cash deltas of events settling in (season_start, date]
//	- salaries accrued in (season_start, date]
//	+ points payout
func (b *BalanceReconstructor) AsOf(manager ManagerID, on Date, points int64) (Money, int) {
	if live, ok := b.live[manager]; ok {
		return live, 0
	}

	balance := M(b.cfg.StartBudget, b.cfg.Currency)
	balance = balance.Add(b.cfg.PointsPayout(points))

	dayOne := b.cfg.SeasonStart.Add(1)
	if on.Before(dayOne) {
		// Nothing has settled yet.
		return balance, 0
	}
	balance = balance.Add(b.ledger.CashDelta(manager, Range{From: dayOne, To: on}))

	salary, misses := b.salaries.Between(manager, dayOne, on)
	balance = balance.Sub(salary)

	return balance, misses
}
