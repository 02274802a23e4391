package ligaledger

// CreditLimit returns how far into the red a manager is allowed to go.
//
// The base limit is a configured fraction of team value (a quarter by
// default). A negative balance directly consumes the available limit, never
// below zero. When credit is globally disabled the limit is always zero.
func CreditLimit(teamValue, balance Money, cfg Config) Money {
	zero := M(0, cfg.Currency)
	if cfg.CreditDisabled {
		return zero
	}
	limit := teamValue.MulRate(cfg.creditFraction())
	if balance.IsNegative() {
		limit = limit.Add(balance)
	}
	if limit.IsNegative() {
		return zero
	}
	return limit
}

// InTheRed reports whether the balance is negative.
func InTheRed(balance Money) bool { return balance.IsNegative() }
